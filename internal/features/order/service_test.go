package order

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pranav-foods/spice-store-backend/internal/mailer"
	"github.com/pranav-foods/spice-store-backend/internal/servererrors"
	"github.com/pranav-foods/spice-store-backend/internal/storage"
	"github.com/pranav-foods/spice-store-backend/internal/validate"
)

var orderIDPattern = regexp.MustCompile(`^ORD-\d+-\d+$`)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setup(businessEmails []string) (*service, *mockStore, *mockSender) {
	store := newMockStore()
	sender := &mockSender{}

	orderService := NewService(
		&ServiceConfig{
			Store:          store,
			Mailer:         sender,
			FromAddress:    "info@pranavfoods.test",
			BusinessEmails: businessEmails,
			Log:            testLogger(),
		},
	)

	return orderService, store, sender
}

func validCreateRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		Items: []OrderItem{
			{ProductID: "p1", Quantity: 2},
		},
		CustomerInfo: &CustomerInfo{
			Name:  "Asha",
			Email: "asha@example.com",
			Phone: "555-0100",
			Address: Address{
				Street:     "1 Spice Lane",
				City:       "Pune",
				State:      "MH",
				PostalCode: "411001",
				Country:    "India",
			},
		},
		Date:          "2025-01-15",
		Total:         19.98,
		PaymentMethod: "cod",
	}
}

func validConfirmationRequest() *SendConfirmationRequest {
	return &SendConfirmationRequest{
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		OrderID:       "ORD-1-1",
		Items: []ConfirmationItem{
			{ProductName: "Turmeric", Quantity: 2, Price: 9.99},
		},
		Total: 19.98,
		ShippingAddress: &Address{
			Street:     "1 Spice Lane",
			City:       "Pune",
			State:      "MH",
			PostalCode: "411001",
			Country:    "India",
		},
	}
}

func TestCreateOrder(t *testing.T) {
	orderService, store, _ := setup(nil)

	t.Run("generates id when none supplied", func(t *testing.T) {
		created, err := orderService.createOrder(
			context.Background(),
			validCreateRequest(),
		)

		require.NoError(t, err)
		assert.Regexp(t, orderIDPattern, created.ID)
		assert.Equal(t, StatusPending, created.Status)
		assert.Equal(t, PaymentStatusUnpaid, created.PaymentStatus)
		assert.False(t, created.CreatedAt.IsZero())
	})

	t.Run("keeps the client-supplied id", func(t *testing.T) {
		req := validCreateRequest()
		req.ID = "ORD-123-456"

		created, err := orderService.createOrder(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, "ORD-123-456", created.ID)
	})

	t.Run("duplicate id surfaces as a validation error", func(t *testing.T) {
		req := validCreateRequest()
		req.ID = "ORD-123-456"

		_, err := orderService.createOrder(context.Background(), req)

		requireKind(t, err, servererrors.KindValidation)
	})

	t.Run("missing payment method fails schema validation", func(t *testing.T) {
		req := validCreateRequest()
		req.PaymentMethod = ""

		_, err := orderService.createOrder(context.Background(), req)

		requireKind(t, err, servererrors.KindValidation)
		assert.Len(t, store.order, 2)
	})
}

func TestUpdateOrder(t *testing.T) {
	orderService, store, _ := setup(nil)
	created, err := orderService.createOrder(
		context.Background(),
		validCreateRequest(),
	)
	require.NoError(t, err)

	t.Run("any enum transition is accepted", func(t *testing.T) {
		updated, err := orderService.updateOrder(
			context.Background(),
			created.ID,
			UpdateOrderFields{"status": StatusCancelled},
		)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, updated.Status)

		// no state machine: cancelled back to pending is permitted
		updated, err = orderService.updateOrder(
			context.Background(),
			created.ID,
			UpdateOrderFields{"status": StatusPending},
		)
		require.NoError(t, err)
		assert.Equal(t, StatusPending, updated.Status)
	})

	t.Run("value outside the enum is rejected", func(t *testing.T) {
		_, err := orderService.updateOrder(
			context.Background(),
			created.ID,
			UpdateOrderFields{"status": "shipped"},
		)

		requireKind(t, err, servererrors.KindValidation)

		saved, findErr := store.findByID(context.Background(), created.ID)
		require.NoError(t, findErr)
		assert.Equal(t, StatusPending, saved.Status)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := orderService.updateOrder(
			context.Background(),
			"does-not-exist",
			UpdateOrderFields{"status": StatusCompleted},
		)

		requireKind(t, err, servererrors.KindNotFound)
	})
}

func TestDeleteOrder(t *testing.T) {
	orderService, _, _ := setup(nil)
	created, err := orderService.createOrder(
		context.Background(),
		validCreateRequest(),
	)
	require.NoError(t, err)

	require.NoError(
		t,
		orderService.deleteOrder(context.Background(), created.ID),
	)

	err = orderService.deleteOrder(context.Background(), created.ID)
	serverErr := requireKind(t, err, servererrors.KindNotFound)
	assert.Contains(t, serverErr.Message, created.ID)
}

func TestSendConfirmation(t *testing.T) {
	t.Run("no configured business emails is a server error", func(t *testing.T) {
		orderService, _, sender := setup(nil)

		err := orderService.sendConfirmation(validConfirmationRequest())

		serverErr := requireKind(t, err, servererrors.KindServer)
		assert.Contains(t, serverErr.Message, "not configured")
		assert.Nil(t, sender.sent)
	})

	t.Run("sends one message to customer and business addresses", func(t *testing.T) {
		orderService, _, sender := setup(
			[]string{"orders@pranavfoods.test", "owner@pranavfoods.test"},
		)

		err := orderService.sendConfirmation(validConfirmationRequest())

		require.NoError(t, err)
		require.NotNil(t, sender.sent)
		assert.Equal(
			t,
			[]string{
				"asha@example.com",
				"orders@pranavfoods.test",
				"owner@pranavfoods.test",
			},
			sender.sent.To,
		)
		assert.Contains(t, sender.sent.From, "info@pranavfoods.test")
		assert.Equal(
			t,
			"Order Confirmation - Pranav Foods - Order #ORD-1-1",
			sender.sent.Subject,
		)
		assert.Contains(t, sender.sent.HTML, "Turmeric (x2) - $9.99 each")
		assert.Contains(t, sender.sent.HTML, "<strong>Total:</strong> $19.98")
		assert.Contains(t, sender.sent.HTML, "1 Spice Lane")
		assert.Contains(t, sender.sent.HTML, "pending")
	})

	t.Run("transport failure is a generic server error", func(t *testing.T) {
		orderService, _, sender := setup([]string{"orders@pranavfoods.test"})
		sender.err = errors.New("smtp: 451 temporary failure")

		err := orderService.sendConfirmation(validConfirmationRequest())

		serverErr := requireKind(t, err, servererrors.KindServer)
		assert.Equal(
			t,
			"Failed to send order confirmation email.",
			serverErr.Message,
		)
		// the transport detail must never reach the client-visible message
		assert.NotContains(t, serverErr.Message, "451")
	})
}

func TestGenerateOrderID(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Regexp(t, orderIDPattern, GenerateOrderID())
	}
}

func requireKind(t *testing.T, err error, kind servererrors.Kind) *servererrors.ServerError {
	t.Helper()

	require.Error(t, err)
	serverErr, ok := err.(*servererrors.ServerError)
	require.True(t, ok, "expected *servererrors.ServerError, got %T", err)
	assert.Equal(t, kind, serverErr.Kind)

	return serverErr
}

type mockSender struct {
	sent *mailer.Message
	err  error
}

func (m *mockSender) Send(msg *mailer.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = msg
	return nil
}

// mockStore mirrors the persistence gateway contract over a map, including
// the write-time schema validation the real store performs.
type mockStore struct {
	docs  map[string]*Order
	order []string
}

func newMockStore() *mockStore {
	return &mockStore{
		docs: make(map[string]*Order),
	}
}

func (m *mockStore) findAll(_ context.Context) ([]*Order, error) {
	orders := make([]*Order, 0, len(m.order))
	for _, id := range m.order {
		if o, ok := m.docs[id]; ok {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (m *mockStore) findByID(_ context.Context, orderID string) (*Order, error) {
	o, ok := m.docs[orderID]
	if !ok {
		return nil, servererrors.NewNotFound(
			"Order with ID " + orderID + " not found",
		)
	}
	return o, nil
}

func (m *mockStore) insertOne(_ context.Context, order *Order) error {
	if err := validate.StructFields(order); err != nil {
		return servererrors.NewValidation(err.Error())
	}
	if _, exists := m.docs[order.ID]; exists {
		return servererrors.NewValidation(
			"order with id " + order.ID + " already exists",
		)
	}
	m.docs[order.ID] = order
	m.order = append(m.order, order.ID)
	return nil
}

func (m *mockStore) updateOne(_ context.Context, orderID string, fields UpdateOrderFields) (*Order, error) {
	existing, err := m.findByID(context.Background(), orderID)
	if err != nil {
		return nil, err
	}

	merged := new(Order)
	if err = storage.MergeDocument(existing, fields, merged); err != nil {
		return nil, err
	}
	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt

	if err = validate.StructFields(merged); err != nil {
		return nil, servererrors.NewValidation(err.Error())
	}

	m.docs[orderID] = merged
	return merged, nil
}

func (m *mockStore) deleteOne(_ context.Context, orderID string) (int64, error) {
	if _, ok := m.docs[orderID]; !ok {
		return 0, nil
	}
	delete(m.docs, orderID)
	return 1, nil
}
