package order

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pranav-foods/spice-store-backend/internal/mailer"
	"github.com/pranav-foods/spice-store-backend/internal/servererrors"
)

type Storer interface {
	findAll(ctx context.Context) ([]*Order, error)
	findByID(ctx context.Context, orderID string) (*Order, error)
	insertOne(ctx context.Context, order *Order) error
	updateOne(ctx context.Context, orderID string, fields UpdateOrderFields) (*Order, error)
	deleteOne(ctx context.Context, orderID string) (int64, error)
}

type ServiceConfig struct {
	Store          Storer
	Mailer         mailer.Sender
	FromAddress    string
	BusinessEmails []string
	Log            *logrus.Logger
}

type service struct {
	*ServiceConfig
}

func NewService(cfg *ServiceConfig) *service {
	return &service{
		ServiceConfig: cfg,
	}
}

func (s *service) getAllOrders(ctx context.Context) ([]*Order, error) {
	return s.Store.findAll(ctx)
}

func (s *service) getOrder(ctx context.Context, orderID string) (*Order, error) {
	return s.Store.findByID(ctx, orderID)
}

func (s *service) createOrder(ctx context.Context, newOrder *CreateOrderRequest) (*Order, error) {
	orderID := newOrder.ID
	if orderID == "" {
		orderID = GenerateOrderID()
	}

	status := newOrder.Status
	if status == "" {
		status = StatusPending
	}

	paymentStatus := newOrder.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = PaymentStatusUnpaid
	}

	now := time.Now().UTC()

	order := &Order{
		ID:            orderID,
		Items:         newOrder.Items,
		CustomerInfo:  *newOrder.CustomerInfo,
		Date:          newOrder.Date,
		Status:        status,
		Total:         newOrder.Total,
		PaymentMethod: newOrder.PaymentMethod,
		PaymentStatus: paymentStatus,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Store.insertOne(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (s *service) updateOrder(ctx context.Context, orderID string, fields UpdateOrderFields) (*Order, error) {
	return s.Store.updateOne(ctx, orderID, fields)
}

func (s *service) deleteOrder(ctx context.Context, orderID string) error {
	deletedCount, err := s.Store.deleteOne(ctx, orderID)
	if err != nil {
		return err
	}

	if deletedCount == 0 {
		return servererrors.NewNotFound(
			fmt.Sprintf("Order with ID %s not found", orderID),
		)
	}

	return nil
}

// sendConfirmation sends the order confirmation to the customer and every
// configured business address in one message. The send is a single attempt;
// transport failure is logged here and reported to the client only as a
// generic failure.
func (s *service) sendConfirmation(req *SendConfirmationRequest) error {
	if len(s.BusinessEmails) == 0 {
		return servererrors.NewServer(
			"Business email addresses not configured in environment variables.",
			nil,
		)
	}

	msg := &mailer.Message{
		From: fmt.Sprintf(
			"\"Pranav Foods\" <%s>",
			s.FromAddress,
		),
		To: append(
			[]string{req.CustomerEmail},
			s.BusinessEmails...,
		),
		Subject: fmt.Sprintf(confirmationSubjectFmt, req.OrderID),
		HTML:    buildConfirmationHTML(req),
	}

	if err := s.Mailer.Send(msg); err != nil {
		s.Log.WithError(err).
			WithField("orderID", req.OrderID).
			Error("error sending confirmation email")

		return servererrors.NewServer(
			"Failed to send order confirmation email.",
			err,
		)
	}

	return nil
}
