package order

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pranav-foods/spice-store-backend/internal/servererrors"
	"github.com/pranav-foods/spice-store-backend/internal/storage"
	"github.com/pranav-foods/spice-store-backend/internal/validate"
)

type store struct {
	collection *mongo.Collection
}

func NewStore(db *mongo.Database) *store {
	return &store{
		collection: db.Collection(storage.OrdersCollection),
	}
}

func (s *store) findAll(ctx context.Context) ([]*Order, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(
			err,
			"failed to find all orders in order store",
		)
	}

	orders := make([]*Order, 0)
	if err = cursor.All(ctx, &orders); err != nil {
		return nil, errors.Wrap(
			err,
			"failed to decode orders in order store",
		)
	}

	return orders, nil
}

func (s *store) findByID(ctx context.Context, orderID string) (*Order, error) {
	order := new(Order)

	err := s.collection.FindOne(
		ctx,
		bson.M{"id": orderID},
	).Decode(order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, servererrors.NewNotFound(
				fmt.Sprintf("Order with ID %s not found", orderID),
			)
		}

		return nil, errors.Wrap(
			err,
			"failed to find order by id in order store",
		)
	}

	return order, nil
}

func (s *store) insertOne(ctx context.Context, order *Order) error {
	if err := validate.StructFields(order); err != nil {
		return servererrors.NewValidation(err.Error())
	}

	_, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return servererrors.NewValidation(
				fmt.Sprintf(
					"order with id %s already exists",
					order.ID,
				),
			)
		}

		return errors.Wrap(
			err,
			"failed to insert order in order store",
		)
	}

	return nil
}

// updateOne merges the partial fields over the stored document and reruns
// the schema validators before writing, so a rejected transition value
// writes nothing.
func (s *store) updateOne(ctx context.Context, orderID string, fields UpdateOrderFields) (*Order, error) {
	existing, err := s.findByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	merged := new(Order)
	if err = storage.MergeDocument(existing, fields, merged); err != nil {
		return nil, errors.Wrap(
			err,
			"failed to merge update fields in order store",
		)
	}

	merged.ID = existing.ID
	merged.CreatedAt = existing.CreatedAt

	if err = validate.StructFields(merged); err != nil {
		return nil, servererrors.NewValidation(err.Error())
	}

	merged.UpdatedAt = time.Now().UTC()

	_, err = s.collection.ReplaceOne(
		ctx,
		bson.M{"id": orderID},
		merged,
	)
	if err != nil {
		return nil, errors.Wrap(
			err,
			"failed to replace order in order store",
		)
	}

	return merged, nil
}

func (s *store) deleteOne(ctx context.Context, orderID string) (int64, error) {
	result, err := s.collection.DeleteOne(
		ctx,
		bson.M{"id": orderID},
	)
	if err != nil {
		return 0, errors.Wrap(
			err,
			"failed to delete order in order store",
		)
	}

	return result.DeletedCount, nil
}
