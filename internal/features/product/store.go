package product

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
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
		collection: db.Collection(storage.ProductsCollection),
	}
}

func (s *store) findAll(ctx context.Context) ([]*Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(
			err,
			"failed to find all products in product store",
		)
	}

	products := make([]*Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(
			err,
			"failed to decode products in product store",
		)
	}

	return products, nil
}

func (s *store) findByCategory(ctx context.Context, category string) ([]*Product, error) {
	// case-insensitive match on the stored category
	filter := bson.M{
		"category": primitive.Regex{
			Pattern: category,
			Options: "i",
		},
	}

	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(
			err,
			"failed to find products by category in product store",
		)
	}

	products := make([]*Product, 0)
	if err = cursor.All(ctx, &products); err != nil {
		return nil, errors.Wrap(
			err,
			"failed to decode products in product store",
		)
	}

	return products, nil
}

func (s *store) findByID(ctx context.Context, productID string) (*Product, error) {
	product := new(Product)

	err := s.collection.FindOne(
		ctx,
		bson.M{"id": productID},
	).Decode(product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, servererrors.NewNotFound(
				fmt.Sprintf("Product with ID %s not found", productID),
			)
		}

		return nil, errors.Wrap(
			err,
			"failed to find product by id in product store",
		)
	}

	return product, nil
}

func (s *store) insertOne(ctx context.Context, product *Product) error {
	if err := validate.StructFields(product); err != nil {
		return servererrors.NewValidation(err.Error())
	}

	_, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return servererrors.NewValidation(
				fmt.Sprintf(
					"product with id %s already exists",
					product.ID,
				),
			)
		}

		return errors.Wrap(
			err,
			"failed to insert product in product store",
		)
	}

	return nil
}

// updateOne merges the partial fields over the stored document, reruns the
// schema validators on the merged result and only then writes. A failed
// validation therefore writes nothing.
func (s *store) updateOne(ctx context.Context, productID string, fields UpdateProductFields) (*Product, error) {
	existing, err := s.findByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	merged := new(Product)
	if err = storage.MergeDocument(existing, fields, merged); err != nil {
		return nil, errors.Wrap(
			err,
			"failed to merge update fields in product store",
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
		bson.M{"id": productID},
		merged,
	)
	if err != nil {
		return nil, errors.Wrap(
			err,
			"failed to replace product in product store",
		)
	}

	return merged, nil
}

func (s *store) deleteOne(ctx context.Context, productID string) (int64, error) {
	result, err := s.collection.DeleteOne(
		ctx,
		bson.M{"id": productID},
	)
	if err != nil {
		return 0, errors.Wrap(
			err,
			"failed to delete product in product store",
		)
	}

	return result.DeletedCount, nil
}
