package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pranav-foods/spice-store-backend/internal/servererrors"
)

type Storer interface {
	findAll(ctx context.Context) ([]*Product, error)
	findByCategory(ctx context.Context, category string) ([]*Product, error)
	findByID(ctx context.Context, productID string) (*Product, error)
	insertOne(ctx context.Context, product *Product) error
	updateOne(ctx context.Context, productID string, fields UpdateProductFields) (*Product, error)
	deleteOne(ctx context.Context, productID string) (int64, error)
}

type service struct {
	store Storer
}

func NewService(store Storer) *service {
	return &service{
		store: store,
	}
}

func (s *service) getAllProducts(ctx context.Context) ([]*Product, error) {
	return s.store.findAll(ctx)
}

func (s *service) getProduct(ctx context.Context, productID string) (*Product, error) {
	return s.store.findByID(ctx, productID)
}

func (s *service) getProductsByCategory(ctx context.Context, category string) ([]*Product, error) {
	if !isValidCategory(category) {
		return nil, servererrors.NewValidation(
			fmt.Sprintf(
				"Invalid category: %s. Valid categories are: %s.",
				category,
				strings.Join(ValidCategories, ", "),
			),
		)
	}

	return s.store.findByCategory(ctx, category)
}

func (s *service) createProduct(ctx context.Context, newProduct *CreateProductRequest) (*Product, error) {
	now := time.Now().UTC()

	product := &Product{
		ID:              uuid.NewString(),
		Name:            newProduct.Name,
		Price:           newProduct.Price,
		SalePrice:       newProduct.SalePrice,
		Description:     newProduct.Description,
		ImageURL:        newProduct.ImageURL,
		Category:        newProduct.Category,
		Weight:          newProduct.Weight,
		Ingredients:     newProduct.Ingredients,
		NutritionalInfo: newProduct.NutritionalInfo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if newProduct.Stock != nil {
		product.Stock = *newProduct.Stock
	}

	if err := s.store.insertOne(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *service) updateProduct(ctx context.Context, productID string, fields UpdateProductFields) (*Product, error) {
	return s.store.updateOne(ctx, productID, fields)
}

func (s *service) deleteProduct(ctx context.Context, productID string) error {
	deletedCount, err := s.store.deleteOne(ctx, productID)
	if err != nil {
		return err
	}

	if deletedCount == 0 {
		return servererrors.NewNotFound(
			fmt.Sprintf("Product with ID %s not found", productID),
		)
	}

	return nil
}

func isValidCategory(category string) bool {
	for _, valid := range ValidCategories {
		if strings.EqualFold(category, valid) {
			return true
		}
	}

	return false
}
