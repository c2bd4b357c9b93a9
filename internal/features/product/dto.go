package product

// CreateProductRequest carries the client-supplied fields of a new product.
// Stock is a pointer so that an explicit 0 passes the presence check while a
// missing field does not.
type CreateProductRequest struct {
	Name            string           `json:"name" validate:"required"`
	Price           float64          `json:"price" validate:"required,gt=0"`
	SalePrice       *float64         `json:"salePrice"`
	Description     string           `json:"description" validate:"required"`
	ImageURL        string           `json:"imageUrl" validate:"required"`
	Category        string           `json:"category" validate:"required"`
	Weight          string           `json:"weight" validate:"required"`
	Stock           *int             `json:"stock" validate:"required"`
	Ingredients     []string         `json:"ingredients"`
	NutritionalInfo *NutritionalInfo `json:"nutritionalInfo"`
}

// UpdateProductFields is a partial-field update. The store merges it over
// the existing document and revalidates the result before writing; keys the
// schema does not know are discarded, server-managed keys are stripped
// before merging.
type UpdateProductFields map[string]any
