package product

import "time"

// ValidCategories is the closed set a product category must belong to.
// Matching against it is case-insensitive at the API edge; stored values are
// always one of these exact strings.
var ValidCategories = []string{"spices", "masalas", "powders"}

type NutritionalInfo struct {
	Calories float64 `json:"calories" bson:"calories"`
	Protein  float64 `json:"protein" bson:"protein"`
	Carbs    float64 `json:"carbs" bson:"carbs"`
	Fat      float64 `json:"fat" bson:"fat"`
	Fiber    float64 `json:"fiber" bson:"fiber"`
}

// Product is the persisted document. The validate tags are the write-time
// schema: every insert and every merged update must pass them before it
// reaches the collection.
type Product struct {
	ID              string           `json:"id" bson:"id" validate:"required"`
	Name            string           `json:"name" bson:"name" validate:"required"`
	Price           float64          `json:"price" bson:"price" validate:"required,gt=0"`
	SalePrice       *float64         `json:"salePrice,omitempty" bson:"salePrice,omitempty"`
	Description     string           `json:"description" bson:"description" validate:"required"`
	ImageURL        string           `json:"imageUrl" bson:"imageUrl" validate:"required"`
	Category        string           `json:"category" bson:"category" validate:"required,oneof=spices masalas powders"`
	Weight          string           `json:"weight" bson:"weight" validate:"required"`
	Stock           int              `json:"stock" bson:"stock"`
	Ingredients     []string         `json:"ingredients,omitempty" bson:"ingredients,omitempty"`
	NutritionalInfo *NutritionalInfo `json:"nutritionalInfo,omitempty" bson:"nutritionalInfo,omitempty"`
	CreatedAt       time.Time        `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt" bson:"updatedAt"`
}
