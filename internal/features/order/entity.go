package order

import "time"

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"

	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
)

type Address struct {
	Street     string `json:"street" bson:"street" validate:"required"`
	City       string `json:"city" bson:"city" validate:"required"`
	State      string `json:"state" bson:"state" validate:"required"`
	PostalCode string `json:"postalCode" bson:"postalCode" validate:"required"`
	Country    string `json:"country" bson:"country" validate:"required"`
}

type CustomerInfo struct {
	Name    string  `json:"name" bson:"name" validate:"required"`
	Email   string  `json:"email" bson:"email" validate:"required"`
	Phone   string  `json:"phone" bson:"phone" validate:"required"`
	Address Address `json:"address" bson:"address" validate:"required"`
}

// OrderItem references a product by its client-facing id. The reference is
// not checked against the products collection.
type OrderItem struct {
	ProductID string `json:"productId" bson:"productId" validate:"required"`
	Quantity  int    `json:"quantity" bson:"quantity" validate:"required"`
}

// Order is the persisted document. Status and payment transitions carry no
// state machine; any value inside the enum is accepted on update.
type Order struct {
	ID            string       `json:"id" bson:"id" validate:"required"`
	Items         []OrderItem  `json:"items" bson:"items" validate:"dive"`
	CustomerInfo  CustomerInfo `json:"customerInfo" bson:"customerInfo" validate:"required"`
	Date          string       `json:"date" bson:"date" validate:"required"`
	Status        string       `json:"status" bson:"status" validate:"required,oneof=pending completed cancelled"`
	Total         float64      `json:"total" bson:"total" validate:"required"`
	PaymentMethod string       `json:"paymentMethod" bson:"paymentMethod" validate:"required,oneof=qrCode cod"`
	PaymentStatus string       `json:"paymentStatus" bson:"paymentStatus" validate:"required,oneof=paid unpaid"`
	CreatedAt     time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt" bson:"updatedAt"`
}
