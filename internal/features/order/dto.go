package order

// CreateOrderRequest is the checkout payload. Only items, customerInfo and
// total are checked for presence here; the rest is enforced by the document
// schema on write. The id is client-supplied, with a server-side fallback.
type CreateOrderRequest struct {
	ID            string        `json:"id"`
	Items         []OrderItem   `json:"items" validate:"required,min=1"`
	CustomerInfo  *CustomerInfo `json:"customerInfo" validate:"required,structonly"`
	Date          string        `json:"date"`
	Status        string        `json:"status"`
	Total         float64       `json:"total" validate:"required"`
	PaymentMethod string        `json:"paymentMethod"`
	PaymentStatus string        `json:"paymentStatus"`
}

// UpdateOrderFields is a partial-field update, merged and revalidated by the
// store the same way product updates are.
type UpdateOrderFields map[string]any

// ConfirmationItem is a line item as the confirmation email shows it. It
// carries the display name and unit price, unlike OrderItem which only
// references a product id.
type ConfirmationItem struct {
	ProductName string  `json:"productName"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type SendConfirmationRequest struct {
	CustomerName    string             `json:"customerName" validate:"required"`
	CustomerEmail   string             `json:"customerEmail" validate:"required"`
	OrderID         string             `json:"orderId" validate:"required"`
	Items           []ConfirmationItem `json:"items" validate:"required"`
	Total           float64            `json:"total" validate:"required"`
	ShippingAddress *Address           `json:"shippingAddress" validate:"required,structonly"`
}

type SendConfirmationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
