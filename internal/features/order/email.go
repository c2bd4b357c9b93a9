package order

import (
	"fmt"
	"strings"
)

const confirmationSubjectFmt = "Order Confirmation - Pranav Foods - Order #%s"

// buildConfirmationHTML renders the confirmation body the customer and the
// business copies both receive. Prices and the total are formatted to two
// decimals; the status notice is static because a just-confirmed order is
// always pending.
func buildConfirmationHTML(req *SendConfirmationRequest) string {
	var items strings.Builder
	for _, item := range req.Items {
		fmt.Fprintf(
			&items,
			"<li>%s (x%d) - $%.2f each</li>",
			item.ProductName,
			item.Quantity,
			item.Price,
		)
	}

	addr := req.ShippingAddress

	var body strings.Builder
	fmt.Fprintf(&body, "<h2>Order Confirmation for %s</h2>", req.CustomerName)
	body.WriteString("<p>Thank you for your order from Pranav Foods!</p>")
	fmt.Fprintf(&body, "<p><strong>Order ID:</strong> %s</p>", req.OrderID)
	body.WriteString("<h3>Order Details:</h3>")
	fmt.Fprintf(&body, "<ul>%s</ul>", items.String())
	fmt.Fprintf(&body, "<p><strong>Total:</strong> $%.2f</p>", req.Total)
	body.WriteString("<h3>Shipping Address:</h3>")
	fmt.Fprintf(
		&body,
		"<p>%s<br>%s, %s %s<br>%s</p>",
		addr.Street,
		addr.City,
		addr.State,
		addr.PostalCode,
		addr.Country,
	)
	body.WriteString("<p>Your order status is currently <strong>pending</strong>. We will notify you once it's processed.</p>")
	body.WriteString("<p>For any inquiries, please contact us.</p>")
	body.WriteString("<p>Best regards,<br>Pranav Foods Team</p>")

	return body.String()
}
