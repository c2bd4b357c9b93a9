package order

import (
	"fmt"
	"math/rand"
	"time"
)

// GenerateOrderID builds the fallback id used when checkout does not supply
// one. It is not collision-free; the unique index on the orders collection
// is the backstop, and a collision surfaces as a ValidationError with no
// retry.
func GenerateOrderID() string {
	return fmt.Sprintf(
		"ORD-%d-%d",
		time.Now().UnixMilli(),
		rand.Intn(1000),
	)
}
