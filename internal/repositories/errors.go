package repositories

import (
	"errors"
	"fmt"
)

// Sentinel errors so callers can branch on the failure kind with
// errors.Is instead of matching message strings.
var (
	ErrProductNotFound  = errors.New("product not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrCartItemNotFound = errors.New("cart item not found")
)

// StockConflictError is returned when the conditional stock decrement
// inside the order-write transaction finds less stock than requested.
// Validation has already passed at that point, so this means a
// concurrent order consumed the stock first.
type StockConflictError struct {
	ProductID string
	Requested int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("stock for product %s changed while creating order (requested: %d)", e.ProductID, e.Requested)
}
