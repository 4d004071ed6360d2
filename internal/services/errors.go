package services

import (
	"errors"
	"fmt"
)

// ErrEmptyOrder rejects a create-order request with no line items
// before any store access happens.
var ErrEmptyOrder = errors.New("order must contain at least one item")

// ErrInvalidQuantity rejects a non-positive quantity before any store
// access happens.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// ErrInvalidOrderStatus rejects a status value outside the known set.
var ErrInvalidOrderStatus = errors.New("invalid order status")

// ProductNotFoundError reports a requested product ID with no matching
// catalog entry.
type ProductNotFoundError struct {
	ProductID string
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %s not found", e.ProductID)
}

// InsufficientStockError reports a requested quantity that exceeds the
// available stock at validation time.
type InsufficientStockError struct {
	ProductID string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested: %d, available: %d)", e.ProductID, e.Requested, e.Available)
}
