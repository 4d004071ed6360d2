package services

import (
	"gerai/internal/models"

	"github.com/shopspring/decimal"
)

// PricedOrder is the result of validating requested items against a
// catalog snapshot: the snapshotted lines plus their exact total.
type PricedOrder struct {
	Total decimal.Decimal
	Items []models.OrderItem
}

// ValidateOrderItems checks each requested line against the fetched
// product set and prices it. It is a pure computation: no store access,
// no side effects.
//
// The first offending line short-circuits with a ProductNotFoundError
// or InsufficientStockError naming the product. Output lines keep the
// caller's input order, and duplicate product IDs stay separate lines.
func ValidateOrderItems(items []models.OrderItemRequest, products []models.Product) (*PricedOrder, error) {
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	total := decimal.Zero
	priced := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok {
			return nil, &ProductNotFoundError{ProductID: item.ProductID}
		}
		if item.Quantity > product.Stock {
			return nil, &InsufficientStockError{
				ProductID: item.ProductID,
				Requested: item.Quantity,
				Available: product.Stock,
			}
		}

		// Snapshot the unit price at validation time.
		priced = append(priced, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	return &PricedOrder{Total: total, Items: priced}, nil
}
