package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status values. Only "pending" is assigned by this service;
// the rest exist for the status-update endpoint.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderItem is a single persisted line within an order. Price is the
// unit price snapshotted from the product at order-creation time; it is
// never re-read, so historical orders are immune to catalog price changes.
type OrderItem struct {
	ID        uint            `json:"-" gorm:"primaryKey;autoIncrement"`
	OrderID   string          `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
}

// Order represents a customer order. Total is computed once at creation
// and must equal the sum of Quantity * Price over Items.
type Order struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string          `json:"user_id" gorm:"index;type:varchar(36)"`
	Total     decimal.Decimal `json:"total" gorm:"type:decimal(14,2)"`
	Status    string          `json:"status" gorm:"type:varchar(20);default:pending"`
	Items     []OrderItem     `json:"order_items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// OrderItemRequest is one requested (product, quantity) pairing as sent
// by the client. It is validated and priced before anything is persisted.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// CreateOrderRequest is the payload accepted by POST /orders.
type CreateOrderRequest struct {
	UserID string             `json:"user_id" validate:"required"`
	Items  []OrderItemRequest `json:"order_items" validate:"required,min=1,dive"`
}
