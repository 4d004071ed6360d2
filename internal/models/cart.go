package models

import "time"

// CartItem represents one product a user has staged for checkout.
// A user has at most one row per product; adding the same product again
// increments the quantity instead.
type CartItem struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex:idx_cart_user_product"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
