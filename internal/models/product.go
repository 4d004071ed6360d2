package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the store catalog.
// Price is an exact decimal so line-total arithmetic never drifts.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"omitempty,max=500"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2)" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
