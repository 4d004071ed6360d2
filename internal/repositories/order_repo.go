package repositories

import (
	"gerai/internal/models"
)

// OrderRepository defines the interface for order data access.
// Create persists the order header, its items, and the matching stock
// decrements as one atomic unit, then returns the order re-read from
// storage. Either every row exists afterwards or none do.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) (*models.Order, error)
	UpdateStatus(id string, status string) error
	Delete(id string) error
}
