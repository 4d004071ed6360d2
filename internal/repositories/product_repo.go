package repositories

import (
	"gerai/internal/models"
)

// ProductRepository defines the interface for product data access.
// GetByIDs is the bulk lookup used by the order workflow: missing IDs
// are simply absent from the result, never an error.
type ProductRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (*models.Product, error)
	GetByIDs(ids []string) ([]models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(id string) error
}
