package repositories

import "gerai/internal/models"

// CartRepository defines the interface for cart data access.
type CartRepository interface {
	GetByUser(userID string) ([]models.CartItem, error)
	GetItem(userID, productID string) (*models.CartItem, error)
	Create(item *models.CartItem) error
	Update(item *models.CartItem) error
	Delete(userID, productID string) error
	Clear(userID string) error
}
