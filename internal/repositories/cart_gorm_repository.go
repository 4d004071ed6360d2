package repositories

import (
	"errors"
	"fmt"

	"gerai/internal/models"

	"gorm.io/gorm"
)

// GORMCartRepository is a GORM implementation of CartRepository.
type GORMCartRepository struct {
	db *gorm.DB
}

// NewGORMCartRepository creates a new instance of GORMCartRepository.
func NewGORMCartRepository(db *gorm.DB) *GORMCartRepository {
	return &GORMCartRepository{
		db: db,
	}
}

// GetByUser retrieves all cart items for a user.
func (r *GORMCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := r.db.Where("user_id = ?", userID).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get cart for user %s: %w", userID, err)
	}
	return items, nil
}

// GetItem retrieves the cart row for a (user, product) pair.
func (r *GORMCartRepository) GetItem(userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	if err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("cart item for user %s product %s: %w", userID, productID, ErrCartItemNotFound)
		}
		return nil, fmt.Errorf("failed to get cart item for user %s: %w", userID, err)
	}
	return &item, nil
}

// Create adds a new cart item.
func (r *GORMCartRepository) Create(item *models.CartItem) error {
	if err := r.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// Update modifies an existing cart item.
func (r *GORMCartRepository) Update(item *models.CartItem) error {
	res := r.db.Save(item)
	if res.Error != nil {
		return fmt.Errorf("failed to update cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item %d for update: %w", item.ID, ErrCartItemNotFound)
	}
	return nil
}

// Delete removes the cart row for a (user, product) pair.
func (r *GORMCartRepository) Delete(userID, productID string) error {
	res := r.db.Delete(&models.CartItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("cart item for user %s product %s for deletion: %w", userID, productID, ErrCartItemNotFound)
	}
	return nil
}

// Clear removes every cart row for a user.
func (r *GORMCartRepository) Clear(userID string) error {
	if err := r.db.Delete(&models.CartItem{}, "user_id = ?", userID).Error; err != nil {
		return fmt.Errorf("failed to clear cart for user %s: %w", userID, err)
	}
	return nil
}
