package repositories

import (
	"fmt"
	"sync"
	"time"

	"gerai/internal/models"
)

// MockCartRepository is an in-memory implementation of CartRepository.
type MockCartRepository struct {
	items  map[string]models.CartItem // keyed by userID + "/" + productID
	nextID uint
	mu     sync.RWMutex
}

// NewMockCartRepository creates a new instance of MockCartRepository.
func NewMockCartRepository() *MockCartRepository {
	return &MockCartRepository{
		items: make(map[string]models.CartItem),
	}
}

func cartKey(userID, productID string) string {
	return userID + "/" + productID
}

// GetByUser returns all cart items for a user.
func (r *MockCartRepository) GetByUser(userID string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []models.CartItem
	for _, item := range r.items {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

// GetItem returns the cart row for a (user, product) pair.
func (r *MockCartRepository) GetItem(userID, productID string) (*models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[cartKey(userID, productID)]
	if !ok {
		return nil, fmt.Errorf("cart item for user %s product %s: %w", userID, productID, ErrCartItemNotFound)
	}
	return &item, nil
}

// Create adds a new cart item.
func (r *MockCartRepository) Create(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item.ID = r.nextID
	item.CreatedAt = time.Now()
	item.UpdatedAt = time.Now()
	r.items[cartKey(item.UserID, item.ProductID)] = *item
	return nil
}

// Update modifies an existing cart item.
func (r *MockCartRepository) Update(item *models.CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey(item.UserID, item.ProductID)
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("cart item %d for update: %w", item.ID, ErrCartItemNotFound)
	}
	item.UpdatedAt = time.Now()
	r.items[key] = *item
	return nil
}

// Delete removes the cart row for a (user, product) pair.
func (r *MockCartRepository) Delete(userID, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := cartKey(userID, productID)
	if _, ok := r.items[key]; !ok {
		return fmt.Errorf("cart item for user %s product %s for deletion: %w", userID, productID, ErrCartItemNotFound)
	}
	delete(r.items, key)
	return nil
}

// Clear removes every cart row for a user.
func (r *MockCartRepository) Clear(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, item := range r.items {
		if item.UserID == userID {
			delete(r.items, key)
		}
	}
	return nil
}
