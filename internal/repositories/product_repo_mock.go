package repositories

import (
	"fmt"
	"sync"

	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products.
func (r *MockProductRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		productList = append(productList, p)
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	return &product, nil
}

// GetByIDs returns the products matching the given IDs. Missing IDs are
// simply absent from the result.
func (r *MockProductRepository) GetByIDs(ids []string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("product with ID %s for update: %w", product.ID, ErrProductNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s for deletion: %w", id, ErrProductNotFound)
	}
	delete(r.products, id)
	return nil
}

// DecrementStock atomically subtracts qty from a product's stock,
// failing with a StockConflictError when less than qty is available.
// Used by MockOrderRepository to mirror the guarded decrement the GORM
// writer performs inside its transaction.
func (r *MockProductRepository) DecrementStock(id string, qty int) error {
	if qty <= 0 {
		return fmt.Errorf("decrement quantity must be positive, got %d", qty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return fmt.Errorf("product with ID %s: %w", id, ErrProductNotFound)
	}
	if product.Stock < qty {
		return &StockConflictError{ProductID: id, Requested: qty}
	}
	product.Stock -= qty
	r.products[id] = product
	return nil
}

// restoreStock undoes a successful decrement when a later line of the
// same order fails.
func (r *MockProductRepository) restoreStock(id string, qty int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product, ok := r.products[id]; ok {
		product.Stock += qty
		r.products[id] = product
	}
}
