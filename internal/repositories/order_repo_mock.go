package repositories

import (
	"fmt"
	"sync"
	"time"

	"gerai/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
// It leans on MockProductRepository for the guarded stock decrements so
// the in-memory wiring honours the same all-or-nothing contract as the
// GORM writer.
type MockOrderRepository struct {
	products *MockProductRepository
	orders   map[string]models.Order
	nextItem uint
	mu       sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository(products *MockProductRepository) *MockOrderRepository {
	return &MockOrderRepository{
		products: products,
		orders:   make(map[string]models.Order),
	}
}

// GetAll returns all orders.
func (r *MockOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		orderList = append(orderList, copyOrder(order))
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, fmt.Errorf("order with ID %s: %w", id, ErrOrderNotFound)
	}
	cp := copyOrder(order)
	return &cp, nil
}

// Create adds a new order, decrementing stock per line. A failed
// decrement restores the stock already taken and nothing is stored.
func (r *MockOrderRepository) Create(order *models.Order) (*models.Order, error) {
	for i, item := range order.Items {
		if err := r.products.DecrementStock(item.ProductID, item.Quantity); err != nil {
			for _, taken := range order.Items[:i] {
				r.products.restoreStock(taken.ProductID, taken.Quantity)
			}
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	for i := range order.Items {
		r.nextItem++
		order.Items[i].ID = r.nextItem
		order.Items[i].OrderID = order.ID
	}
	r.orders[order.ID] = copyOrder(*order)

	cp := copyOrder(r.orders[order.ID])
	return &cp, nil
}

// UpdateStatus updates the status of an order.
func (r *MockOrderRepository) UpdateStatus(id string, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s for status update: %w", id, ErrOrderNotFound)
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return nil
}

// Delete removes an order and its items.
func (r *MockOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return fmt.Errorf("order with ID %s for deletion: %w", id, ErrOrderNotFound)
	}
	delete(r.orders, id)
	return nil
}

// copyOrder clones an order so callers never share the stored Items slice.
func copyOrder(order models.Order) models.Order {
	items := make([]models.OrderItem, len(order.Items))
	copy(items, order.Items)
	order.Items = items
	return order
}
