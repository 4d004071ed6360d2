package repositories

import (
	"errors"
	"fmt"

	"gerai/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
// It is the sole writer of order rows and, within Create, the sole
// decrementer of product stock.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders with their items attached.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items", itemsInInsertionOrder).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves a single order by its ID, items attached.
func (r *GORMOrderRepository) GetByID(id string) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items", itemsInInsertionOrder).First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, ErrOrderNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create persists the order header, its items, and the matching stock
// decrements in a single transaction. Each decrement is guarded by
// "stock >= requested"; a failed guard aborts the whole transaction
// with a StockConflictError, so two concurrent orders can never
// jointly oversell a product. On success the order is re-read from
// storage, items included.
func (r *GORMOrderRepository) Create(order *models.Order) (*models.Order, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
			if res.Error != nil {
				return fmt.Errorf("failed to decrement stock for product %s: %w", item.ProductID, res.Error)
			}
			if res.RowsAffected == 0 {
				return &StockConflictError{ProductID: item.ProductID, Requested: item.Quantity}
			}
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(order.ID)
}

// UpdateStatus updates the status of an order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string) error {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("failed to update order status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("order with ID %s for status update: %w", id, ErrOrderNotFound)
	}
	return nil
}

// Delete removes an order and its items together.
func (r *GORMOrderRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderItem{}, "order_id = ?", id).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		res := tx.Delete(&models.Order{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("failed to delete order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order with ID %s for deletion: %w", id, ErrOrderNotFound)
		}
		return nil
	})
}

// itemsInInsertionOrder keeps preloaded items in the order they were
// written, which matches the caller's input order.
func itemsInInsertionOrder(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id ASC")
}
