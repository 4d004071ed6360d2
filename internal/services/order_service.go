package services

import (
	"encoding/json"
	"fmt"
	"log"

	"gerai/internal/models"
	"gerai/internal/repositories"

	"github.com/google/uuid"
)

// OrderEventPublisher is the slice of the message client the order
// workflow needs.
type OrderEventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderService drives the order-creation workflow: bulk product fetch,
// validation and pricing, atomic persistence, event publication.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	publisher   OrderEventPublisher
}

// NewOrderService creates a new OrderService. publisher may be nil, in
// which case order events are skipped.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders with their items.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder turns a proposed line-item list into a persisted order
// with a server-computed total and price-snapshotted lines.
//
// The referenced products are fetched in a single bulk query regardless
// of line count, validated and priced without side effects, then
// written atomically together with the matching stock decrements. Any
// rejection leaves the store untouched.
func (s *OrderService) CreateOrder(req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyOrder
	}

	// One round trip to the catalog: dedupe the requested IDs first.
	// Duplicate request lines still become separate order lines.
	ids := make([]string, 0, len(req.Items))
	seen := make(map[string]bool, len(req.Items))
	for _, item := range req.Items {
		if !seen[item.ProductID] {
			seen[item.ProductID] = true
			ids = append(ids, item.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products for order: %w", err)
	}

	priced, err := ValidateOrderItems(req.Items, products)
	if err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:     uuid.New().String(),
		UserID: req.UserID,
		Total:  priced.Total,
		Status: models.OrderStatusPending,
		Items:  priced.Items,
	}

	created, err := s.orderRepo.Create(order)
	if err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publishOrderCreated(created)

	return created, nil
}

// publishOrderCreated emits an order.created event. Publication is best
// effort: a broker failure is logged and never fails the order.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.publisher == nil {
		log.Println("Order event publisher is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.Total,
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.publisher.Publish("orders", "order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
		return
	}
	log.Printf("Successfully published order created event for order %s", order.ID)
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{
		models.OrderStatusPending:    true,
		models.OrderStatusProcessing: true,
		models.OrderStatusShipped:    true,
		models.OrderStatusDelivered:  true,
		models.OrderStatusCancelled:  true,
	}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidOrderStatus, status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// DeleteOrder removes an order and its items together.
func (s *OrderService) DeleteOrder(id string) error {
	return s.orderRepo.Delete(id)
}
