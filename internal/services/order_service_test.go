package services_test

import (
	"errors"
	"fmt"
	"testing"

	"gerai/internal/models"
	"gerai/internal/repositories"
	"gerai/internal/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id string) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) (*models.Order, error) {
	args := m.Called(order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	// Allow tests to echo the persisted order back.
	if fn, ok := args.Get(0).(func(*models.Order) *models.Order); ok {
		return fn(order), args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(id string, status string) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.OrderEventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(exchange, routingKey string, body []byte) error {
	args := m.Called(exchange, routingKey, body)
	return args.Error(0)
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockOrders, mockProducts, mockPub)

	catalog := []models.Product{
		{ID: "p1", Name: "Laptop", Price: decimal.RequireFromString("1200.00"), Stock: 5},
		{ID: "p2", Name: "Mouse", Price: decimal.RequireFromString("25.00"), Stock: 50},
	}

	mockProducts.On("GetByIDs", []string{"p1", "p2"}).Return(catalog, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(
		func(order *models.Order) *models.Order { return order }, nil).Once()
	mockPub.On("Publish", "orders", "order.created", mock.Anything).Return(nil).Once()

	req := models.CreateOrderRequest{
		UserID: "user-1",
		Items: []models.OrderItemRequest{
			{ProductID: "p1", Quantity: 3},
			{ProductID: "p2", Quantity: 2},
		},
	}

	order, err := service.CreateOrder(req)
	assert.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 2)

	// Total is the exact sum of quantity * snapshotted price.
	assert.True(t, decimal.RequireFromString("3650.00").Equal(order.Total),
		"expected total 3650.00, got %s", order.Total)
	assert.True(t, decimal.RequireFromString("1200.00").Equal(order.Items[0].Price))

	mockProducts.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
	mockPub.AssertExpectations(t)
}

func TestOrderService_CreateOrder_EmptyItems(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewOrderService(mockOrders, mockProducts, nil)

	_, err := service.CreateOrder(models.CreateOrderRequest{UserID: "user-1"})
	assert.ErrorIs(t, err, services.ErrEmptyOrder)

	// Rejected before any store access.
	mockProducts.AssertNotCalled(t, "GetByIDs", mock.Anything)
	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
}

func TestOrderService_CreateOrder_DeduplicatesBulkFetch(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewOrderService(mockOrders, mockProducts, nil)

	catalog := []models.Product{
		{ID: "p1", Price: decimal.RequireFromString("10.00"), Stock: 100},
	}

	// Two request lines for p1 still mean a single-ID bulk fetch.
	mockProducts.On("GetByIDs", []string{"p1"}).Return(catalog, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(
		func(order *models.Order) *models.Order { return order }, nil).Once()

	req := models.CreateOrderRequest{
		UserID: "user-1",
		Items: []models.OrderItemRequest{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p1", Quantity: 2},
		},
	}

	order, err := service.CreateOrder(req)
	assert.NoError(t, err)
	assert.Len(t, order.Items, 2, "duplicate request lines stay separate order lines")
	assert.True(t, decimal.RequireFromString("30.00").Equal(order.Total))

	mockProducts.AssertExpectations(t)
	mockOrders.AssertExpectations(t)
}

func TestOrderService_CreateOrder_ProductNotFound(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewOrderService(mockOrders, mockProducts, nil)

	// The repository returns only matching products; 9999 is absent.
	mockProducts.On("GetByIDs", []string{"9999"}).Return([]models.Product{}, nil).Once()

	req := models.CreateOrderRequest{
		UserID: "user-1",
		Items:  []models.OrderItemRequest{{ProductID: "9999", Quantity: 1}},
	}

	_, err := service.CreateOrder(req)
	var notFound *services.ProductNotFoundError
	assert.True(t, errors.As(err, &notFound))
	assert.Equal(t, "9999", notFound.ProductID)

	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
	mockProducts.AssertExpectations(t)
}

func TestOrderService_CreateOrder_InsufficientStock(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewOrderService(mockOrders, mockProducts, nil)

	catalog := []models.Product{
		{ID: "p2", Price: decimal.RequireFromString("10.00"), Stock: 1},
	}
	mockProducts.On("GetByIDs", []string{"p2"}).Return(catalog, nil).Once()

	req := models.CreateOrderRequest{
		UserID: "user-1",
		Items:  []models.OrderItemRequest{{ProductID: "p2", Quantity: 2}},
	}

	_, err := service.CreateOrder(req)
	var noStock *services.InsufficientStockError
	assert.True(t, errors.As(err, &noStock))
	assert.Equal(t, "p2", noStock.ProductID)
	assert.Equal(t, 2, noStock.Requested)
	assert.Equal(t, 1, noStock.Available)

	mockOrders.AssertNotCalled(t, "Create", mock.Anything)
	mockProducts.AssertExpectations(t)
}

func TestOrderService_CreateOrder_WriterFailure(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewOrderService(mockOrders, mockProducts, nil)

	catalog := []models.Product{
		{ID: "p1", Price: decimal.RequireFromString("10.00"), Stock: 10},
	}
	mockProducts.On("GetByIDs", []string{"p1"}).Return(catalog, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(nil, fmt.Errorf("database error")).Once()

	req := models.CreateOrderRequest{
		UserID: "user-1",
		Items:  []models.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	}

	_, err := service.CreateOrder(req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database error")
	mockOrders.AssertExpectations(t)
}

func TestOrderService_CreateOrder_StockConflictSurfacesTyped(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewOrderService(mockOrders, mockProducts, nil)

	catalog := []models.Product{
		{ID: "p1", Price: decimal.RequireFromString("10.00"), Stock: 10},
	}
	mockProducts.On("GetByIDs", []string{"p1"}).Return(catalog, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(
		nil, &repositories.StockConflictError{ProductID: "p1", Requested: 1}).Once()

	req := models.CreateOrderRequest{
		UserID: "user-1",
		Items:  []models.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	}

	_, err := service.CreateOrder(req)
	var conflict *repositories.StockConflictError
	assert.True(t, errors.As(err, &conflict), "conflict must survive wrapping")
	assert.Equal(t, "p1", conflict.ProductID)
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	mockPub := new(MockPublisher)
	service := services.NewOrderService(mockOrders, mockProducts, mockPub)

	catalog := []models.Product{
		{ID: "p1", Price: decimal.RequireFromString("10.00"), Stock: 10},
	}
	mockProducts.On("GetByIDs", []string{"p1"}).Return(catalog, nil).Once()
	mockOrders.On("Create", mock.AnythingOfType("*models.Order")).Return(
		func(order *models.Order) *models.Order { return order }, nil).Once()
	mockPub.On("Publish", "orders", "order.created", mock.Anything).Return(fmt.Errorf("broker down")).Once()

	req := models.CreateOrderRequest{
		UserID: "user-1",
		Items:  []models.OrderItemRequest{{ProductID: "p1", Quantity: 1}},
	}

	order, err := service.CreateOrder(req)
	assert.NoError(t, err, "event publication is best effort")
	assert.NotNil(t, order)
	mockPub.AssertExpectations(t)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockOrders := new(MockOrderRepository)
	service := services.NewOrderService(mockOrders, mockProducts, nil)

	mockOrders.On("UpdateStatus", "order-1", models.OrderStatusShipped).Return(nil).Once()
	err := service.UpdateOrderStatus("order-1", models.OrderStatusShipped)
	assert.NoError(t, err)
	mockOrders.AssertExpectations(t)

	err = service.UpdateOrderStatus("order-1", "teleported")
	assert.ErrorIs(t, err, services.ErrInvalidOrderStatus)
	assert.Contains(t, err.Error(), "invalid order status")
	mockOrders.AssertNotCalled(t, "UpdateStatus", "order-1", "teleported")
}
