package services

import (
	"fmt"

	"gerai/internal/models"
	"gerai/internal/repositories"
)

// CartService handles business logic related to shopping carts.
type CartService struct {
	repo repositories.CartRepository
}

// NewCartService creates a new CartService.
func NewCartService(repo repositories.CartRepository) *CartService {
	return &CartService{
		repo: repo,
	}
}

// GetCart retrieves all cart items for a user.
func (s *CartService) GetCart(userID string) ([]models.CartItem, error) {
	return s.repo.GetByUser(userID)
}

// AddToCart adds a product to a user's cart. If the product is already
// in the cart, its quantity is incremented instead of adding a row.
func (s *CartService) AddToCart(userID, productID string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidQuantity, quantity)
	}

	item, err := s.repo.GetItem(userID, productID)
	if err == nil {
		item.Quantity += quantity
		if err := s.repo.Update(item); err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		return item, nil
	}

	newItem := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.repo.Create(newItem); err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}
	return newItem, nil
}

// RemoveFromCart removes a product from a user's cart.
func (s *CartService) RemoveFromCart(userID, productID string) error {
	if _, err := s.repo.GetItem(userID, productID); err != nil {
		return err
	}
	return s.repo.Delete(userID, productID)
}

// ClearCart removes every item from a user's cart.
func (s *CartService) ClearCart(userID string) error {
	return s.repo.Clear(userID)
}
