package handlers

import (
	"errors"
	"fmt"
	"log"

	"gerai/internal/repositories"
	"gerai/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for shopping carts.
type CartHandler struct {
	service  *services.CartService
	validate *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService) *CartHandler {
	return &CartHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/:user_id", h.HandleGetCart)
	cartRoutes.Post("/add", h.HandleAddToCart)
	cartRoutes.Delete("/remove", h.HandleRemoveFromCart)
	cartRoutes.Delete("/clear/:user_id", h.HandleClearCart)
}

// cartItemRequest is the payload for adding to or removing from a cart.
type cartItemRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// HandleGetCart retrieves all cart items for a user.
func (h *CartHandler) HandleGetCart(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	items, err := h.service.GetCart(userID)
	if err != nil {
		log.Printf("Error getting cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
		})
	}
	return c.JSON(items)
}

// HandleAddToCart adds a product to a user's cart.
func (h *CartHandler) HandleAddToCart(c *fiber.Ctx) error {
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing add-to-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	item, err := h.service.AddToCart(req.UserID, req.ProductID, req.Quantity)
	if err != nil {
		log.Printf("Error adding product %s to cart for user %s: %v", req.ProductID, req.UserID, err)
		if errors.Is(err, services.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Could not add item to cart",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// HandleRemoveFromCart removes a product from a user's cart.
func (h *CartHandler) HandleRemoveFromCart(c *fiber.Ctx) error {
	var req cartItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing remove-from-cart request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.RemoveFromCart(req.UserID, req.ProductID); err != nil {
		log.Printf("Error removing product %s from cart for user %s: %v", req.ProductID, req.UserID, err)
		if errors.Is(err, repositories.ErrCartItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Cart item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not remove item from cart",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Item removed from cart",
	})
}

// HandleClearCart removes every item from a user's cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	if err := h.service.ClearCart(userID); err != nil {
		log.Printf("Error clearing cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
