package handlers

import (
	"errors"

	"mycloth-atelier/internal/adapters/http/middleware"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/core/services"
	"mycloth-atelier/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *services.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

// AddRequest represents add-to-cart request body
type AddRequest struct {
	ProductID string `json:"productId"`
}

// QuantityRequest represents a quantity adjustment request body. Delta
// is added to the current line quantity.
type QuantityRequest struct {
	Delta int `json:"delta"`
}

// Get returns the cart with computed totals
// @Summary Get cart
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Response
// @Router /cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	items, err := h.cartService.Items(c.Context(), middleware.GetSessionID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to load cart")
	}

	return h.cartPayload(c, "Cart retrieved", items)
}

// Add puts one unit of a product in the cart
// @Summary Add to cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param body body AddRequest true "Product to add"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cart/items [post]
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var req AddRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.ProductID == "" {
		return response.BadRequest(c, "Product id is required")
	}

	items, err := h.cartService.AddToCart(c.Context(), middleware.GetSessionID(c), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to update cart")
	}

	return h.cartPayload(c, "Added to cart", items)
}

// UpdateQuantity adjusts a line quantity by a delta, clamped to a
// floor of one
// @Summary Update quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body QuantityRequest true "Quantity delta"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cart/items/{id} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req QuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	items, err := h.cartService.UpdateQuantity(c.Context(), middleware.GetSessionID(c), c.Params("id"), req.Delta)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, "Item not in cart")
		}
		return response.InternalServerError(c, "Failed to update cart")
	}

	return h.cartPayload(c, "Quantity updated", items)
}

// Remove drops a line from the cart
// @Summary Remove from cart
// @Tags Cart
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Router /cart/items/{id} [delete]
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	items, err := h.cartService.RemoveFromCart(c.Context(), middleware.GetSessionID(c), c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to update cart")
	}

	return h.cartPayload(c, "Removed from cart", items)
}

// Clear empties the cart
// @Summary Clear cart
// @Tags Cart
// @Produce json
// @Success 200 {object} response.Response
// @Router /cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.cartService.ClearCart(c.Context(), middleware.GetSessionID(c)); err != nil {
		return response.InternalServerError(c, "Failed to clear cart")
	}

	return h.cartPayload(c, "Cart cleared", []domain.CartItem{})
}

func (h *CartHandler) cartPayload(c *fiber.Ctx, message string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	return response.Success(c, message, fiber.Map{
		"items":  items,
		"totals": h.cartService.ComputeTotals(items),
	})
}
