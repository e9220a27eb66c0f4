package services

import (
	"context"
	"math"

	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/core/domain"
)

// CartService manages per-session carts. Carts live in the client
// state store regardless of the catalog storage mode, and every
// mutation is saved before it is acknowledged.
type CartService struct {
	productRepo repositories.ProductRepository
	state       *localstore.ClientState
}

// NewCartService creates a new cart service
func NewCartService(productRepo repositories.ProductRepository, state *localstore.ClientState) *CartService {
	return &CartService{productRepo: productRepo, state: state}
}

// CartTotals aggregates the money view of a cart. Subtotal is exact in
// rupees, tax and total carry the exact fractional amounts. Rounding is
// applied only to the display fields.
type CartTotals struct {
	Subtotal      int64   `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
	DisplayTax    int64   `json:"displayTax"`
	DisplayTotal  int64   `json:"displayTotal"`
	ItemCount     int     `json:"itemCount"`
	DistinctItems int     `json:"distinctItems"`
}

// Items returns the saved cart in insertion order
func (s *CartService) Items(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return s.state.Cart(sessionID)
}

// AddToCart adds one unit of the product, or bumps quantity when the
// product is already in the cart.
func (s *CartService) AddToCart(ctx context.Context, sessionID, productID string) ([]domain.CartItem, error) {
	// 1. Snapshot the product at add time
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	// 2. Load, merge, save
	items, err := s.state.Cart(sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.CartItem{Product: *product, Quantity: 1})
	}

	if err := s.state.SaveCart(sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity adjusts a cart line by delta. The result clamps to a
// floor of 1, removal goes through RemoveFromCart only.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID string, delta int) ([]domain.CartItem, error) {
	items, err := s.state.Cart(sessionID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity += delta
			if items[i].Quantity < 1 {
				items[i].Quantity = 1
			}
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrProductNotFound
	}

	if err := s.state.SaveCart(sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// RemoveFromCart drops a line from the cart. Removing an absent line is
// a no-op.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, productID string) ([]domain.CartItem, error) {
	items, err := s.state.Cart(sessionID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID == productID {
			items = append(items[:i], items[i+1:]...)
			break
		}
	}

	if err := s.state.SaveCart(sessionID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// ClearCart empties the saved cart
func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	return s.state.ClearCart(sessionID)
}

// ComputeTotals derives the money view. The subtotal sums the listed
// price per line; offer prices are carried on the snapshot but do not
// enter the arithmetic.
func (s *CartService) ComputeTotals(items []domain.CartItem) CartTotals {
	var totals CartTotals
	for _, item := range items {
		totals.Subtotal += item.Price * int64(item.Quantity)
		totals.ItemCount += item.Quantity
	}
	totals.DistinctItems = len(items)
	totals.Tax = float64(totals.Subtotal) * domain.TaxRate
	totals.Total = float64(totals.Subtotal) + totals.Tax
	totals.DisplayTax = int64(math.Round(totals.Tax))
	totals.DisplayTotal = int64(math.Round(totals.Total))
	return totals
}
