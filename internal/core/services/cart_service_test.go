package services

import (
	"context"
	"path/filepath"
	"testing"

	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) (*CartService, context.Context) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	productRepo := localstore.NewProductStore(store)
	ctx := context.Background()
	require.NoError(t, productRepo.SeedIfEmpty(ctx, sampleProducts()))

	return NewCartService(productRepo, localstore.NewClientState(store)), ctx
}

func TestAddToCartTwiceBumpsQuantity(t *testing.T) {
	svc, ctx := newTestCart(t)

	_, err := svc.AddToCart(ctx, "sess", "m1")
	require.NoError(t, err)
	items, err := svc.AddToCart(ctx, "sess", "m1")
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddToCartUnknownProduct(t *testing.T) {
	svc, ctx := newTestCart(t)

	_, err := svc.AddToCart(ctx, "sess", "ghost")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	svc, ctx := newTestCart(t)

	svc.AddToCart(ctx, "sess", "w1")
	svc.AddToCart(ctx, "sess", "m2")
	svc.AddToCart(ctx, "sess", "w1")
	items, err := svc.Items(ctx, "sess")
	require.NoError(t, err)

	require.Len(t, items, 2)
	assert.Equal(t, "w1", items[0].ID)
	assert.Equal(t, "m2", items[1].ID)
}

func TestUpdateQuantityAppliesDelta(t *testing.T) {
	svc, ctx := newTestCart(t)
	for i := 0; i < 3; i++ {
		_, err := svc.AddToCart(ctx, "sess", "m1")
		require.NoError(t, err)
	}

	items, err := svc.UpdateQuantity(ctx, "sess", "m1", -1)
	require.NoError(t, err)
	assert.Equal(t, 2, items[0].Quantity, "delta -1 on a quantity of 3 decrements, it does not set")

	items, err = svc.UpdateQuantity(ctx, "sess", "m1", 3)
	require.NoError(t, err)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	svc, ctx := newTestCart(t)
	_, err := svc.AddToCart(ctx, "sess", "m1")
	require.NoError(t, err)

	for _, delta := range []int{0, -5} {
		items, err := svc.UpdateQuantity(ctx, "sess", "m1", delta)
		require.NoError(t, err)
		assert.Equal(t, 1, items[0].Quantity, "delta %d must clamp to 1, not remove", delta)
	}
}

func TestUpdateQuantityAbsentLine(t *testing.T) {
	svc, ctx := newTestCart(t)

	_, err := svc.UpdateQuantity(ctx, "sess", "m1", 3)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRemoveFromCart(t *testing.T) {
	svc, ctx := newTestCart(t)
	svc.AddToCart(ctx, "sess", "m1")
	svc.AddToCart(ctx, "sess", "m2")

	items, err := svc.RemoveFromCart(ctx, "sess", "m1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "m2", items[0].ID)

	// Removing an absent line is a no-op
	items, err = svc.RemoveFromCart(ctx, "sess", "ghost")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestCartIsPerSession(t *testing.T) {
	svc, ctx := newTestCart(t)
	svc.AddToCart(ctx, "alpha", "m1")

	items, err := svc.Items(ctx, "beta")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestComputeTotals(t *testing.T) {
	svc, _ := newTestCart(t)

	items := []domain.CartItem{
		{Product: domain.Product{ID: "m1", Price: 1499}, Quantity: 2},
		{Product: domain.Product{ID: "m2", Price: 1299}, Quantity: 1},
	}

	totals := svc.ComputeTotals(items)

	assert.Equal(t, int64(4297), totals.Subtotal)
	assert.InDelta(t, 4297*0.18, totals.Tax, 1e-9)
	assert.InDelta(t, 4297*1.18, totals.Total, 1e-9)
	assert.Equal(t, int64(773), totals.DisplayTax, "display tax rounds 773.46")
	assert.Equal(t, int64(5070), totals.DisplayTotal, "display total rounds 5070.46")
	assert.Equal(t, 3, totals.ItemCount)
	assert.Equal(t, 2, totals.DistinctItems)
}

func TestComputeTotalsChargesListedPrice(t *testing.T) {
	svc, _ := newTestCart(t)
	offer := int64(1000)

	// The offer price is display-only and never enters the arithmetic
	totals := svc.ComputeTotals([]domain.CartItem{
		{Product: domain.Product{ID: "m1", Price: 1499, OfferPrice: &offer}, Quantity: 2},
	})

	assert.Equal(t, int64(2998), totals.Subtotal)
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	svc, _ := newTestCart(t)

	totals := svc.ComputeTotals(nil)

	assert.Zero(t, totals.Subtotal)
	assert.Zero(t, totals.Tax)
	assert.Zero(t, totals.DisplayTotal)
}
