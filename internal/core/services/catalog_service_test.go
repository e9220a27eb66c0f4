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

func newTestCatalog(t *testing.T) (*CatalogService, *localstore.Store) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return NewCatalogService(localstore.NewProductStore(store)), store
}

func sampleProducts() []domain.Product {
	return []domain.Product{
		{ID: "m1", Name: "Ghost-Fit Technical Trunk", Category: domain.CategoryMens, Price: 1499, Description: "Ultra-thin microfiber", Stock: 50},
		{ID: "m2", Name: "Bamboo-Lux Crew Vest", Category: domain.CategoryMens, Price: 1299, Description: "Thermo-regulating bamboo", Stock: 50},
		{ID: "w1", Name: "Ethereal Silk Bralette", Category: domain.CategoryWomens, Price: 1899, Description: "Mulberry silk", Stock: 50},
		{ID: "a1", Name: "Aero-Mesh Boxer Brief", Category: domain.CategoryActive, Price: 1699, Description: "Ventilation zones", Stock: 50},
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	svc, _ := newTestCatalog(t)
	products := sampleProducts()

	svc.Derive(products, "", domain.CategoryAll, domain.SortPriceLowHigh)

	assert.Equal(t, "m1", products[0].ID, "input order must survive a sorted derivation")
	assert.Equal(t, int64(1499), products[0].Price)
}

func TestDeriveSortOptions(t *testing.T) {
	svc, _ := newTestCatalog(t)
	products := sampleProducts()

	tests := []struct {
		name string
		sort domain.SortOption
		want []int64
	}{
		{"none keeps catalog order", domain.SortNone, []int64{1499, 1299, 1899, 1699}},
		{"price low to high", domain.SortPriceLowHigh, []int64{1299, 1499, 1699, 1899}},
		{"price high to low", domain.SortPriceHighLow, []int64{1899, 1699, 1499, 1299}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := svc.Derive(products, "", domain.CategoryAll, tt.sort)
			got := make([]int64, 0, len(view))
			for _, p := range view {
				got = append(got, p.Price)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeriveNameSortIsStable(t *testing.T) {
	svc, _ := newTestCatalog(t)
	products := []domain.Product{
		{ID: "p1", Name: "Same Name", Price: 100},
		{ID: "p2", Name: "Same Name", Price: 200},
		{ID: "p3", Name: "Another", Price: 300},
	}

	view := svc.Derive(products, "", domain.CategoryAll, domain.SortNameAZ)

	require.Len(t, view, 3)
	assert.Equal(t, "p3", view[0].ID)
	assert.Equal(t, "p1", view[1].ID, "equal names keep catalog order")
	assert.Equal(t, "p2", view[2].ID)
}

func TestDeriveFilters(t *testing.T) {
	svc, _ := newTestCatalog(t)
	products := sampleProducts()

	t.Run("text filter matches name and description", func(t *testing.T) {
		byName := svc.Derive(products, "silk", domain.CategoryAll, domain.SortNone)
		require.Len(t, byName, 1)
		assert.Equal(t, "w1", byName[0].ID)

		byDesc := svc.Derive(products, "ventilation", domain.CategoryAll, domain.SortNone)
		require.Len(t, byDesc, 1)
		assert.Equal(t, "a1", byDesc[0].ID)
	})

	t.Run("category filter", func(t *testing.T) {
		mens := svc.Derive(products, "", domain.CategoryMens, domain.SortNone)
		assert.Len(t, mens, 2)
	})

	t.Run("all passes everything", func(t *testing.T) {
		all := svc.Derive(products, "", domain.CategoryAll, domain.SortNone)
		assert.Len(t, all, 4)
	})

	t.Run("empty result is valid", func(t *testing.T) {
		none := svc.Derive(products, "no such garment", domain.CategoryAll, domain.SortNone)
		assert.Empty(t, none)
	})
}

func TestInitInventoryIsIdempotent(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	require.NoError(t, svc.InitInventory(ctx))
	require.NoError(t, svc.InitInventory(ctx))

	products := svc.GetProducts(ctx)
	assert.Len(t, products, 24, "double seeding must not duplicate the catalog")
	assert.Equal(t, "m1", products[0].ID)
	assert.Equal(t, "s6", products[23].ID)
}

func TestUpdateProductAbsentIDReturnsNotFound(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()
	require.NoError(t, svc.InitInventory(ctx))

	_, err := svc.UpdateProduct(ctx, "ghost-id", &ProductInput{
		Name:     "Phantom",
		Category: string(domain.CategoryMens),
		Price:    999,
		Stock:    5,
	})

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestAddProductValidation(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		input ProductInput
	}{
		{"empty name", ProductInput{Category: "Mens", Price: 100, Stock: 1}},
		{"bad category", ProductInput{Name: "X", Category: "Footwear", Price: 100, Stock: 1}},
		{"zero price", ProductInput{Name: "X", Category: "Mens", Price: 0, Stock: 1}},
		{"negative stock", ProductInput{Name: "X", Category: "Mens", Price: 100, Stock: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProduct(ctx, &tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestAddProductAssignsID(t *testing.T) {
	svc, _ := newTestCatalog(t)
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, &ProductInput{
		Name:     "Test Garment",
		Category: string(domain.CategoryMens),
		Price:    2500,
		Stock:    10,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)

	loaded, err := svc.GetProduct(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Test Garment", loaded.Name)
}
