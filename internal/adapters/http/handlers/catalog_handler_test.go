package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	catalogService := services.NewCatalogService(localstore.NewProductStore(store))
	require.NoError(t, catalogService.InitInventory(context.Background()))
	handler := NewCatalogHandler(catalogService)

	app := fiber.New()
	app.Get("/api/v1/products", handler.List)
	app.Get("/api/v1/products/:id", handler.Get)
	app.Delete("/api/v1/products/:id", handler.Delete)
	return app
}

type listPayload struct {
	Success bool `json:"success"`
	Data    struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
	} `json:"data"`
}

func TestListProductsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload listPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.Equal(t, 24, payload.Data.Total)
	assert.Equal(t, "m1", payload.Data.Products[0].ID)
}

func TestListProductsFilterAndSort(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest("GET", "/api/v1/products?category=Mens&sort=Price%3A+Low+to+High", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload listPayload
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, 6, payload.Data.Total)

	for i := 1; i < len(payload.Data.Products); i++ {
		assert.LessOrEqual(t, payload.Data.Products[i-1].Price, payload.Data.Products[i].Price)
		assert.Equal(t, domain.CategoryMens, payload.Data.Products[i].Category)
	}
}

func TestGetProductNotFound(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/ghost", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDeleteAbsentProductSucceeds(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/products/ghost", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
