package handlers

import (
	"errors"

	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/core/services"
	"mycloth-atelier/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles product and storefront endpoints
type CatalogHandler struct {
	catalogService *services.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List returns the storefront view
// @Summary List products
// @Description List products with optional text filter, category filter and sort
// @Tags Catalog
// @Produce json
// @Param q query string false "Text filter on name and description"
// @Param category query string false "Category filter, All passes everything"
// @Param sort query string false "Sort option"
// @Success 200 {object} response.Response
// @Router /products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	products := h.catalogService.GetProducts(c.Context())

	view := h.catalogService.Derive(
		products,
		c.Query("q"),
		domain.Category(c.Query("category", string(domain.CategoryAll))),
		domain.SortOption(c.Query("sort", string(domain.SortNone))),
	)

	return response.Success(c, "Products retrieved", fiber.Map{
		"products": view,
		"total":    len(view),
	})
}

// Get returns one product
// @Summary Get product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	product, err := h.catalogService.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to load product")
	}

	return response.Success(c, "Product retrieved", product)
}

// Create adds a product (admin)
// @Summary Add product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param body body services.ProductInput true "Product data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /products [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.catalogService.AddProduct(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Invalid product data")
		}
		return response.InternalServerError(c, "Failed to add product")
	}

	return response.Created(c, "Product added", product)
}

// Update overwrites a product (admin)
// @Summary Update product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param body body services.ProductInput true "Product data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /products/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var input services.ProductInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	product, err := h.catalogService.UpdateProduct(c.Context(), c.Params("id"), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid product data")
		case errors.Is(err, domain.ErrProductNotFound):
			return response.NotFound(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update product")
		}
	}

	return response.Success(c, "Product updated", product)
}

// Delete removes a product (admin). Deleting an absent id still
// succeeds.
// @Summary Delete product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /products/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to delete product")
	}

	return response.Success(c, "Product deleted", nil)
}
