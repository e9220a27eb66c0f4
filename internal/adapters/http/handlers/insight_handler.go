package handlers

import (
	"errors"

	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/core/services"
	"mycloth-atelier/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// InsightHandler handles promotional copy generation
type InsightHandler struct {
	insightService *services.InsightService
	catalogService *services.CatalogService
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService *services.InsightService, catalogService *services.CatalogService) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		catalogService: catalogService,
	}
}

// ProductInsight returns one sentence of promotional copy for a product
// @Summary Product insight
// @Description One-sentence promotional copy, fixed fallback on failure
// @Tags Insight
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /products/{id}/insight [get]
func (h *InsightHandler) ProductInsight(c *fiber.Ctx) error {
	product, err := h.catalogService.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return response.NotFound(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to load product")
	}

	insight := h.insightService.ProductInsight(c.Context(), product)

	return response.Success(c, "Insight generated", fiber.Map{
		"productId": product.ID,
		"insight":   insight,
	})
}
