package handlers

import (
	"mycloth-atelier/internal/core/services"
	"mycloth-atelier/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles admin analytics endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
	analyticsService *services.AnalyticsService
	catalogService   *services.CatalogService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	dashboardService *services.DashboardService,
	analyticsService *services.AnalyticsService,
	catalogService *services.CatalogService,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		analyticsService: analyticsService,
		catalogService:   catalogService,
	}
}

// Overview returns the full admin dashboard
// @Summary Admin dashboard
// @Description Inventory summary, staff roster and headcounts
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	overview, err := h.dashboardService.Overview(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build dashboard")
	}

	return response.Success(c, "Dashboard retrieved", overview)
}

// Summary returns the inventory analytics block only
// @Summary Inventory summary
// @Description Inventory value, category histogram and low-stock list
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	products := h.catalogService.GetProducts(c.Context())

	return response.Success(c, "Summary retrieved", h.analyticsService.Summarize(products))
}
