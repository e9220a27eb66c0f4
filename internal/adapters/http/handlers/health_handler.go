package handlers

import (
	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	store *localstore.Store
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(store *localstore.Store) *HealthHandler {
	return &HealthHandler{store: store}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚀 MyCloth Atelier API v1.0 is running",
		"mode":    config.AppConfig.AppMode,
		"storage": config.AppConfig.StorageMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API and storage health
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	storageStatus := "healthy"
	if config.AppConfig.StorageMode == config.StorageRemote {
		if err := config.HealthCheck(); err != nil {
			storageStatus = "unhealthy"
		}
	}

	stateStatus := "healthy"
	if h.store != nil {
		if err := h.store.HealthCheck(); err != nil {
			stateStatus = "unhealthy"
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":          "healthy",
			"storage":      storageStatus,
			"client_state": stateStatus,
		},
	})
}

// APIInfo handles API v1 info
// @Summary API v1 Info
// @Description Returns API v1 information
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}

func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "MyCloth Atelier API v1.0",
		"version": "1.0.0",
	})
}
