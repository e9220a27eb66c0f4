package handlers

import (
	"mycloth-atelier/internal/adapters/http/middleware"
	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PreferencesHandler handles per-session UI preferences
type PreferencesHandler struct {
	state *localstore.ClientState
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(state *localstore.ClientState) *PreferencesHandler {
	return &PreferencesHandler{state: state}
}

// ThemeRequest represents theme update request body
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// GetTheme returns the saved theme, light when never set
// @Summary Get theme
// @Tags Preferences
// @Produce json
// @Success 200 {object} response.Response
// @Router /preferences/theme [get]
func (h *PreferencesHandler) GetTheme(c *fiber.Ctx) error {
	theme, err := h.state.Theme(middleware.GetSessionID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to load theme")
	}

	return response.Success(c, "Theme retrieved", fiber.Map{"theme": theme})
}

// SetTheme saves the theme preference
// @Summary Set theme
// @Tags Preferences
// @Accept json
// @Produce json
// @Param body body ThemeRequest true "Theme, light or dark"
// @Success 200 {object} response.Response
// @Router /preferences/theme [put]
func (h *PreferencesHandler) SetTheme(c *fiber.Ctx) error {
	var req ThemeRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if req.Theme != localstore.ThemeLight && req.Theme != localstore.ThemeDark {
		return response.BadRequest(c, "Theme must be light or dark")
	}

	if err := h.state.SaveTheme(middleware.GetSessionID(c), req.Theme); err != nil {
		return response.InternalServerError(c, "Failed to save theme")
	}

	return response.Success(c, "Theme saved", fiber.Map{"theme": req.Theme})
}
