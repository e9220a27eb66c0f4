package handlers

import (
	"errors"

	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/core/services"
	"mycloth-atelier/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StaffHandler handles staff roster endpoints (admin only)
type StaffHandler struct {
	staffService *services.StaffService
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService *services.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List returns the roster
// @Summary List staff
// @Tags Staff
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /staff [get]
func (h *StaffHandler) List(c *fiber.Ctx) error {
	members := h.staffService.List(c.Context())

	return response.Success(c, "Staff retrieved", fiber.Map{
		"staff": members,
		"total": len(members),
	})
}

// Hire adds a staff member
// @Summary Hire staff member
// @Tags Staff
// @Accept json
// @Produce json
// @Param body body services.HireInput true "Staff data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /staff [post]
func (h *StaffHandler) Hire(c *fiber.Ctx) error {
	var input services.HireInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.staffService.Hire(c.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "Invalid staff data")
		}
		return response.InternalServerError(c, "Failed to hire staff member")
	}

	return response.Created(c, "Staff member hired", member)
}

// Dismiss removes a staff member. Dismissing an absent id still
// succeeds.
// @Summary Dismiss staff member
// @Tags Staff
// @Produce json
// @Param id path string true "Staff ID"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /staff/{id} [delete]
func (h *StaffHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.staffService.Dismiss(c.Context(), c.Params("id")); err != nil {
		return response.InternalServerError(c, "Failed to dismiss staff member")
	}

	return response.Success(c, "Staff member dismissed", nil)
}
