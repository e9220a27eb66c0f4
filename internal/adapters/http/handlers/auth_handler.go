package handlers

import (
	"errors"
	"strings"

	"mycloth-atelier/internal/adapters/http/middleware"
	"mycloth-atelier/internal/config"
	"mycloth-atelier/internal/core/domain"
	"mycloth-atelier/internal/core/services"
	"mycloth-atelier/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cfg:         cfg,
	}
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest represents signup request body
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user login
// @Summary Login
// @Description Authenticate an identity and return the session user
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}

	input := &services.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	user, err := h.authService.Login(c.Context(), middleware.GetSessionID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCredentialsNotRecognized):
			return response.Unauthorized(c, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Email is required")
		default:
			return response.InternalServerError(c, "Failed to login")
		}
	}

	h.setAuthCookie(c, user.Token)

	return response.Success(c, "Login successful", user)
}

// Signup handles user registration
// @Summary Signup
// @Description Register a new identity
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "Signup data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if strings.TrimSpace(req.Name) == "" {
		return response.BadRequest(c, "Name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return response.BadRequest(c, "Email is required")
	}

	input := &services.SignupInput{
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	}

	user, err := h.authService.Signup(c.Context(), middleware.GetSessionID(c), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrIdentityArchived):
			return response.Conflict(c, err.Error())
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid signup data")
		default:
			return response.InternalServerError(c, "Failed to sign up")
		}
	}

	h.setAuthCookie(c, user.Token)

	return response.Created(c, "Signup successful", user)
}

// Logout handles logout
// @Summary Logout
// @Description Clear the session and revoke the bearer token
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies("access_token")
	if token == "" {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimPrefix(authHeader, "Bearer ")
		}
	}

	if err := h.authService.Logout(c.Context(), middleware.GetSessionID(c), token); err != nil {
		return response.InternalServerError(c, "Failed to logout")
	}

	h.clearAuthCookie(c)

	return response.Success(c, "Logout successful", nil)
}

// Me returns the cached session user
// @Summary Current session
// @Description Return the cached session user, if any
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authService.Me(c.Context(), middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return response.Unauthorized(c, "Not signed in")
		}
		return response.InternalServerError(c, "Failed to load session")
	}

	return response.Success(c, "Session active", user)
}

// setAuthCookie stores the access token in an HTTP-only cookie
func (h *AuthHandler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   h.cfg.JWT.AccessTokenMins * 60,
	})
}

// clearAuthCookie expires the access token cookie
func (h *AuthHandler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   h.cfg.Cookie.Secure,
		SameSite: h.cfg.Cookie.SameSite,
		Domain:   h.cfg.Cookie.Domain,
		MaxAge:   -1,
	})
}
