package middleware

import (
	"strings"

	"mycloth-atelier/internal/adapters/persistence/localstore"
	"mycloth-atelier/internal/adapters/persistence/repositories"
	"mycloth-atelier/internal/config"
	"mycloth-atelier/internal/pkg/jwt"
	"mycloth-atelier/internal/pkg/password"
	"mycloth-atelier/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware creates authentication middleware. Remote mode
// validates the bearer token and its tombstone; local mode trusts the
// cached session for this browser key.
func AuthMiddleware(cfg *config.Config, state *localstore.ClientState, tokenRepo repositories.TokenRepository) fiber.Handler {
	if cfg.StorageMode == config.StorageLocal {
		return localAuth(state)
	}
	return remoteAuth(cfg, tokenRepo)
}

func remoteAuth(cfg *config.Config, tokenRepo repositories.TokenRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Try cookie first, then Authorization header
		accessToken := c.Cookies("access_token")
		if accessToken == "" {
			authHeader := c.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				accessToken = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 2. Validate token
		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 3. Reject tokens tombstoned by logout
		if tokenRepo != nil {
			revoked, err := tokenRepo.IsRevoked(c.Context(), password.HashToken(accessToken))
			if err == nil && revoked {
				return response.Unauthorized(c, "Access token revoked")
			}
		}

		// 4. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)

		return c.Next()
	}
}

func localAuth(state *localstore.ClientState) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := state.Session(GetSessionID(c))
		if err != nil || user == nil {
			return response.Unauthorized(c, "Not signed in")
		}

		c.Locals("userID", user.ID)
		c.Locals("email", user.Email)
		c.Locals("role", string(user.Role))

		return c.Next()
	}
}

// RoleMiddleware creates role-based authorization middleware
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return response.Unauthorized(c, "Unauthorized")
		}

		for _, allowedRole := range allowedRoles {
			if role == allowedRole {
				return c.Next()
			}
		}

		return response.Forbidden(c, "You don't have permission to access this resource")
	}
}

// AdminOnly middleware allows only the admin role
func AdminOnly() fiber.Handler {
	return RoleMiddleware("admin")
}
