package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	// SessionCookie carries the per-browser session key that cart,
	// cached login and theme state hang off.
	SessionCookie = "atelier_session"

	// SessionHeader is the non-cookie alternative for API clients
	SessionHeader = "X-Session-Id"
)

// SessionKey resolves (or mints) the session key and stores it in
// Locals("sessionID") for every handler downstream.
func SessionKey(cookieSecure bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Cookies(SessionCookie)
		if sessionID == "" {
			sessionID = c.Get(SessionHeader)
		}
		if sessionID == "" {
			sessionID = uuid.New().String()
			c.Cookie(&fiber.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				HTTPOnly: true,
				Secure:   cookieSecure,
				SameSite: "Lax",
				MaxAge:   60 * 60 * 24 * 365,
			})
		}

		c.Locals("sessionID", sessionID)
		return c.Next()
	}
}

// GetSessionID reads the session key set by SessionKey
func GetSessionID(c *fiber.Ctx) string {
	sessionID, _ := c.Locals("sessionID").(string)
	return sessionID
}
