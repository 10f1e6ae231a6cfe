package middleware

import (
	"github.com/gofiber/fiber/v2"

	"Shelved/internal/services"
)

const ClaimsKey = "claims"

// LoadSession parses the session cookie when present and stashes the typed
// claims in locals. It never rejects: guests browse the catalog read-only,
// so routes that need a user stack RequireUser on top.
func LoadSession(sessionService services.SessionService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(services.SessionCookieName)
		if token == "" {
			return c.Next()
		}
		claims, err := sessionService.Parse(token)
		if err != nil {
			// Expired or tampered cookie: drop it and continue as guest.
			c.Cookie(&fiber.Cookie{
				Name:     services.SessionCookieName,
				Value:    "",
				MaxAge:   -1,
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
			return c.Next()
		}
		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireUser rejects requests without a valid session.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetClaims(c) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "authentication required"})
		}
		return c.Next()
	}
}

// RequireAdmin rejects requests whose session role is not admin.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := GetClaims(c)
		if claims == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "authentication required"})
		}
		if claims.Role != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"detail": "admin privileges required"})
		}
		return c.Next()
	}
}

// GetClaims retrieves the typed session claims from locals, nil for guests.
func GetClaims(c *fiber.Ctx) *services.Claims {
	claims, _ := c.Locals(ClaimsKey).(*services.Claims)
	return claims
}
