package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Locals keys set by the middleware.
const (
	LocalUserID    = "user_id"
	LocalRole      = "role"
	LocalContactID = "contact_id"
)

// Middleware validates the Bearer token and stores the caller's identity in
// the request locals.
func Middleware(tokens *JWTManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
		}

		claims, err := tokens.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}

		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalRole, claims.Role)
		if claims.ContactID != nil {
			c.Locals(LocalContactID, *claims.ContactID)
		}
		return c.Next()
	}
}

// RequireRole gates a route to one role.
func RequireRole(role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(LocalRole) != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}
		return c.Next()
	}
}

// UserID returns the authenticated user id from the request.
func UserID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalUserID).(string); ok {
		return id
	}
	return ""
}

// ContactID returns the portal caller's contact id, empty for admins.
func ContactID(c *fiber.Ctx) string {
	if id, ok := c.Locals(LocalContactID).(string); ok {
		return id
	}
	return ""
}
