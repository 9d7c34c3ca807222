package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"matka/database"
	"matka/helpers"
	"matka/models"
)

// SessionAuth resolves the X-Session-ID header to its user and stores both on
// the request context.
func SessionAuth(c *fiber.Ctx) error {
	sid := c.Get("X-Session-ID")
	if sid == "" {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "SESSION_ID_REQUIRED")
	}

	session, err := models.FindSession(database.DB, sid)
	if err != nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_OR_EXPIRED_SESSION")
	}

	c.Locals("session", session)
	c.Locals("user", &session.User)
	return c.Next()
}

// AdminOnly gates a route group to admin users. Must run after SessionAuth.
func AdminOnly(c *fiber.Ctx) error {
	user := CurrentUser(c)
	if user == nil || !user.IsAdmin {
		return helpers.JSONError(c, fiber.StatusForbidden, "ADMIN_REQUIRED")
	}
	return c.Next()
}

// CurrentUser returns the authenticated user stored by SessionAuth, or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
