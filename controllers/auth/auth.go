package auth

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"matka/database"
	"matka/helpers"
	"matka/middlewares"
	"matka/models"
)

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func sessionTTL() time.Duration {
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return 24 * time.Hour
}

// Login checks the credentials and opens a new session.
func Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, fiber.StatusBadRequest, "INVALID_REQUEST_BODY")
	}
	if req.Login == "" || req.Password == "" {
		return helpers.JSONError(c, fiber.StatusBadRequest, "LOGIN_AND_PASSWORD_REQUIRED")
	}

	user, err := models.FindUserByLogin(database.DB, req.Login)
	if err != nil || !user.CheckPassword(req.Password) {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "INVALID_CREDENTIALS")
	}

	session := models.Session{
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(sessionTTL()),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		log.WithError(err).Error("failed to create session")
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}

	log.WithFields(log.Fields{"user_id": user.ID, "username": user.Username}).Info("user logged in")
	return helpers.JSONSuccess(c, "LOGIN_OK", fiber.Map{
		"session_id": session.SID,
		"expires_at": session.ExpiresAt,
		"user": fiber.Map{
			"id":       user.ID,
			"username": user.Username,
			"is_admin": user.IsAdmin,
		},
	})
}

// Logout closes the current session.
func Logout(c *fiber.Ctx) error {
	session, _ := c.Locals("session").(*models.Session)
	if session == nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "SESSION_ID_REQUIRED")
	}
	if err := database.DB.Unscoped().Delete(session).Error; err != nil {
		log.WithError(err).Error("failed to delete session")
		return helpers.JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
	return helpers.JSONSuccess(c, "LOGOUT_OK", nil)
}

// Me returns the authenticated user.
func Me(c *fiber.Ctx) error {
	user := middlewares.CurrentUser(c)
	if user == nil {
		return helpers.JSONError(c, fiber.StatusUnauthorized, "SESSION_ID_REQUIRED")
	}
	return helpers.JSONSuccess(c, "OK", user)
}
