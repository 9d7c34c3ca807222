package helpers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"matka/services"
)

func JSONSuccess(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func JSONError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"data":    nil,
	})
}

// JSONServiceError maps a service failure onto the wire. Validation problems
// are 400, missing or foreign records 404, a repeated undo 409, anything else
// a 500 with a generic message.
func JSONServiceError(c *fiber.Ctx, err error) error {
	switch {
	case services.IsValidation(err):
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		return JSONError(c, fiber.StatusNotFound, "NOT_FOUND")
	case errors.Is(err, services.ErrAlreadyUndone):
		return JSONError(c, fiber.StatusConflict, "ALREADY_UNDONE")
	default:
		return JSONError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR")
	}
}
