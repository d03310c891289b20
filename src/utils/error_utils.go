// error_utils.go
package utils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"Backend-FormBuilder/src/models"
)

func HandleError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(models.ErrorResponse{
		Status:  status,
		Message: message,
	})
}

// StatusFor maps a service error to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, models.ErrInvalidID), errors.Is(err, models.ErrDuplicateSlug):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// HandleServiceError writes err with the status StatusFor picks. notFound is
// the message used for a 404; internal failures get a generic message.
func HandleServiceError(c *fiber.Ctx, err error, notFound string) error {
	status := StatusFor(err)
	switch status {
	case fiber.StatusNotFound:
		return HandleError(c, status, notFound)
	case fiber.StatusBadRequest:
		return HandleError(c, status, err.Error())
	default:
		return HandleError(c, status, "Internal server error")
	}
}
