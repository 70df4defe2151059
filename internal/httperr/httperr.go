package httperr

import (
	"errors"

	"zag-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// From maps the service error kinds onto HTTP statuses. Anything unrecognized
// is a storage fault and surfaces as a 500 with the caller's message.
func From(err error, fallback string) error {
	var dup *models.DuplicateKeyError
	var val *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "Record not found")
	case errors.Is(err, models.ErrInsufficientStock):
		return fiber.NewError(fiber.StatusConflict, "Insufficient stock")
	case errors.As(err, &dup):
		return fiber.NewError(fiber.StatusConflict, dup.Error())
	case errors.As(err, &val):
		return fiber.NewError(fiber.StatusBadRequest, val.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, fallback)
	}
}
