package handlers

import (
	"errors"

	"gearmatch/internal/domain"

	"github.com/gofiber/fiber/v2"
)

func jsonError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// fail maps the domain error taxonomy onto HTTP statuses. Unknown errors
// bubble up to the global error handler.
func fail(c *fiber.Ctx, err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return jsonError(c, fiber.StatusBadRequest, ve.Error())
	case errors.Is(err, domain.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrConflict):
		return jsonError(c, fiber.StatusConflict, "shop with this email already exists")
	case errors.Is(err, domain.ErrUnauthorized):
		return jsonError(c, fiber.StatusUnauthorized, "invalid credentials")
	default:
		return err
	}
}
