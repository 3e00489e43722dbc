package utils

import (
	"backoffice/internal/errmsg"

	"github.com/gofiber/fiber/v3"
)

func Error(c fiber.Ctx, statusCode int, err error) error {
	return c.Status(statusCode).JSON(map[string]string{
		"message": err.Error(),
	})
}

func StatusError(c fiber.Ctx, se errmsg.StatusError) error {
	return c.Status(se.StatusCode).JSON(map[string]string{
		"message": se.Message,
	})
}

// DeniedError is StatusError plus the policy reason code, so clients can
// render differentiated messaging for denials.
func DeniedError(c fiber.Ctx, se errmsg.StatusError, reason string) error {
	return c.Status(se.StatusCode).JSON(map[string]string{
		"message": se.Message,
		"reason":  reason,
	})
}
