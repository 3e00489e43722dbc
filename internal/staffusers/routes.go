package staffusers

import (
	"backoffice/internal/auth"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router) {
	staffusers := app.Group("/staffusers", auth.SessionMiddleware)

	staffusers.Get("/", listHandler)
	staffusers.Post("/", createHandler)
	staffusers.Put("/:id/role", changeRoleHandler)
	staffusers.Post("/:id/reset-password", resetPasswordHandler)
	staffusers.Delete("/:id", deleteHandler)
}
