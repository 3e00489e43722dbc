package finances

import (
	"backoffice/internal/auth"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router) {
	finances := app.Group("/finances", auth.SessionMiddleware)

	finances.Get("/", listHandler)
	finances.Post("/", createHandler)
	finances.Put("/:id", updateHandler)
	finances.Delete("/:id", deleteHandler)
}
