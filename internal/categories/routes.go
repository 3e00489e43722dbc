package categories

import (
	"backoffice/internal/auth"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router) {
	categories := app.Group("/categories", auth.SessionMiddleware)

	categories.Get("/", listHandler)
	categories.Post("/", createHandler)
	categories.Delete("/:id", deleteHandler)
}
