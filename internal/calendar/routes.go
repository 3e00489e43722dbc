package calendar

import (
	"backoffice/internal/auth"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router) {
	calendar := app.Group("/calendar", auth.SessionMiddleware)

	calendar.Get("/", listHandler)
	calendar.Post("/", createHandler)
	calendar.Put("/:id", updateHandler)
	calendar.Delete("/:id", deleteHandler)
}
