package auditlog

import (
	"backoffice/internal/auth"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router) {
	logs := app.Group("/logs")

	logs.Get("/", listHandler, auth.SessionMiddleware)
	logs.Get("/stream", streamHandler, auth.WebSocketMiddleware)
}
