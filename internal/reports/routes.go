package reports

import (
	"backoffice/internal/auth"

	"github.com/gofiber/fiber/v3"
)

func Routes(app fiber.Router) {
	reports := app.Group("/reports", auth.SessionMiddleware)

	reports.Get("/summary", summaryHandler)
	reports.Get("/export", exportHandler)
}
