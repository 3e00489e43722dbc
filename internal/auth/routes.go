package auth

import "github.com/gofiber/fiber/v3"

func Routes(app fiber.Router) {
	auth := app.Group("/auth")

	auth.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	auth.Post("/login", loginHandler)

	auth.Post("/logout", logoutHandler, SessionMiddleware)
	auth.Get("/me", meHandler, SessionMiddleware)
	auth.Put("/profile", updateProfileHandler, SessionMiddleware)
	auth.Post("/password", changePasswordHandler, SessionMiddleware)
}
