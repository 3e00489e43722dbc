package auth

import (
	"strings"

	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/internal/utils"

	"github.com/gofiber/fiber/v3"
)

// SessionMiddleware authenticates the bearer token against the session
// store and loads the acting staff user into the request locals. The user is
// re-read from the store on every request so a role change or deletion takes
// effect immediately, not at token expiry.
func SessionMiddleware(c fiber.Ctx) error {
	var token string

	authHeader := c.Get("Authorization")

	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer") {
		tokens := strings.Fields(authHeader)
		if len(tokens) == 2 {
			token = tokens[1]
		}
	}

	return authenticate(c, token)
}

// WebSocketMiddleware accepts the token as an ?authorization= query
// parameter as well, since browsers can't attach headers to an upgrade
// request.
func WebSocketMiddleware(c fiber.Ctx) error {
	var token string

	authHeader := strings.TrimSpace(c.Get("Authorization"))

	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer") {
		tokens := strings.Fields(authHeader)
		if len(tokens) == 2 {
			token = tokens[1]
		}
	} else {
		token = strings.TrimSpace(c.Query("authorization"))
	}

	return authenticate(c, token)
}

func authenticate(c fiber.Ctx, token string) error {
	if token == "" {
		return utils.StatusError(c, errmsg.StaffUserNoToken)
	}

	var claims models.StaffUser
	if err := claims.ParseToken(token); err != nil || claims.ID == "" {
		return utils.StatusError(c, errmsg.StaffUserNoToken)
	}

	session, ok := GetSession(token)
	if !ok {
		return utils.StatusError(c, errmsg.StaffUserSessionExpired)
	}

	var staffuser models.StaffUser
	if serr := staffuser.Get(session.UserID); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	staffuser.Password = ""
	utils.SetLocals(c, "staffuser", staffuser)
	utils.SetLocals(c, "token", token)

	return c.Next()
}

// Actor returns the staff user the middleware stored on the request.
func Actor(c fiber.Ctx) *models.StaffUser {
	var staffuser models.StaffUser
	utils.GetLocals(c, "staffuser", &staffuser)
	return &staffuser
}

func Token(c fiber.Ctx) string {
	var token string
	utils.GetLocals(c, "token", &token)
	return token
}
