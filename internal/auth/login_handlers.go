package auth

import (
	"encoding/json"
	"strings"

	"backoffice/internal/audit"
	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// loginHandler authenticates a staff user and opens a session.
//
// @Summary Log in
// @Tags Staff Auth
// @Accept json
// @Produce json
// @Param body body models.StaffUser true "Username and password"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errmsg._StaffUserInvalidPayload
// @Failure 401 {object} errmsg._StaffUserWrongPassword
// @Failure 404 {object} errmsg._StaffUserNotExists
// @Router /backoffice/auth/login [post]
func loginHandler(c fiber.Ctx) error {
	var body models.StaffUser
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}

	body.Username = strings.TrimSpace(body.Username)
	body.Password = strings.TrimSpace(body.Password)
	if body.Username == "" || body.Password == "" {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}

	su := models.StaffUser{}
	serr := su.GetByUsername(body.Username)
	if serr != errmsg.EmptyStatusError {
		if audit.Rec != nil {
			audit.Rec.LoginFailed(body.Username)
		}
		return utils.StatusError(c, serr)
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(su.Password),
		[]byte(body.Password),
	) != nil {
		if audit.Rec != nil {
			audit.Rec.LoginFailed(body.Username)
		}
		return utils.StatusError(c, errmsg.StaffUserWrongPassword)
	}

	token := su.GenToken()

	if err := CreateSession(&su, token); err != nil {
		return utils.StatusError(c, errmsg.StoreUnavailable)
	}

	if audit.Rec != nil {
		audit.Rec.LoggedIn(&su)
	}

	su.Password = ""

	return c.JSON(bson.M{
		"token":     token,
		"staffuser": su,
	})
}

// logoutHandler destroys the session. The session dies even if the audit
// append behind it does not land.
//
// @Summary Log out
// @Tags Staff Auth
// @Security StaffAuth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} errmsg._StaffUserNoToken
// @Router /backoffice/auth/logout [post]
func logoutHandler(c fiber.Ctx) error {
	actor := Actor(c)
	token := Token(c)

	if err := DestroySession(token); err != nil {
		return utils.StatusError(c, errmsg.StoreUnavailable)
	}

	if audit.Rec != nil {
		audit.Rec.LoggedOut(actor)
	}

	return c.JSON(bson.M{"ok": true})
}

// meHandler returns the acting staff user.
//
// @Summary Current staff user
// @Tags Staff Auth
// @Security StaffAuth
// @Produce json
// @Success 200 {object} models.StaffUser
// @Failure 401 {object} errmsg._StaffUserNoToken
// @Router /backoffice/auth/me [get]
func meHandler(c fiber.Ctx) error {
	return c.JSON(bson.M{"staffuser": Actor(c)})
}
