package auth

import (
	"encoding/json"
	"strings"

	"backoffice/internal/audit"
	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/internal/policy"
	"backoffice/internal/store"
	"backoffice/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// updateProfileHandler changes the actor's display name and photo.
//
// @Summary Update own profile
// @Tags Staff Auth
// @Security StaffAuth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errmsg._StaffUserInvalidPayload
// @Failure 401 {object} errmsg._StaffUserNoToken
// @Router /backoffice/auth/profile [put]
func updateProfileHandler(c fiber.Ctx) error {
	actor := Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("profile"))
	if !allowed {
		return resp
	}

	var body struct {
		DisplayName string `json:"displayName"`
		PhotoURL    string `json:"photoURL"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}

	body.DisplayName = strings.TrimSpace(body.DisplayName)
	if body.DisplayName == "" {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}

	_, err := store.Docs.Write(c.RequestCtx(), "staffusers", actor.ID, bson.M{
		"displayName": body.DisplayName,
		"photoURL":    body.PhotoURL,
	})
	if err != nil {
		return utils.StoreError(c, err)
	}

	if audit.Rec != nil {
		audit.Rec.ProfileUpdated(actor, audit.ProfileDetails{
			DisplayName: body.DisplayName,
			PhotoSet:    body.PhotoURL != "",
		})
	}

	return c.JSON(bson.M{"ok": true})
}

// changePasswordHandler re-checks the current password before accepting the
// new one, like the re-authentication step of the original flow.
//
// @Summary Change own password
// @Tags Staff Auth
// @Security StaffAuth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} errmsg._StaffUserInvalidPayload
// @Failure 401 {object} errmsg._StaffUserWrongPassword
// @Router /backoffice/auth/password [post]
func changePasswordHandler(c fiber.Ctx) error {
	actor := Actor(c)

	var body struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}

	if len(body.NewPassword) < 6 {
		return utils.StatusError(c, errmsg.StaffUserPasswordTooShort)
	}

	// locals carry a scrubbed user, fetch the stored hash
	var su models.StaffUser
	if serr := su.Get(actor.ID); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	if bcrypt.CompareHashAndPassword(
		[]byte(su.Password),
		[]byte(body.CurrentPassword),
	) != nil {
		return utils.StatusError(c, errmsg.StaffUserWrongPassword)
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(body.NewPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	if _, err := store.Docs.Write(c.RequestCtx(), "staffusers", actor.ID, bson.M{
		"password": string(hash),
	}); err != nil {
		return utils.StoreError(c, err)
	}

	if audit.Rec != nil {
		audit.Rec.PasswordChanged(actor)
	}

	return c.JSON(bson.M{"ok": true})
}
