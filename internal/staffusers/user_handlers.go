package staffusers

import (
	"encoding/json"
	"strings"
	"time"

	"backoffice/internal/audit"
	"backoffice/internal/auth"
	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/internal/policy"
	"backoffice/internal/store"
	"backoffice/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// listHandler returns all active staff users.
//
// @Summary List staff users
// @Tags Staff Users
// @Security StaffAuth
// @Produce json
// @Success 200 {array} models.StaffUser
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Router /backoffice/staffusers [get]
func listHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.Do(policy.ManageUsers))
	if !allowed {
		return resp
	}

	users, serr := models.ListStaffUsers()
	if serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	return c.JSON(bson.M{"staffusers": users})
}

// createHandler provisions a staff or admin account.
//
// @Summary Create staff user
// @Tags Staff Users
// @Security StaffAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.StaffUser
// @Failure 400 {object} errmsg._StaffUserInvalidPayload
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Failure 409 {object} errmsg._StaffUserExists
// @Router /backoffice/staffusers [post]
func createHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.Do(policy.ManageUsers))
	if !allowed {
		return resp
	}

	var body struct {
		Username    string      `json:"username"`
		DisplayName string      `json:"displayName"`
		Role        models.Role `json:"role"`
		Password    string      `json:"password"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}

	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" || body.Password == "" {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}
	if len(body.Password) < 6 {
		return utils.StatusError(c, errmsg.StaffUserPasswordTooShort)
	}
	// the owner is provisioned once, never through this endpoint
	if !body.Role.Valid() || body.Role == models.RoleOwner {
		return utils.StatusError(c, errmsg.StaffUserInvalidRole)
	}

	var existing models.StaffUser
	if serr := existing.GetByUsername(body.Username); serr == errmsg.EmptyStatusError {
		return utils.StatusError(c, errmsg.StaffUserExists)
	} else if serr == errmsg.StoreUnavailable {
		return utils.StatusError(c, serr)
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(body.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	su := models.StaffUser{
		Username:    body.Username,
		DisplayName: body.DisplayName,
		Role:        body.Role,
		Password:    string(hash),
		CreatedAt:   time.Now(),
	}

	id, werr := store.Docs.Write(c.RequestCtx(), "staffusers", "", su)
	su.ID = id

	if audit.Rec != nil {
		audit.Rec.UserCreated(actor, su)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	su.Password = ""

	return c.Status(fiber.StatusCreated).JSON(bson.M{"staffuser": su})
}

// changeRoleHandler moves a target between staff and admin.
//
// @Summary Change a staff user's role
// @Tags Staff Users
// @Security StaffAuth
// @Accept json
// @Produce json
// @Param id path string true "Staff user ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errmsg._PolicyOwnerImmune
// @Failure 404 {object} errmsg._StaffUserNotExists
// @Router /backoffice/staffusers/{id}/role [put]
func changeRoleHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	var target models.StaffUser
	if serr := target.Get(c.Params("id")); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	allowed, resp := utils.Guard(c, actor, policy.On(policy.ChangeRole, &target))
	if !allowed {
		return resp
	}

	var body struct {
		Role models.Role `json:"role"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}
	if !body.Role.Valid() || body.Role == models.RoleOwner {
		return utils.StatusError(c, errmsg.StaffUserInvalidRole)
	}

	// Two admins can both pass the guard above for the same target and race
	// this write; last one wins, both get audited.
	_, werr := store.Docs.Write(c.RequestCtx(), "staffusers", target.ID, bson.M{
		"role": body.Role,
	})

	if audit.Rec != nil {
		audit.Rec.PermissionChanged(actor, target, body.Role)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.JSON(bson.M{"ok": true})
}

// resetPasswordHandler sets a new password on the target account.
//
// @Summary Reset a staff user's password
// @Tags Staff Users
// @Security StaffAuth
// @Accept json
// @Produce json
// @Param id path string true "Staff user ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Failure 404 {object} errmsg._StaffUserNotExists
// @Router /backoffice/staffusers/{id}/reset-password [post]
func resetPasswordHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	var target models.StaffUser
	if serr := target.Get(c.Params("id")); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	allowed, resp := utils.Guard(c, actor, policy.Do(policy.ResetPassword))
	if !allowed {
		return resp
	}

	var body struct {
		NewPassword string `json:"newPassword"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.StaffUserInvalidPayload)
	}
	if len(body.NewPassword) < 6 {
		return utils.StatusError(c, errmsg.StaffUserPasswordTooShort)
	}

	hash, err := bcrypt.GenerateFromPassword(
		[]byte(body.NewPassword),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return utils.StatusError(c, errmsg.InternalServerError(err))
	}

	_, werr := store.Docs.Write(c.RequestCtx(), "staffusers", target.ID, bson.M{
		"password": string(hash),
	})

	if audit.Rec != nil {
		audit.Rec.PasswordResetRequested(actor, target)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.JSON(bson.M{"ok": true})
}

// deleteHandler removes a staff user. Admins soft-delete: the record stays
// for the audit trail and the user just cannot log in anymore. The owner
// hard-deletes the record outright.
//
// @Summary Delete staff user
// @Tags Staff Users
// @Security StaffAuth
// @Produce json
// @Param id path string true "Staff user ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errmsg._PolicyOwnerImmune
// @Failure 404 {object} errmsg._StaffUserNotExists
// @Router /backoffice/staffusers/{id} [delete]
func deleteHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	var target models.StaffUser
	if serr := target.Get(c.Params("id")); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	allowed, resp := utils.Guard(c, actor, policy.On(policy.DeleteUser, &target))
	if !allowed {
		return resp
	}

	var werr error
	if actor.Role == models.RoleOwner {
		werr = store.Docs.Delete(c.RequestCtx(), "staffusers", target.ID)
	} else {
		_, werr = store.Docs.Write(c.RequestCtx(), "staffusers", target.ID, bson.M{
			"disabled": true,
		})
	}

	if audit.Rec != nil {
		audit.Rec.UserDeleted(actor, target)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.JSON(bson.M{"ok": true})
}
