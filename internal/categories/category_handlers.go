package categories

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
)

// Reading categories only takes the finance page; creating and deleting is
// the write half of manage_categories and needs admin.

// listHandler returns every expense category.
//
// @Summary List categories
// @Tags Categories
// @Security StaffAuth
// @Produce json
// @Success 200 {array} models.Category
// @Failure 401 {object} errmsg._StaffUserNoToken
// @Router /backoffice/categories [get]
func listHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("finance"))
	if !allowed {
		return resp
	}

	categories, serr := models.ListCategories()
	if serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	return c.JSON(bson.M{"categories": categories})
}

// createHandler adds an expense category.
//
// @Summary Create category
// @Tags Categories
// @Security StaffAuth
// @Accept json
// @Produce json
// @Success 201 {object} models.Category
// @Failure 400 {object} errmsg._CategoryInvalidPayload
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Router /backoffice/categories [post]
func createHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.Do(policy.ManageCategories))
	if !allowed {
		return resp
	}

	var body struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return utils.StatusError(c, errmsg.CategoryInvalidPayload)
	}

	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return utils.StatusError(c, errmsg.CategoryInvalidPayload)
	}

	cat := models.Category{
		Name:      body.Name,
		CreatedAt: time.Now(),
	}

	id, werr := store.Docs.Write(c.RequestCtx(), "categories", "", cat)
	cat.ID = id

	if audit.Rec != nil {
		audit.Rec.CategoryCreated(actor, cat)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.Status(fiber.StatusCreated).JSON(bson.M{"category": cat})
}

// deleteHandler removes an expense category.
//
// @Summary Delete category
// @Tags Categories
// @Security StaffAuth
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]bool
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Failure 404 {object} errmsg._CategoryNotExists
// @Router /backoffice/categories/{id} [delete]
func deleteHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.Do(policy.ManageCategories))
	if !allowed {
		return resp
	}

	var existing models.Category
	if serr := existing.Get(c.Params("id")); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	werr := store.Docs.Delete(c.RequestCtx(), "categories", existing.ID)

	if audit.Rec != nil {
		audit.Rec.CategoryDeleted(actor, existing.ID)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.JSON(bson.M{"ok": true})
}
