package finances

import (
	"encoding/json"
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

// listHandler returns transactions newest first, optionally clipped to a
// date range given as RFC 3339 query params.
//
// @Summary List transactions
// @Tags Finances
// @Security StaffAuth
// @Produce json
// @Param start query string false "Range start (RFC 3339)"
// @Param end query string false "Range end (RFC 3339)"
// @Success 200 {array} models.Transaction
// @Failure 400 {object} errmsg._ReportInvalidRange
// @Router /backoffice/finances [get]
func listHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("finance"))
	if !allowed {
		return resp
	}

	start, end, serr := utils.ParseRange(c.Query("start"), c.Query("end"))
	if serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	transactions, serr := models.ListTransactions(start, end)
	if serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	return c.JSON(bson.M{"transactions": transactions})
}

// createHandler records a new income or expense transaction.
//
// @Summary Create transaction
// @Tags Finances
// @Security StaffAuth
// @Accept json
// @Produce json
// @Param body body models.Transaction true "Transaction"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} errmsg._TransactionInvalidPayload
// @Router /backoffice/finances [post]
func createHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("finance"))
	if !allowed {
		return resp
	}

	var t models.Transaction
	if err := json.Unmarshal(c.Body(), &t); err != nil {
		return utils.StatusError(c, errmsg.TransactionInvalidPayload)
	}
	if serr := t.Validate(); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	t.ID = ""
	t.CreatedBy = actor.ID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt

	id, werr := store.Docs.Write(c.RequestCtx(), "finances", "", t)
	t.ID = id

	if audit.Rec != nil {
		audit.Rec.TransactionCreated(actor, t)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.Status(fiber.StatusCreated).JSON(bson.M{"transaction": t})
}

// updateHandler replaces a transaction, keeping ownership and creation time.
//
// @Summary Update transaction
// @Tags Finances
// @Security StaffAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} errmsg._TransactionNotExists
// @Router /backoffice/finances/{id} [put]
func updateHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("finance"))
	if !allowed {
		return resp
	}

	var existing models.Transaction
	if serr := existing.Get(c.Params("id")); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	var t models.Transaction
	if err := json.Unmarshal(c.Body(), &t); err != nil {
		return utils.StatusError(c, errmsg.TransactionInvalidPayload)
	}
	if serr := t.Validate(); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	t.ID = existing.ID
	t.CreatedBy = existing.CreatedBy
	t.CreatedAt = existing.CreatedAt
	t.UpdatedAt = time.Now()

	_, werr := store.Docs.Write(c.RequestCtx(), "finances", t.ID, t)

	if audit.Rec != nil {
		audit.Rec.TransactionUpdated(actor, t)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.JSON(bson.M{"transaction": t})
}

// deleteHandler removes a transaction.
//
// @Summary Delete transaction
// @Tags Finances
// @Security StaffAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errmsg._TransactionNotExists
// @Router /backoffice/finances/{id} [delete]
func deleteHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("finance"))
	if !allowed {
		return resp
	}

	var existing models.Transaction
	if serr := existing.Get(c.Params("id")); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	werr := store.Docs.Delete(c.RequestCtx(), "finances", existing.ID)

	if audit.Rec != nil {
		audit.Rec.TransactionDeleted(actor, existing.ID)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.JSON(bson.M{"ok": true})
}
