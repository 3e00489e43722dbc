package calendar

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

// listHandler returns events in ascending date order.
//
// @Summary List calendar events
// @Tags Calendar
// @Security StaffAuth
// @Produce json
// @Success 200 {array} models.CalendarEvent
// @Failure 401 {object} errmsg._StaffUserNoToken
// @Router /backoffice/calendar [get]
func listHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("calendar"))
	if !allowed {
		return resp
	}

	events, serr := models.ListCalendarEvents()
	if serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	return c.JSON(bson.M{"events": events})
}

// createHandler adds a calendar event owned by the actor.
//
// @Summary Create calendar event
// @Tags Calendar
// @Security StaffAuth
// @Accept json
// @Produce json
// @Param body body models.CalendarEvent true "Event"
// @Success 201 {object} models.CalendarEvent
// @Failure 400 {object} errmsg._CalendarEventInvalidPayload
// @Router /backoffice/calendar [post]
func createHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("calendar"))
	if !allowed {
		return resp
	}

	var ce models.CalendarEvent
	if err := json.Unmarshal(c.Body(), &ce); err != nil {
		return utils.StatusError(c, errmsg.CalendarEventInvalidPayload)
	}
	if serr := ce.Validate(); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	ce.ID = ""
	ce.CreatedBy = actor.ID
	ce.CreatedAt = time.Now()
	ce.UpdatedAt = ce.CreatedAt

	id, werr := store.Docs.Write(c.RequestCtx(), "events", "", ce)
	ce.ID = id

	if audit.Rec != nil {
		audit.Rec.EventCreated(actor, ce)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.Status(fiber.StatusCreated).JSON(bson.M{"event": ce})
}

// updateHandler replaces an event, keeping ownership and creation time.
//
// @Summary Update calendar event
// @Tags Calendar
// @Security StaffAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.CalendarEvent
// @Failure 404 {object} errmsg._CalendarEventNotExists
// @Router /backoffice/calendar/{id} [put]
func updateHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("calendar"))
	if !allowed {
		return resp
	}

	var existing models.CalendarEvent
	if serr := existing.Get(c.Params("id")); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	var ce models.CalendarEvent
	if err := json.Unmarshal(c.Body(), &ce); err != nil {
		return utils.StatusError(c, errmsg.CalendarEventInvalidPayload)
	}
	if serr := ce.Validate(); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	ce.ID = existing.ID
	ce.CreatedBy = existing.CreatedBy
	ce.CreatedAt = existing.CreatedAt
	ce.UpdatedAt = time.Now()

	_, werr := store.Docs.Write(c.RequestCtx(), "events", ce.ID, ce)

	if audit.Rec != nil {
		audit.Rec.EventUpdated(actor, ce)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.JSON(bson.M{"event": ce})
}

// deleteHandler removes a calendar event.
//
// @Summary Delete calendar event
// @Tags Calendar
// @Security StaffAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} errmsg._CalendarEventNotExists
// @Router /backoffice/calendar/{id} [delete]
func deleteHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("calendar"))
	if !allowed {
		return resp
	}

	var existing models.CalendarEvent
	if serr := existing.Get(c.Params("id")); serr != errmsg.EmptyStatusError {
		return utils.StatusError(c, serr)
	}

	werr := store.Docs.Delete(c.RequestCtx(), "events", existing.ID)

	if audit.Rec != nil {
		audit.Rec.EventDeleted(actor, existing.ID)
	}

	if werr != nil {
		return utils.StoreError(c, werr)
	}

	return c.JSON(bson.M{"ok": true})
}
