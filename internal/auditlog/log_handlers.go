package auditlog

import (
	"context"
	"strconv"

	"backoffice/internal/audit"
	"backoffice/internal/auth"
	"backoffice/internal/policy"
	"backoffice/internal/store"
	"backoffice/internal/utils"
	"backoffice/internal/ws"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// listHandler returns a finite page of recent log entries, newest first,
// optionally narrowed by a free-text filter over actor, action and details.
//
// @Summary Query the audit log
// @Tags Audit Logs
// @Security StaffAuth
// @Produce json
// @Param filter query string false "Free-text filter over actor, action and details"
// @Param limit query int false "Page size (default 100, max 500)"
// @Success 200 {array} models.LogEntry
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Router /backoffice/logs [get]
func listHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("logs"))
	if !allowed {
		return resp
	}

	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	entries, err := audit.Rec.Query(c.RequestCtx(), c.Query("filter"), limit)
	if err != nil {
		return utils.StoreError(c, err)
	}

	return c.JSON(bson.M{"logs": entries})
}

// streamHandler pushes the full current log snapshot on connect and again
// after every change, newest first.
//
// @Summary Stream audit log snapshots over WebSocket
// @Tags Audit Logs
// @Security StaffAuth
// @Param limit query int false "Snapshot size (default 100, max 500)"
// @Success 101 {string} string "Switching Protocols"
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Router /backoffice/logs/stream [get]
func streamHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("logs"))
	if !allowed {
		return resp
	}

	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	return ws.StreamWebSocket(c, func(ctx context.Context, writer *ws.SnapshotWriter) error {
		sub, err := store.Docs.Subscribe(ctx, "logs", store.Query{
			Sort:       "timestamp",
			Descending: true,
			Limit:      limit,
		})
		if err != nil {
			return err
		}
		defer sub.Close()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case snapshot, ok := <-sub.C:
				if !ok {
					return nil
				}
				if err := writer.WriteSnapshot(snapshot); err != nil {
					return err
				}
			}
		}
	})
}
