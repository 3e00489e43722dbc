package internal

import (
	"log"
	"strings"

	"backoffice/internal/audit"
	"backoffice/internal/auditlog"
	"backoffice/internal/auth"
	"backoffice/internal/calendar"
	"backoffice/internal/categories"
	"backoffice/internal/db"
	"backoffice/internal/env"
	"backoffice/internal/finances"
	"backoffice/internal/reports"
	"backoffice/internal/staffusers"
	"backoffice/internal/store"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupApp(deployment string, envRoot string, appVersion string) *fiber.App {
	app := fiber.New()

	env.Init(envRoot, appVersion)

	deploy := strings.TrimSpace(deployment)

	if err := db.InitDB(deploy); err != nil {
		log.Fatal("Could not connect to MongoDB")
		return nil
	}

	if err := db.InitCache(); err != nil {
		log.Fatal("Could not connect to Redis")
		return nil
	}

	audit.Rec = audit.NewRecorder(audit.NewMongoStore(db.Logs), deploy)

	store.Docs = store.NewMongo(map[string]*mongo.Collection{
		"staffusers": db.StaffUsers,
		"finances":   db.Finances,
		"categories": db.Categories,
		"events":     db.CalendarEvents,
		"logs":       db.Logs,
	})

	backoffice := app.Group("/backoffice")

	backoffice.Get("/ping", func(c fiber.Ctx) error {
		return c.SendString("PONG")
	})

	backoffice.Get("/version", func(c fiber.Ctx) error {
		return c.SendString("v" + env.VERSION)
	})

	auth.Routes(backoffice)
	staffusers.Routes(backoffice)
	finances.Routes(backoffice)
	categories.Routes(backoffice)
	calendar.Routes(backoffice)
	reports.Routes(backoffice)
	auditlog.Routes(backoffice)

	return app
}
