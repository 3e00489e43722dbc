// @title Back Office API
// @version 1.0.0
// @description Staff-facing back office API for finance tracking, calendar, reporting, and audit logging.
// @BasePath /backoffice
// @securityDefinitions.apikey StaffAuth
// @in header
// @name Authorization
// @description Provide the staff bearer token as `Bearer <token>`.

// @Tag.name Back Office Meta
// @Tag.description Operational probes and metadata about the back office service.

// @Tag.name Staff Auth
// @Tag.description Authentication and session flows for staff members.

// @Tag.name Staff Users
// @Tag.description Staff account administration, roles, and removal.

// @Tag.name Finances
// @Tag.description Income and expense transaction tracking.

// @Tag.name Calendar
// @Tag.description Shared team calendar events.

// @Tag.name Reports
// @Tag.description Financial summaries and exports.

// @Tag.name Audit Logs
// @Tag.description Owner-only access to the recorded action trail.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"backoffice/internal"
	"backoffice/internal/env"
	"backoffice/internal/swagger"

	"github.com/gofiber/fiber/v3"
)

func main() {
	deployment := flag.String("deployment", "", "deployment profile (dev|test|prod)")
	portFlag := flag.String("port", "", "port to listen on")
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	deploy := strings.TrimSpace(*deployment)
	if deploy == "" {
		args := flag.Args()
		if len(args) == 0 {
			fmt.Println("Usage: server --deployment <type> --port <port> [--env-root <dir>] [--app-version <version>]")
			os.Exit(1)
		}
		deploy = strings.TrimSpace(args[0])
	}

	if deploy == "" {
		log.Fatal("deployment is required")
	}

	port := strings.TrimSpace(*portFlag)
	if port == "" {
		log.Fatal("port is required")
	}

	app := internal.SetupApp(deploy, *envRoot, *appVersion)
	swagger.Register(app)

	fmt.Println("APP VERSION:", env.VERSION)

	if err := app.Listen(fmt.Sprintf(":%s", port), fiber.ListenConfig{
		EnablePrefork: env.PREFORK,
	}); err != nil {
		log.Fatalf("Error listening on port %s: %v", port, err)
	}
}
