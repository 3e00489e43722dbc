package auth

import (
	"flag"
	"log"
	"os"
	"testing"

	"backoffice/internal"
	"backoffice/internal/models"
	"backoffice/test/helpers"

	"github.com/gofiber/fiber/v3"
)

var app *fiber.App

const (
	testStaffUsername = "teststaff"
	testStaffPassword = "teststaff"
)

func TestMain(m *testing.M) {
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	app = internal.SetupApp("test", *envRoot, *appVersion)

	if err := helpers.ResetCollections("staffusers", "logs"); err != nil {
		log.Fatal(err)
	}
	if _, err := helpers.SeedStaffUser(testStaffUsername, models.RoleStaff, testStaffPassword); err != nil {
		log.Fatal(err)
	}

	os.Exit(m.Run())
}
