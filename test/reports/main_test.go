package reports

import (
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"backoffice/internal"
	"backoffice/internal/db"
	"backoffice/internal/models"
	"backoffice/test/helpers"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

var app *fiber.App

var (
	admin models.StaffUser
	staff models.StaffUser
)

const seedPassword = "password"

func TestMain(m *testing.M) {
	envRoot := flag.String("env-root", "", "directory containing environment files")
	appVersion := flag.String("app-version", "", "application version override")

	flag.Parse()

	app = internal.SetupApp("test", *envRoot, *appVersion)

	if err := helpers.ResetCollections("staffusers", "finances", "logs"); err != nil {
		log.Fatal(err)
	}

	var err error
	if admin, err = helpers.SeedStaffUser("reportadmin", models.RoleAdmin, seedPassword); err != nil {
		log.Fatal(err)
	}
	if staff, err = helpers.SeedStaffUser("reportstaff", models.RoleStaff, seedPassword); err != nil {
		log.Fatal(err)
	}

	if err := seedTransactions(); err != nil {
		log.Fatal(err)
	}

	os.Exit(m.Run())
}

func seedTransactions() error {
	seed := []models.Transaction{
		{Type: models.TransactionIncome, Amount: 3000, Category: "salary", Date: date(2024, 1, 5)},
		{Type: models.TransactionIncome, Amount: 200, Category: "interest", Date: date(2024, 1, 20)},
		{Type: models.TransactionExpense, Amount: 900, Category: "rent", Date: date(2024, 1, 1)},
		{Type: models.TransactionExpense, Amount: 150, Category: "groceries", Date: date(2024, 1, 12)},
		{Type: models.TransactionExpense, Amount: 150, Category: "groceries", Date: date(2024, 2, 12)},
	}

	for _, tx := range seed {
		tx.ID = uuid.NewString()
		tx.CreatedBy = admin.ID
		tx.CreatedAt = time.Now()
		tx.UpdatedAt = tx.CreatedAt
		if _, err := db.Finances.InsertOne(db.Ctx, tx); err != nil {
			return err
		}
	}

	return nil
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
