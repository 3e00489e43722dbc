package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"backoffice/internal/audit"
	"backoffice/internal/auth"
	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/internal/policy"
	"backoffice/internal/utils"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// summaryHandler totals income and expense over the requested range and
// reports the running balance alongside.
//
// @Summary Financial summary
// @Tags Reports
// @Security StaffAuth
// @Produce json
// @Param start query string false "Range start (RFC 3339)"
// @Param end query string false "Range end (RFC 3339)"
// @Success 200 {object} map[string]any
// @Failure 400 {object} errmsg._ReportInvalidRange
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Router /backoffice/reports/summary [get]
func summaryHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.View("reports"))
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

	var income, expense float64
	byCategory := map[string]float64{}
	for _, t := range transactions {
		switch t.Type {
		case models.TransactionIncome:
			income += t.Amount
		case models.TransactionExpense:
			expense += t.Amount
			byCategory[t.Category] += t.Amount
		}
	}

	return c.JSON(bson.M{
		"income":            income,
		"expense":           expense,
		"balance":           income - expense,
		"expenseByCategory": byCategory,
		"count":             len(transactions),
	})
}

// exportHandler streams the transactions of the range as CSV.
//
// @Summary Export transactions as CSV
// @Tags Reports
// @Security StaffAuth
// @Produce text/csv
// @Param start query string false "Range start (RFC 3339)"
// @Param end query string false "Range end (RFC 3339)"
// @Success 200 {string} string
// @Failure 403 {object} errmsg._PolicyInsufficientRole
// @Router /backoffice/reports/export [get]
func exportHandler(c fiber.Ctx) error {
	actor := auth.Actor(c)

	allowed, resp := utils.Guard(c, actor, policy.Do(policy.ExportReport))
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

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"date", "type", "amount", "category", "description"})
	for _, t := range transactions {
		_ = w.Write([]string{
			t.Date.Format(time.RFC3339),
			t.Type,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			t.Category,
			t.Description,
		})
	}
	w.Flush()

	if audit.Rec != nil {
		details := audit.ExportDetails{Rows: len(transactions)}
		if start != nil {
			details.Start = *start
		}
		if end != nil {
			details.End = *end
		}
		audit.Rec.ReportExported(actor, details)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transactions.csv"`)
	return c.Send(buf.Bytes())
}
