package helpers

import (
	"encoding/json"
	"fmt"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/require"
)

func API_CreateTransaction(
	t *testing.T,
	app *fiber.App,
	token string,
	txType string,
	amount float64,
	category string,
	description string,
	date time.Time,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		Type        string    `json:"type"`
		Amount      float64   `json:"amount"`
		Category    string    `json:"category"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
	}{
		Type:        txType,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		"/backoffice/finances/",
		sendBytes,
		&token,
	)
}

func API_ListTransactions(
	t *testing.T,
	app *fiber.App,
	token string,
	start string,
	end string,
) (bodyBytes []byte, statusCode int) {
	path := "/backoffice/finances/"
	query := url.Values{}
	if start != "" {
		query.Set("start", start)
	}
	if end != "" {
		query.Set("end", end)
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	return RequestRunner(t, app, "GET", path, nil, &token)
}

func API_DeleteTransaction(
	t *testing.T,
	app *fiber.App,
	token string,
	id string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"DELETE",
		fmt.Sprintf("/backoffice/finances/%s", id),
		nil,
		&token,
	)
}

func API_CreateCategory(
	t *testing.T,
	app *fiber.App,
	token string,
	name string,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		Name string `json:"name"`
	}{Name: name}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		"/backoffice/categories/",
		sendBytes,
		&token,
	)
}

func API_DeleteCategory(
	t *testing.T,
	app *fiber.App,
	token string,
	id string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"DELETE",
		fmt.Sprintf("/backoffice/categories/%s", id),
		nil,
		&token,
	)
}

func API_ReportSummary(
	t *testing.T,
	app *fiber.App,
	token string,
	start string,
	end string,
) (bodyBytes []byte, statusCode int) {
	path := "/backoffice/reports/summary"
	query := url.Values{}
	if start != "" {
		query.Set("start", start)
	}
	if end != "" {
		query.Set("end", end)
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	return RequestRunner(t, app, "GET", path, nil, &token)
}

func API_ReportExport(
	t *testing.T,
	app *fiber.App,
	token string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app, "GET", "/backoffice/reports/export", nil, &token)
}

func API_Logs(
	t *testing.T,
	app *fiber.App,
	token string,
	filter string,
	limit int,
) (bodyBytes []byte, statusCode int) {
	path := "/backoffice/logs/"
	query := url.Values{}
	if filter != "" {
		query.Set("filter", filter)
	}
	if limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", limit))
	}
	if encoded := query.Encode(); encoded != "" {
		path += "?" + encoded
	}

	return RequestRunner(t, app, "GET", path, nil, &token)
}
