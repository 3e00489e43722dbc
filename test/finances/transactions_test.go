package finances

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/test/helpers"

	"github.com/stretchr/testify/require"
)

func TestStaffCreatesAndListsTransactions(t *testing.T) {
	token := helpers.LoginToken(t, app, staff.Username, seedPassword)

	date := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	body, statusCode := helpers.API_CreateTransaction(t, app, token,
		models.TransactionExpense, 500, "rent", "march rent", date)
	require.Equal(t, http.StatusCreated, statusCode)

	var created struct {
		Transaction models.Transaction `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.Transaction.ID)
	require.Equal(t, staff.ID, created.Transaction.CreatedBy)

	body, statusCode = helpers.API_ListTransactions(t, app, token, "", "")
	require.Equal(t, http.StatusOK, statusCode)

	var listed struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(body, &listed))

	found := false
	for _, tx := range listed.Transactions {
		if tx.ID == created.Transaction.ID {
			found = true
			require.Equal(t, 500.0, tx.Amount)
			require.Equal(t, "rent", tx.Category)
		}
	}
	require.True(t, found)
}

func TestListTransactionsRangeFilter(t *testing.T) {
	token := helpers.LoginToken(t, app, staff.Username, seedPassword)

	inside := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)
	outside := time.Date(2023, 9, 15, 0, 0, 0, 0, time.UTC)

	body, statusCode := helpers.API_CreateTransaction(t, app, token,
		models.TransactionIncome, 1200, "salary", "june salary", inside)
	require.Equal(t, http.StatusCreated, statusCode)
	var insideTx struct {
		Transaction models.Transaction `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(body, &insideTx))

	body, statusCode = helpers.API_CreateTransaction(t, app, token,
		models.TransactionIncome, 1200, "salary", "september salary", outside)
	require.Equal(t, http.StatusCreated, statusCode)
	var outsideTx struct {
		Transaction models.Transaction `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(body, &outsideTx))

	body, statusCode = helpers.API_ListTransactions(t, app, token,
		"2023-06-01T00:00:00Z", "2023-06-30T00:00:00Z")
	require.Equal(t, http.StatusOK, statusCode)

	var listed struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	require.NoError(t, json.Unmarshal(body, &listed))

	ids := map[string]bool{}
	for _, tx := range listed.Transactions {
		ids[tx.ID] = true
	}
	require.True(t, ids[insideTx.Transaction.ID])
	require.False(t, ids[outsideTx.Transaction.ID])
}

func TestListTransactionsInvalidRange(t *testing.T) {
	token := helpers.LoginToken(t, app, staff.Username, seedPassword)

	body, statusCode := helpers.API_ListTransactions(t, app, token,
		"2024-02-01T00:00:00Z", "2024-01-01T00:00:00Z")
	helpers.ResponseErrorCheck(t, app, errmsg.ReportInvalidRange, body, statusCode)
}

func TestCreateTransactionInvalidPayload(t *testing.T) {
	token := helpers.LoginToken(t, app, staff.Username, seedPassword)

	body, statusCode := helpers.API_CreateTransaction(t, app, token,
		"neither", 10, "misc", "", time.Now())
	helpers.ResponseErrorCheck(t, app, errmsg.TransactionInvalidPayload, body, statusCode)

	body, statusCode = helpers.API_CreateTransaction(t, app, token,
		models.TransactionExpense, -10, "misc", "", time.Now())
	helpers.ResponseErrorCheck(t, app, errmsg.TransactionInvalidPayload, body, statusCode)
}

func TestDeleteTransaction(t *testing.T) {
	token := helpers.LoginToken(t, app, staff.Username, seedPassword)

	body, statusCode := helpers.API_CreateTransaction(t, app, token,
		models.TransactionExpense, 42, "misc", "to be removed", time.Now().UTC())
	require.Equal(t, http.StatusCreated, statusCode)

	var created struct {
		Transaction models.Transaction `json:"transaction"`
	}
	require.NoError(t, json.Unmarshal(body, &created))

	_, statusCode = helpers.API_DeleteTransaction(t, app, token, created.Transaction.ID)
	require.Equal(t, http.StatusOK, statusCode)

	body, statusCode = helpers.API_DeleteTransaction(t, app, token, created.Transaction.ID)
	helpers.ResponseErrorCheck(t, app, errmsg.TransactionNotExists, body, statusCode)
}

func TestTransactionsRequireToken(t *testing.T) {
	body, statusCode := helpers.RequestRunner(t, app, "GET", "/backoffice/finances/", nil, nil)
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserNoToken, body, statusCode)
}
