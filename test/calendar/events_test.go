package calendar

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/test/helpers"

	"github.com/stretchr/testify/require"
)

func createEvent(t *testing.T, token string, title string, date time.Time) models.CalendarEvent {
	t.Helper()

	payload, err := json.Marshal(map[string]any{
		"title": title,
		"date":  date,
	})
	require.NoError(t, err)

	body, statusCode := helpers.RequestRunner(t, app, "POST", "/backoffice/calendar/", payload, &token)
	require.Equal(t, http.StatusCreated, statusCode, string(body))

	var created struct {
		Event models.CalendarEvent `json:"event"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.Event.ID)

	return created.Event
}

func TestEventLifecycle(t *testing.T) {
	token := helpers.LoginToken(t, app, staff.Username, seedPassword)

	event := createEvent(t, token, "team meeting", time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC))
	require.Equal(t, staff.ID, event.CreatedBy)

	// update keeps ownership and creation time
	payload, _ := json.Marshal(map[string]any{
		"title": "team meeting (moved)",
		"date":  time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC),
	})
	body, statusCode := helpers.RequestRunner(t, app, "PUT",
		fmt.Sprintf("/backoffice/calendar/%s", event.ID), payload, &token)
	require.Equal(t, http.StatusOK, statusCode)

	var updated struct {
		Event models.CalendarEvent `json:"event"`
	}
	require.NoError(t, json.Unmarshal(body, &updated))
	require.Equal(t, event.ID, updated.Event.ID)
	require.Equal(t, "team meeting (moved)", updated.Event.Title)
	require.Equal(t, event.CreatedBy, updated.Event.CreatedBy)

	_, statusCode = helpers.RequestRunner(t, app, "DELETE",
		fmt.Sprintf("/backoffice/calendar/%s", event.ID), nil, &token)
	require.Equal(t, http.StatusOK, statusCode)

	body, statusCode = helpers.RequestRunner(t, app, "DELETE",
		fmt.Sprintf("/backoffice/calendar/%s", event.ID), nil, &token)
	helpers.ResponseErrorCheck(t, app, errmsg.CalendarEventNotExists, body, statusCode)
}

func TestEventsListedInDateOrder(t *testing.T) {
	token := helpers.LoginToken(t, app, staff.Username, seedPassword)

	createEvent(t, token, "later", time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC))
	createEvent(t, token, "earlier", time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC))

	body, statusCode := helpers.RequestRunner(t, app, "GET", "/backoffice/calendar/", nil, &token)
	require.Equal(t, http.StatusOK, statusCode)

	var listed struct {
		Events []models.CalendarEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(body, &listed))
	require.GreaterOrEqual(t, len(listed.Events), 2)

	for i := 1; i < len(listed.Events); i++ {
		require.False(t, listed.Events[i].Date.Before(listed.Events[i-1].Date))
	}
}

func TestCreateEventMissingTitle(t *testing.T) {
	token := helpers.LoginToken(t, app, staff.Username, seedPassword)

	payload, _ := json.Marshal(map[string]any{
		"date": time.Now().UTC(),
	})
	body, statusCode := helpers.RequestRunner(t, app, "POST", "/backoffice/calendar/", payload, &token)
	helpers.ResponseErrorCheck(t, app, errmsg.CalendarEventInvalidPayload, body, statusCode)
}
