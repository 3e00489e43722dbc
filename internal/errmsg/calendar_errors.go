package errmsg

import "net/http"

var (
	CalendarEventNotExists = NewStatusError(
		http.StatusNotFound,
		"calendar event does not exist",
	)
	CalendarEventInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"a calendar event needs a title and a date",
	)
)

type _CalendarEventNotExists struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"calendar event does not exist"`
}

type _CalendarEventInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"a calendar event needs a title and a date"`
}
