package errmsg

import "net/http"

var (
	ReportInvalidRange = NewStatusError(
		http.StatusBadRequest,
		"start and end must be valid dates with start before end",
	)
)

type _ReportInvalidRange struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"start and end must be valid dates with start before end"`
}
