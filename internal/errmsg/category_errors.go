package errmsg

import "net/http"

var (
	CategoryNotExists = NewStatusError(
		http.StatusNotFound,
		"category does not exist",
	)
	CategoryInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"category name must be provided",
	)
)

type _CategoryNotExists struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"category does not exist"`
}

type _CategoryInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"category name must be provided"`
}
