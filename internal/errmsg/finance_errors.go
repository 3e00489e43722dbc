package errmsg

import "net/http"

var (
	TransactionNotExists = NewStatusError(
		http.StatusNotFound,
		"transaction does not exist",
	)
	TransactionInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"a transaction needs a non-negative amount and a type of income or expense",
	)
)

type _TransactionNotExists struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"transaction does not exist"`
}

type _TransactionInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"a transaction needs a non-negative amount and a type of income or expense"`
}
