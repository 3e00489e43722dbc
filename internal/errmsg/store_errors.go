package errmsg

import "net/http"

var (
	StoreUnavailable = NewStatusError(
		http.StatusServiceUnavailable,
		"the record store is unavailable, try again shortly",
	)
	RecordNotFound = NewStatusError(
		http.StatusNotFound,
		"record not found",
	)
)
