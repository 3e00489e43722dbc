package utils

import (
	"time"

	"backoffice/internal/errmsg"
)

// ParseRange reads an optional RFC 3339 start/end pair from query params.
// Either side may be empty; a present pair must be ordered.
func ParseRange(startRaw, endRaw string) (*time.Time, *time.Time, errmsg.StatusError) {
	var start, end *time.Time

	if startRaw != "" {
		parsed, err := time.Parse(time.RFC3339, startRaw)
		if err != nil {
			return nil, nil, errmsg.ReportInvalidRange
		}
		start = &parsed
	}
	if endRaw != "" {
		parsed, err := time.Parse(time.RFC3339, endRaw)
		if err != nil {
			return nil, nil, errmsg.ReportInvalidRange
		}
		end = &parsed
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, nil, errmsg.ReportInvalidRange
	}

	return start, end, errmsg.EmptyStatusError
}
