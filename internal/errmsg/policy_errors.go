package errmsg

import "net/http"

// Policy denials are 403s carrying the reason code so clients can render a
// role-aware message instead of a generic "no permission" string.
var (
	PolicyInsufficientRole = NewStatusError(
		http.StatusForbidden,
		"your role does not allow this action",
	)
	PolicySelfActionForbidden = NewStatusError(
		http.StatusForbidden,
		"you cannot perform this action on your own account",
	)
	PolicyOwnerImmune = NewStatusError(
		http.StatusForbidden,
		"owner accounts cannot be modified through this action",
	)
	MalformedAction = NewStatusError(
		http.StatusInternalServerError,
		"unknown action passed to the access policy",
	)
)

type _PolicyInsufficientRole struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    string `json:"message" example:"your role does not allow this action"`
	Reason     string `json:"reason" example:"insufficient_role"`
}

type _PolicyOwnerImmune struct {
	StatusCode int    `json:"statusCode" example:"403"`
	Message    string `json:"message" example:"owner accounts cannot be modified through this action"`
	Reason     string `json:"reason" example:"owner_immune"`
}
