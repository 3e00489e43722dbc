package errmsg

import "net/http"

var (
	StaffUserNotExists = NewStatusError(
		http.StatusNotFound,
		"staff user does not exist",
	)
	StaffUserNoToken = NewStatusError(
		http.StatusUnauthorized,
		"no token has been provided",
	)
	StaffUserWrongPassword = NewStatusError(
		http.StatusUnauthorized,
		"username or password is incorrect",
	)
	StaffUserInvalidPayload = NewStatusError(
		http.StatusBadRequest,
		"username and password must be provided",
	)
	StaffUserExists = NewStatusError(
		http.StatusConflict,
		"a staff user with this username already exists",
	)
	StaffUserInvalidRole = NewStatusError(
		http.StatusBadRequest,
		"role must be staff or admin",
	)
	StaffUserSessionExpired = NewStatusError(
		http.StatusUnauthorized,
		"session has expired, log in again",
	)
	StaffUserPasswordTooShort = NewStatusError(
		http.StatusBadRequest,
		"password must be at least 6 characters",
	)
)

type _StaffUserNotExists struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"staff user does not exist"`
}

type _StaffUserNoToken struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"no token has been provided"`
}

type _StaffUserWrongPassword struct {
	StatusCode int    `json:"statusCode" example:"401"`
	Message    string `json:"message" example:"username or password is incorrect"`
}

type _StaffUserExists struct {
	StatusCode int    `json:"statusCode" example:"409"`
	Message    string `json:"message" example:"a staff user with this username already exists"`
}

type _StaffUserInvalidPayload struct {
	StatusCode int    `json:"statusCode" example:"400"`
	Message    string `json:"message" example:"username and password must be provided"`
}
