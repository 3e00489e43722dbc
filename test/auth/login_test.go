package auth

import (
	"encoding/json"
	"net/http"
	"testing"

	"backoffice/internal/errmsg"
	"backoffice/test/helpers"

	"github.com/stretchr/testify/require"
)

func TestAuthPing(t *testing.T) {
	body, statusCode := helpers.RequestRunner(t, app, "GET", "/backoffice/auth/ping", nil, nil)
	require.Equal(t, http.StatusOK, statusCode)
	require.Equal(t, "PONG", string(body))
}

func TestLoginSuccess(t *testing.T) {
	body, statusCode := helpers.API_Login(t, app, testStaffUsername, testStaffPassword)
	require.Equal(t, http.StatusOK, statusCode)

	var payload struct {
		Token     string `json:"token"`
		StaffUser struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
		} `json:"staffuser"`
	}

	err := json.Unmarshal(body, &payload)
	require.NoError(t, err)

	require.NotEmpty(t, payload.Token)
	require.Equal(t, testStaffUsername, payload.StaffUser.Username)
	require.Equal(t, "staff", payload.StaffUser.Role)
	require.Empty(t, payload.StaffUser.Password)
}

func TestLoginWrongPassword(t *testing.T) {
	body, statusCode := helpers.API_Login(t, app, testStaffUsername, "wrong-password")
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserWrongPassword, body, statusCode)
}

func TestLoginUserNotFound(t *testing.T) {
	body, statusCode := helpers.API_Login(t, app, "missing-user", "whatever")
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserNotExists, body, statusCode)
}

func TestLoginInvalidPayload(t *testing.T) {
	body, statusCode := helpers.API_Login(t, app, "", "")
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserInvalidPayload, body, statusCode)
}

func TestMeReturnsActor(t *testing.T) {
	token := helpers.LoginToken(t, app, testStaffUsername, testStaffPassword)

	body, statusCode := helpers.API_Me(t, app, token)
	require.Equal(t, http.StatusOK, statusCode)

	var payload struct {
		StaffUser struct {
			Username string `json:"username"`
			Password string `json:"password"`
		} `json:"staffuser"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Equal(t, testStaffUsername, payload.StaffUser.Username)
	require.Empty(t, payload.StaffUser.Password)
}

func TestMeWithoutToken(t *testing.T) {
	body, statusCode := helpers.RequestRunner(t, app, "GET", "/backoffice/auth/me", nil, nil)
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserNoToken, body, statusCode)
}

func TestLogoutKillsSession(t *testing.T) {
	token := helpers.LoginToken(t, app, testStaffUsername, testStaffPassword)

	_, statusCode := helpers.API_Logout(t, app, token)
	require.Equal(t, http.StatusOK, statusCode)

	body, statusCode := helpers.API_Me(t, app, token)
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserSessionExpired, body, statusCode)
}
