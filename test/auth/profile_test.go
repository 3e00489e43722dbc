package auth

import (
	"encoding/json"
	"net/http"
	"testing"

	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/test/helpers"

	"github.com/stretchr/testify/require"
)

const (
	profileUsername = "profilestaff"
	profilePassword = "profilestaff"
)

func seedProfileUser(t *testing.T) {
	t.Helper()
	if _, err := helpers.SeedStaffUser(profileUsername, models.RoleStaff, profilePassword); err != nil {
		t.Fatal(err)
	}
}

func TestUpdateProfile(t *testing.T) {
	seedProfileUser(t)
	token := helpers.LoginToken(t, app, profileUsername, profilePassword)

	payload, _ := json.Marshal(map[string]string{
		"displayName": "Profile Staff",
		"photoURL":    "https://example.com/p.png",
	})
	_, statusCode := helpers.RequestRunner(t, app, "PUT", "/backoffice/auth/profile", payload, &token)
	require.Equal(t, http.StatusOK, statusCode)

	body, statusCode := helpers.API_Me(t, app, token)
	require.Equal(t, http.StatusOK, statusCode)

	var me struct {
		StaffUser struct {
			DisplayName string `json:"displayName"`
			PhotoURL    string `json:"photoURL"`
		} `json:"staffuser"`
	}
	require.NoError(t, json.Unmarshal(body, &me))
	require.Equal(t, "Profile Staff", me.StaffUser.DisplayName)
	require.Equal(t, "https://example.com/p.png", me.StaffUser.PhotoURL)
}

func TestUpdateProfileEmptyName(t *testing.T) {
	token := helpers.LoginToken(t, app, testStaffUsername, testStaffPassword)

	payload, _ := json.Marshal(map[string]string{"displayName": "   "})
	body, statusCode := helpers.RequestRunner(t, app, "PUT", "/backoffice/auth/profile", payload, &token)
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserInvalidPayload, body, statusCode)
}

func TestChangePassword(t *testing.T) {
	username := "passwdstaff"
	if _, err := helpers.SeedStaffUser(username, models.RoleStaff, "oldpassword"); err != nil {
		t.Fatal(err)
	}
	token := helpers.LoginToken(t, app, username, "oldpassword")

	payload, _ := json.Marshal(map[string]string{
		"currentPassword": "oldpassword",
		"newPassword":     "newpassword",
	})
	_, statusCode := helpers.RequestRunner(t, app, "POST", "/backoffice/auth/password", payload, &token)
	require.Equal(t, http.StatusOK, statusCode)

	// old credentials stop working, new ones take over
	body, statusCode := helpers.API_Login(t, app, username, "oldpassword")
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserWrongPassword, body, statusCode)

	helpers.LoginToken(t, app, username, "newpassword")
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	token := helpers.LoginToken(t, app, testStaffUsername, testStaffPassword)

	payload, _ := json.Marshal(map[string]string{
		"currentPassword": "not-the-password",
		"newPassword":     "irrelevant",
	})
	body, statusCode := helpers.RequestRunner(t, app, "POST", "/backoffice/auth/password", payload, &token)
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserWrongPassword, body, statusCode)
}

func TestChangePasswordTooShort(t *testing.T) {
	token := helpers.LoginToken(t, app, testStaffUsername, testStaffPassword)

	payload, _ := json.Marshal(map[string]string{
		"currentPassword": testStaffPassword,
		"newPassword":     "abc",
	})
	body, statusCode := helpers.RequestRunner(t, app, "POST", "/backoffice/auth/password", payload, &token)
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserPasswordTooShort, body, statusCode)
}
