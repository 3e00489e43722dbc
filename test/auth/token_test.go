package auth

import (
	"strings"
	"testing"

	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/test/helpers"

	"github.com/stretchr/testify/require"
)

func TestParseTokenRejectsTamperedSignature(t *testing.T) {
	su := models.StaffUser{ID: "someone", Username: "someone", Role: models.RoleStaff}
	token := su.GenToken()

	tampered := token[:len(token)-2]
	if strings.HasSuffix(token, "xx") {
		tampered += "yy"
	} else {
		tampered += "xx"
	}

	var claims models.StaffUser
	require.Error(t, claims.ParseToken(tampered))
	require.Empty(t, claims.ID)
}

func TestParseTokenRoundTrip(t *testing.T) {
	su := models.StaffUser{ID: "someone", Username: "someone", Role: models.RoleAdmin}
	token := su.GenToken()

	var claims models.StaffUser
	require.NoError(t, claims.ParseToken(token))
	require.Equal(t, su.ID, claims.ID)
	require.Equal(t, su.Role, claims.Role)
}

func TestTamperedTokenIsUnauthorized(t *testing.T) {
	token := helpers.LoginToken(t, app, testStaffUsername, testStaffPassword)

	body, statusCode := helpers.API_Me(t, app, token+"xx")
	helpers.ResponseErrorCheck(t, app, errmsg.StaffUserNoToken, body, statusCode)
}
