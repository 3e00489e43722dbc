package helpers

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"backoffice/internal/db"
	"backoffice/internal/models"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// ResetCollections empties the named collections of the test database so a
// run never sees a previous run's records.
func ResetCollections(names ...string) error {
	for _, name := range names {
		var err error
		switch name {
		case "staffusers":
			_, err = db.StaffUsers.DeleteMany(db.Ctx, bson.M{})
		case "finances":
			_, err = db.Finances.DeleteMany(db.Ctx, bson.M{})
		case "categories":
			_, err = db.Categories.DeleteMany(db.Ctx, bson.M{})
		case "events":
			_, err = db.CalendarEvents.DeleteMany(db.Ctx, bson.M{})
		case "logs":
			_, err = db.Logs.DeleteMany(db.Ctx, bson.M{})
		default:
			err = fmt.Errorf("unknown collection %q", name)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// SeedStaffUser inserts a staff user directly into the test database, the
// way a provisioning script would.
func SeedStaffUser(username string, role models.Role, password string) (models.StaffUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return models.StaffUser{}, err
	}

	su := models.StaffUser{
		ID:        uuid.NewString(),
		Username:  username,
		Role:      role,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}

	if _, err := db.StaffUsers.InsertOne(db.Ctx, su); err != nil {
		return models.StaffUser{}, err
	}

	return su, nil
}

func API_Login(
	t *testing.T,
	app *fiber.App,
	username string,
	password string,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}{
		Username: username,
		Password: password,
	}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		"/backoffice/auth/login",
		sendBytes,
		nil,
	)
}

// LoginToken logs in and returns just the bearer token, failing the test on
// any non-200.
func LoginToken(
	t *testing.T,
	app *fiber.App,
	username string,
	password string,
) string {
	body, statusCode := API_Login(t, app, username, password)
	require.Equal(t, fiber.StatusOK, statusCode, string(body))

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NotEmpty(t, payload.Token)

	return payload.Token
}

func API_Logout(
	t *testing.T,
	app *fiber.App,
	token string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"POST",
		"/backoffice/auth/logout",
		nil,
		&token,
	)
}

func API_Me(
	t *testing.T,
	app *fiber.App,
	token string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"GET",
		"/backoffice/auth/me",
		nil,
		&token,
	)
}

func API_ListStaffUsers(
	t *testing.T,
	app *fiber.App,
	token string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"GET",
		"/backoffice/staffusers/",
		nil,
		&token,
	)
}

func API_CreateStaffUser(
	t *testing.T,
	app *fiber.App,
	token string,
	username string,
	role models.Role,
	password string,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		Username string      `json:"username"`
		Role     models.Role `json:"role"`
		Password string      `json:"password"`
	}{
		Username: username,
		Role:     role,
		Password: password,
	}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		"/backoffice/staffusers/",
		sendBytes,
		&token,
	)
}

func API_ChangeRole(
	t *testing.T,
	app *fiber.App,
	token string,
	targetID string,
	role models.Role,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		Role models.Role `json:"role"`
	}{Role: role}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"PUT",
		fmt.Sprintf("/backoffice/staffusers/%s/role", targetID),
		sendBytes,
		&token,
	)
}

func API_ResetPassword(
	t *testing.T,
	app *fiber.App,
	token string,
	targetID string,
	newPassword string,
) (bodyBytes []byte, statusCode int) {
	payload := struct {
		NewPassword string `json:"newPassword"`
	}{NewPassword: newPassword}

	sendBytes, err := json.Marshal(payload)
	require.NoError(t, err)

	return RequestRunner(t, app,
		"POST",
		fmt.Sprintf("/backoffice/staffusers/%s/reset-password", targetID),
		sendBytes,
		&token,
	)
}

func API_DeleteStaffUser(
	t *testing.T,
	app *fiber.App,
	token string,
	targetID string,
) (bodyBytes []byte, statusCode int) {
	return RequestRunner(t, app,
		"DELETE",
		fmt.Sprintf("/backoffice/staffusers/%s", targetID),
		nil,
		&token,
	)
}
