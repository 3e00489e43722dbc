package policy

import (
	"testing"

	"backoffice/internal/models"

	"github.com/stretchr/testify/require"
)

func staffUser(id string, role models.Role) *models.StaffUser {
	return &models.StaffUser{ID: id, Username: id, Role: role}
}

func TestRankOrderingGatesEveryAction(t *testing.T) {
	roles := []models.Role{models.RoleStaff, models.RoleAdmin, models.RoleOwner}

	actions := []struct {
		act Action
		min models.Role
	}{
		{View("dashboard"), models.RoleStaff},
		{View("finance"), models.RoleStaff},
		{View("calendar"), models.RoleStaff},
		{View("profile"), models.RoleStaff},
		{View("reports"), models.RoleAdmin},
		{View("settings"), models.RoleAdmin},
		{View("logs"), models.RoleOwner},
		{Do(ManageCategories), models.RoleAdmin},
		{Do(ManageUsers), models.RoleAdmin},
		{Do(ResetPassword), models.RoleAdmin},
		{Do(ExportReport), models.RoleAdmin},
	}

	for _, tc := range actions {
		act, min := tc.act, tc.min
		for _, role := range roles {
			decision, err := Allow(staffUser("u1", role), act)
			require.NoError(t, err)

			want := role.Rank() >= min.Rank()
			require.Equal(t, want, decision.Allowed,
				"role %s, action %s/%s", role, act.Kind, act.Page)
			if !want {
				require.Equal(t, ReasonInsufficientRole, decision.Reason)
			}
		}
	}
}

func TestNoSelfRoleChangeOrDeletion(t *testing.T) {
	for _, role := range []models.Role{models.RoleStaff, models.RoleAdmin, models.RoleOwner} {
		actor := staffUser("u1", role)

		for _, kind := range []Kind{ChangeRole, DeleteUser} {
			decision, err := Allow(actor, On(kind, actor))
			require.NoError(t, err)
			require.False(t, decision.Allowed, "role %s, kind %s", role, kind)
		}
	}
}

func TestOwnerImmunity(t *testing.T) {
	owner := staffUser("boss", models.RoleOwner)

	for _, role := range []models.Role{models.RoleAdmin, models.RoleOwner} {
		actor := staffUser("u1", role)

		for _, kind := range []Kind{ChangeRole, DeleteUser} {
			decision, err := Allow(actor, On(kind, owner))
			require.NoError(t, err)
			require.False(t, decision.Allowed)
			require.Equal(t, ReasonOwnerImmune, decision.Reason)
		}
	}
}

func TestStaffDeniedCategoryManagement(t *testing.T) {
	decision, err := Allow(staffUser("u1", models.RoleStaff), Do(ManageCategories))
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, ReasonInsufficientRole, decision.Reason)
}

func TestAdminSelfRoleChangeDenied(t *testing.T) {
	actor := staffUser("u1", models.RoleAdmin)

	decision, err := Allow(actor, On(ChangeRole, actor))
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, ReasonSelfActionForbidden, decision.Reason)
}

func TestOwnerMayDeleteAdmin(t *testing.T) {
	decision, err := Allow(
		staffUser("boss", models.RoleOwner),
		On(DeleteUser, staffUser("u2", models.RoleAdmin)),
	)
	require.NoError(t, err)
	require.True(t, decision.Allowed)
}

func TestAdminDeleteOwnerDenied(t *testing.T) {
	decision, err := Allow(
		staffUser("u1", models.RoleAdmin),
		On(DeleteUser, staffUser("boss", models.RoleOwner)),
	)
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, ReasonOwnerImmune, decision.Reason)
}

func TestMalformedActionsError(t *testing.T) {
	actor := staffUser("u1", models.RoleOwner)

	_, err := Allow(actor, Action{Kind: "reboot_universe"})
	require.ErrorIs(t, err, ErrMalformedAction)

	_, err = Allow(actor, View("mainframe"))
	require.ErrorIs(t, err, ErrMalformedAction)

	_, err = Allow(actor, Do(ChangeRole))
	require.ErrorIs(t, err, ErrMalformedAction)

	_, err = Allow(nil, Do(ExportReport))
	require.ErrorIs(t, err, ErrMalformedAction)
}

func TestUnknownRoleNeverAllowed(t *testing.T) {
	decision, err := Allow(staffUser("u1", "intern"), View("dashboard"))
	require.NoError(t, err)
	require.False(t, decision.Allowed)
	require.Equal(t, ReasonInsufficientRole, decision.Reason)
}
