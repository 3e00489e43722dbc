// Package policy decides whether an actor may perform an action. It is a
// pure decision function: no side effects, no store access. Every handler
// evaluates it before touching the store, but no transaction spans the check
// and the following write, so two actors can both pass the check for the
// same target and race each other (two admins demoting the same user at
// once). That race exists in the system this replaces and is accepted here.
package policy

import (
	"errors"
	"fmt"

	"backoffice/internal/models"
)

type Kind string

const (
	ViewPage         Kind = "view_page"
	ManageCategories Kind = "manage_categories"
	ManageUsers      Kind = "manage_users"
	ChangeRole       Kind = "change_role"
	DeleteUser       Kind = "delete_user"
	ResetPassword    Kind = "reset_password"
	ExportReport     Kind = "export_report"
)

// Pages gated by ViewPage, with the minimum role for each.
var pageMinRole = map[string]models.Role{
	"dashboard": models.RoleStaff,
	"finance":   models.RoleStaff,
	"calendar":  models.RoleStaff,
	"profile":   models.RoleStaff,
	"reports":   models.RoleAdmin,
	"settings":  models.RoleAdmin,
	"logs":      models.RoleOwner,
}

var kindMinRole = map[Kind]models.Role{
	ManageCategories: models.RoleAdmin,
	ManageUsers:      models.RoleAdmin,
	ChangeRole:       models.RoleAdmin,
	DeleteUser:       models.RoleAdmin,
	ResetPassword:    models.RoleAdmin,
	ExportReport:     models.RoleAdmin,
}

// Kinds that act on another staff user and carry the self/owner rules.
var targeted = map[Kind]bool{
	ChangeRole: true,
	DeleteUser: true,
}

type Action struct {
	Kind   Kind
	Page   string
	Target *models.StaffUser
}

func View(page string) Action {
	return Action{Kind: ViewPage, Page: page}
}

func Do(kind Kind) Action {
	return Action{Kind: kind}
}

func On(kind Kind, target *models.StaffUser) Action {
	return Action{Kind: kind, Target: target}
}

type Reason string

const (
	ReasonInsufficientRole    Reason = "insufficient_role"
	ReasonSelfActionForbidden Reason = "self_action_forbidden"
	ReasonOwnerImmune         Reason = "owner_immune"
)

type Decision struct {
	Allowed bool
	Reason  Reason
}

var allowed = Decision{Allowed: true}

func deny(reason Reason) Decision {
	return Decision{Allowed: false, Reason: reason}
}

// ErrMalformedAction marks a programmer error: an action the policy does not
// know. It is never returned for a well-formed (role, action) pair.
var ErrMalformedAction = errors.New("policy: malformed action")

// Allow decides whether actor may perform act. An actor role below the
// action's minimum is denied with insufficient_role; change_role and
// delete_user are additionally denied on the actor's own record
// (self_action_forbidden) and on any owner record (owner_immune) — the owner
// cannot be demoted or deleted by anyone through this subsystem.
func Allow(actor *models.StaffUser, act Action) (Decision, error) {
	if actor == nil {
		return Decision{}, fmt.Errorf("%w: nil actor", ErrMalformedAction)
	}

	min, err := minRole(act)
	if err != nil {
		return Decision{}, err
	}

	if !actor.Role.AtLeast(min) {
		return deny(ReasonInsufficientRole), nil
	}

	if targeted[act.Kind] {
		if act.Target == nil {
			return Decision{}, fmt.Errorf(
				"%w: %s needs a target", ErrMalformedAction, act.Kind,
			)
		}
		if act.Target.ID == actor.ID {
			return deny(ReasonSelfActionForbidden), nil
		}
		if act.Target.Role == models.RoleOwner {
			return deny(ReasonOwnerImmune), nil
		}
	}

	return allowed, nil
}

func minRole(act Action) (models.Role, error) {
	if act.Kind == ViewPage {
		min, ok := pageMinRole[act.Page]
		if !ok {
			return "", fmt.Errorf(
				"%w: unknown page %q", ErrMalformedAction, act.Page,
			)
		}
		return min, nil
	}

	min, ok := kindMinRole[act.Kind]
	if !ok {
		return "", fmt.Errorf(
			"%w: unknown kind %q", ErrMalformedAction, act.Kind,
		)
	}
	return min, nil
}
