package utils

import (
	"errors"

	"backoffice/internal/errmsg"
	"backoffice/internal/models"
	"backoffice/internal/policy"
	"backoffice/internal/store"

	"github.com/gofiber/fiber/v3"
)

// Guard evaluates the access policy for the actor. When the action is denied
// (or malformed) it writes the response and returns allowed=false; the
// handler must stop before touching the store.
func Guard(c fiber.Ctx, actor *models.StaffUser, act policy.Action) (allowed bool, resp error) {
	decision, err := policy.Allow(actor, act)
	if err != nil {
		return false, StatusError(c, errmsg.MalformedAction)
	}

	if decision.Allowed {
		return true, nil
	}

	switch decision.Reason {
	case policy.ReasonSelfActionForbidden:
		return false, DeniedError(c, errmsg.PolicySelfActionForbidden, string(decision.Reason))
	case policy.ReasonOwnerImmune:
		return false, DeniedError(c, errmsg.PolicyOwnerImmune, string(decision.Reason))
	default:
		return false, DeniedError(c, errmsg.PolicyInsufficientRole, string(decision.Reason))
	}
}

// StoreError maps facade failures onto the API error surface.
func StoreError(c fiber.Ctx, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return StatusError(c, errmsg.RecordNotFound)
	}
	return StatusError(c, errmsg.StoreUnavailable)
}
