package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "quranku_backend/internals/helpers"
	helperAuth "quranku_backend/internals/helpers/auth"
)

// respondDecision translates a policy decision into exactly one HTTP error
// response. Callers return it directly, so no second response is ever sent.
func respondDecision(c *fiber.Ctx, d helperAuth.Decision) error {
	if d.Meta != nil {
		return helper.JsonErrorWithMeta(c, d.Status, d.Message, d.Meta)
	}
	return helper.JsonError(c, d.Status, d.Message)
}

// OnlyRoles gates a route group on role membership.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := helperAuth.CallerFromLocals(c)
		d := helperAuth.Evaluate(caller,
			helperAuth.IsIdentified(),
			helperAuth.HasRole(roles...),
		)
		if !d.Allow {
			if customMessage != "" && d.Status == fiber.StatusForbidden {
				d.Message = customMessage
			}
			return respondDecision(c, d)
		}
		return c.Next()
	}
}

// RequireApproved gates on account approval (admins bypass). The failing
// response carries the current account_status for the client.
func RequireApproved() fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := helperAuth.CallerFromLocals(c)
		d := helperAuth.Evaluate(caller,
			helperAuth.IsIdentified(),
			helperAuth.IsApproved(),
		)
		if !d.Allow {
			return respondDecision(c, d)
		}
		return c.Next()
	}
}

// OnlyRolesApproved is the conjunction: role check first, then approval.
func OnlyRolesApproved(customMessage string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		caller := helperAuth.CallerFromLocals(c)
		d := helperAuth.Evaluate(caller,
			helperAuth.IsIdentified(),
			helperAuth.HasRole(roles...),
			helperAuth.IsApproved(),
		)
		if !d.Allow {
			if customMessage != "" && d.Status == fiber.StatusForbidden && d.Meta == nil {
				d.Message = customMessage
			}
			return respondDecision(c, d)
		}
		return c.Next()
	}
}
