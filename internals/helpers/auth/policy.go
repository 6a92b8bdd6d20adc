// file: internals/helpers/auth/policy.go
package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quranku_backend/internals/constants"
)

// Caller is the resolved identity a request acts as.
type Caller struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Role          string
	AccountStatus string
}

// Decision is the tagged outcome of a policy evaluation. It carries no I/O:
// middleware translates it to an HTTP response exactly once, so handlers can
// short-circuit without risking a double send.
type Decision struct {
	Allow   bool
	Status  int
	Message string
	Meta    fiber.Map
}

var allowed = Decision{Allow: true}

// Predicate checks one rule over the caller. nil means pass.
type Predicate func(Caller) *Decision

// Evaluate runs predicates in order, short-circuiting on the first failure.
func Evaluate(c Caller, preds ...Predicate) Decision {
	for _, p := range preds {
		if d := p(c); d != nil {
			return *d
		}
	}
	return allowed
}

// HasRole fails with 403 when the caller's role is outside the allow set.
func HasRole(roles ...string) Predicate {
	return func(c Caller) *Decision {
		for _, r := range roles {
			if c.Role == r {
				return nil
			}
		}
		return &Decision{
			Status:  fiber.StatusForbidden,
			Message: fmt.Sprintf("Forbidden: role %q may not access this resource", c.Role),
		}
	}
}

// IsApproved fails with 403 unless the caller is an admin or the account has
// been approved. The current status rides along so the client can render a
// pending-approval screen.
func IsApproved() Predicate {
	return func(c Caller) *Decision {
		if c.Role == constants.RoleAdmin {
			return nil
		}
		if c.AccountStatus == constants.AccountStatusApproved {
			return nil
		}
		return &Decision{
			Status:  fiber.StatusForbidden,
			Message: "Forbidden: account is not approved yet",
			Meta:    fiber.Map{"account_status": c.AccountStatus},
		}
	}
}

// IsIdentified fails with 401 when there is no resolved identity at all.
func IsIdentified() Predicate {
	return func(c Caller) *Decision {
		if c.ID == uuid.Nil {
			return &Decision{
				Status:  fiber.StatusUnauthorized,
				Message: "Unauthorized",
			}
		}
		return nil
	}
}
