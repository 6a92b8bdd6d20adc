// file: internals/helpers/auth/caller.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// CallerFromLocals rebuilds the Caller the auth middleware stored on the
// request context. A zero Caller means no identity was resolved.
func CallerFromLocals(c *fiber.Ctx) Caller {
	var caller Caller
	if raw, ok := c.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			caller.ID = id
		}
	}
	caller.Name, _ = c.Locals("user_name").(string)
	caller.Email, _ = c.Locals("user_email").(string)
	caller.Role, _ = c.Locals("userRole").(string)
	caller.AccountStatus, _ = c.Locals("account_status").(string)
	return caller
}
