package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// The approval gate is a sub-group derived from the authenticated /api/u
// group. Re-grouping the prefix would stack the token middleware twice; this
// pins that the parent middleware runs once and the gate only covers routes
// registered below it.
func TestApprovalGateDerivedGroupScoping(t *testing.T) {
	app := fiber.New()

	var tokenParses int
	authenticated := func(c *fiber.Ctx) error {
		tokenParses++
		return c.Next()
	}

	user := app.Group("/api/u", authenticated)
	user.Get("/me", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	gated := user.Group("", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusForbidden)
	})
	gated.Get("/classes", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	// open route: reachable, token parsed exactly once, gate never consulted
	resp, err := app.Test(httptest.NewRequest("GET", "/api/u/me", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, tokenParses)

	// gated route: the gate fires, token still parsed exactly once
	tokenParses = 0
	resp, err = app.Test(httptest.NewRequest("GET", "/api/u/classes", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, 1, tokenParses)
}
