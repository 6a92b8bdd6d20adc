package auth

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"quranku_backend/internals/constants"
)

func caller(role, status string) Caller {
	return Caller{
		ID:            uuid.New(),
		Role:          role,
		AccountStatus: status,
	}
}

func TestEvaluateOrderShortCircuits(t *testing.T) {
	// role is checked before approval status, so a wrong-role pending account
	// must see the role failure, not the approval one
	c := caller(constants.RoleStudent, constants.AccountStatusPending)

	d := Evaluate(c, HasRole(constants.RoleTeacher), IsApproved())
	assert.False(t, d.Allow)
	assert.Equal(t, fiber.StatusForbidden, d.Status)
	assert.Contains(t, d.Message, "role")
	assert.Nil(t, d.Meta)
}

func TestHasRole(t *testing.T) {
	d := Evaluate(caller(constants.RoleTeacher, constants.AccountStatusApproved),
		HasRole(constants.RoleTeacher, constants.RoleAdmin))
	assert.True(t, d.Allow)

	d = Evaluate(caller(constants.RoleStudent, constants.AccountStatusApproved),
		HasRole(constants.RoleAdmin))
	assert.False(t, d.Allow)
	assert.Equal(t, fiber.StatusForbidden, d.Status)
}

func TestIsApprovedIncludesStatusMeta(t *testing.T) {
	d := Evaluate(caller(constants.RoleStudent, constants.AccountStatusPending), IsApproved())
	assert.False(t, d.Allow)
	assert.Equal(t, fiber.StatusForbidden, d.Status)
	assert.Equal(t, constants.AccountStatusPending, d.Meta["account_status"])
}

func TestIsApprovedAdminBypass(t *testing.T) {
	// admins never carry an approval status worth checking
	d := Evaluate(caller(constants.RoleAdmin, constants.AccountStatusPending), IsApproved())
	assert.True(t, d.Allow)
}

func TestIsIdentified(t *testing.T) {
	d := Evaluate(Caller{}, IsIdentified())
	assert.False(t, d.Allow)
	assert.Equal(t, fiber.StatusUnauthorized, d.Status)

	d = Evaluate(caller(constants.RoleStudent, constants.AccountStatusApproved), IsIdentified())
	assert.True(t, d.Allow)
}

func TestEvaluateNoPredicatesAllows(t *testing.T) {
	assert.True(t, Evaluate(caller(constants.RoleStudent, constants.AccountStatusApproved)).Allow)
}
