package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quranku_backend/internals/constants"
	rosterService "quranku_backend/internals/features/users/user/service"
)

func TestCheckEnrollRoleOnlyStudents(t *testing.T) {
	assert.NoError(t, checkEnrollRole(constants.RoleStudent))

	// a teacher or admin must be rejected before anything is written: once a
	// non-student id sits in enrolled_student_ids the slot is stuck, since no
	// schedule can ever spawn for it and a retry only reports AlreadyEnrolled
	for _, role := range []string{constants.RoleTeacher, constants.RoleAdmin, "visitor", ""} {
		assert.ErrorIs(t, checkEnrollRole(role), rosterService.ErrStudentRoleMismatch, role)
	}
}
