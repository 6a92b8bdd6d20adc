package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/learning/schedules/model"
)

func TestCheckTransitionFromScheduled(t *testing.T) {
	for _, target := range []string{
		constants.ScheduleStatusCompleted,
		constants.ScheduleStatusCancelled,
		constants.ScheduleStatusMissed,
	} {
		assert.NoError(t, CheckTransition(constants.ScheduleStatusScheduled, target), target)
	}
}

func TestCheckTransitionRetriedCompletionIsNoOp(t *testing.T) {
	err := CheckTransition(constants.ScheduleStatusCompleted, constants.ScheduleStatusCompleted)
	assert.ErrorIs(t, err, ErrAlreadyInState)
}

func TestCheckTransitionTerminalStatesAreStuck(t *testing.T) {
	// no way out of cancelled/completed/missed except through reschedule
	for _, current := range []string{
		constants.ScheduleStatusCompleted,
		constants.ScheduleStatusCancelled,
		constants.ScheduleStatusMissed,
	} {
		for _, target := range []string{
			constants.ScheduleStatusCompleted,
			constants.ScheduleStatusCancelled,
			constants.ScheduleStatusMissed,
		} {
			if current == target {
				continue
			}
			assert.ErrorIs(t, CheckTransition(current, target), ErrInvalidTransition, current+"→"+target)
		}
	}
}

func TestCheckTransitionToScheduledRejected(t *testing.T) {
	// scheduled is only reachable through reschedule, not a direct transition
	err := CheckTransition(constants.ScheduleStatusCancelled, constants.ScheduleStatusScheduled)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestRoleCanTarget(t *testing.T) {
	assert.True(t, RoleCanTarget(constants.RoleStudent, constants.ScheduleStatusCompleted))
	assert.False(t, RoleCanTarget(constants.RoleStudent, constants.ScheduleStatusCancelled))
	assert.False(t, RoleCanTarget(constants.RoleStudent, constants.ScheduleStatusMissed))

	for _, role := range []string{constants.RoleTeacher, constants.RoleAdmin} {
		assert.True(t, RoleCanTarget(role, constants.ScheduleStatusCompleted))
		assert.True(t, RoleCanTarget(role, constants.ScheduleStatusCancelled))
		assert.True(t, RoleCanTarget(role, constants.ScheduleStatusMissed))
		assert.False(t, RoleCanTarget(role, constants.ScheduleStatusScheduled))
	}

	assert.False(t, RoleCanTarget("visitor", constants.ScheduleStatusCompleted))
}

func TestApplyRescheduleResetsStatusFromTerminal(t *testing.T) {
	newDate := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)
	for _, current := range []string{
		constants.ScheduleStatusCompleted,
		constants.ScheduleStatusCancelled,
		constants.ScheduleStatusMissed,
		constants.ScheduleStatusScheduled,
	} {
		sched := model.ClassScheduleModel{
			ClassScheduleStatus:   current,
			ClassScheduleDate:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
			ClassScheduleDuration: 60,
		}
		old := applyReschedule(&sched, newDate, 90)
		assert.Equal(t, constants.ScheduleStatusScheduled, sched.ClassScheduleStatus, current)
		assert.Equal(t, newDate, sched.ClassScheduleDate)
		assert.Equal(t, 90, sched.ClassScheduleDuration)
		assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), old)
	}
}

func TestApplyReschedulePreservesRoomAndNotes(t *testing.T) {
	sched := model.ClassScheduleModel{
		ClassScheduleStatus:   constants.ScheduleStatusCancelled,
		ClassScheduleDate:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		ClassScheduleDuration: 45,
		ClassScheduleRoomID:   "room-7c1a2f",
		ClassScheduleNotes:    "Focus on surah Al-Mulk\nCancelled: illness",
	}
	applyReschedule(&sched, time.Date(2026, 9, 20, 8, 0, 0, 0, time.UTC), 0)

	// the room token and notes ride through untouched, and a non-positive
	// duration keeps the current one
	assert.Equal(t, "room-7c1a2f", sched.ClassScheduleRoomID)
	assert.Equal(t, "Focus on surah Al-Mulk\nCancelled: illness", sched.ClassScheduleNotes)
	assert.Equal(t, 45, sched.ClassScheduleDuration)
}

func TestAppendCancelNote(t *testing.T) {
	assert.Equal(t, "Cancelled: illness", AppendCancelNote("", "illness"))
	assert.Equal(t, "Cancelled", AppendCancelNote("", ""))
	// prior notes survive the marker
	assert.Equal(t, "Focus on surah Al-Mulk\nCancelled: illness",
		AppendCancelNote("Focus on surah Al-Mulk", "illness"))
}
