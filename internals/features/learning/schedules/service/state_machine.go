// file: internals/features/learning/schedules/service/state_machine.go
package service

import (
	"errors"
	"time"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/learning/schedules/model"
)

var (
	// ErrAlreadyInState signals a retried transition to the state the record
	// is already in. Callers treat it as a no-op, never as a reason to replay
	// side effects.
	ErrAlreadyInState    = errors.New("schedule is already in the requested state")
	ErrInvalidTransition = errors.New("invalid schedule status transition")
	ErrForbiddenTarget   = errors.New("role may not set this schedule status")
)

var transitionTargets = map[string]struct{}{
	constants.ScheduleStatusCompleted: {},
	constants.ScheduleStatusCancelled: {},
	constants.ScheduleStatusMissed:    {},
}

// CheckTransition validates a direct status transition. The only legal moves
// are scheduled → completed|cancelled|missed; everything else comes back as
// a conflict. Rescheduling is not a transition here: it force-resets to
// scheduled and is validated separately.
func CheckTransition(current, target string) error {
	if _, ok := transitionTargets[target]; !ok {
		return ErrInvalidTransition
	}
	if current == target {
		return ErrAlreadyInState
	}
	if current != constants.ScheduleStatusScheduled {
		return ErrInvalidTransition
	}
	return nil
}

// RoleCanTarget scopes the allowed target statuses per caller role: students
// may only self-report completion, teachers and admins may set any terminal
// status. Ownership is checked by the caller before this.
func RoleCanTarget(role, target string) bool {
	switch role {
	case constants.RoleStudent:
		return target == constants.ScheduleStatusCompleted
	case constants.RoleTeacher, constants.RoleAdmin:
		_, ok := transitionTargets[target]
		return ok
	default:
		return false
	}
}

// applyReschedule force-resets the record to scheduled with the new date, even
// out of a terminal state. A non-positive duration keeps the current one.
// Nothing else changes; the room id in particular stays what it was.
func applyReschedule(sched *model.ClassScheduleModel, newDate time.Time, newDuration int) (oldDate time.Time) {
	oldDate = sched.ClassScheduleDate
	if newDuration > 0 {
		sched.ClassScheduleDuration = newDuration
	}
	sched.ClassScheduleStatus = constants.ScheduleStatusScheduled
	sched.ClassScheduleDate = newDate
	return oldDate
}

// AppendCancelNote concatenates the cancellation marker onto existing notes.
// Prior notes are preserved, never overwritten. The reason is optional.
func AppendCancelNote(notes, reason string) string {
	marker := "Cancelled"
	if reason != "" {
		marker += ": " + reason
	}
	if notes == "" {
		return marker
	}
	return notes + "\n" + marker
}
