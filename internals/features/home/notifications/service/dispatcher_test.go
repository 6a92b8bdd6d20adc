package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quranku_backend/internals/constants"
	schedModel "quranku_backend/internals/features/learning/schedules/model"
)

var classDate = time.Date(2026, time.March, 2, 15, 30, 0, 0, time.UTC)

func sampleSchedule(teacherID *uuid.UUID) schedModel.ClassScheduleModel {
	return schedModel.ClassScheduleModel{
		ClassScheduleID:         uuid.New(),
		ClassScheduleUserID:     uuid.New(),
		ClassScheduleTeacherID:  teacherID,
		ClassScheduleCourseType: constants.CourseTajweed,
		ClassScheduleDate:       classDate,
		ClassScheduleDuration:   45,
		ClassScheduleStatus:     constants.ScheduleStatusScheduled,
		ClassScheduleRoomID:     schedModel.NewRoomID(),
	}
}

func TestFormatClassTime(t *testing.T) {
	assert.Equal(t, "Monday, March 2 at 3:30 PM", FormatClassTime(classDate))
}

func TestScheduledNotifiesBothParties(t *testing.T) {
	teacherID := uuid.New()
	sched := sampleSchedule(&teacherID)
	admin := uuid.New()

	batch := BuildScheduleNotifications(ScheduleEvent{
		Kind:        EventScheduled,
		Schedule:    sched,
		ActorID:     admin,
		ActorRole:   constants.RoleAdmin,
		StudentName: "Hamza",
		TeacherName: "Ustadh Bilal",
	})

	require.Len(t, batch, 2)
	for _, n := range batch {
		assert.Equal(t, constants.NotifClassScheduled, n.NotificationType)
		assert.Contains(t, string(n.NotificationMetadata), sched.ClassScheduleRoomID)
		assert.Contains(t, string(n.NotificationMetadata), constants.CourseTajweed)
	}
	assert.Equal(t, sched.ClassScheduleUserID, batch[0].NotificationUserID)
	assert.Contains(t, batch[0].NotificationMessage, "Monday, March 2 at 3:30 PM")
	assert.Contains(t, batch[0].NotificationMessage, "Ustadh Bilal")
	assert.Equal(t, teacherID, batch[1].NotificationUserID)
	assert.Contains(t, batch[1].NotificationMessage, "Hamza")
}

func TestActorIsNeverNotified(t *testing.T) {
	teacherID := uuid.New()
	sched := sampleSchedule(&teacherID)

	// teacher cancels: only the student hears about it
	batch := BuildScheduleNotifications(ScheduleEvent{
		Kind:      EventCancelled,
		Schedule:  sched,
		ActorID:   teacherID,
		ActorName: "Ustadh Bilal",
		ActorRole: constants.RoleTeacher,
		Reason:    "illness",
	})
	require.Len(t, batch, 1)
	assert.Equal(t, sched.ClassScheduleUserID, batch[0].NotificationUserID)
	assert.Contains(t, batch[0].NotificationMessage, "Ustadh Bilal")
	assert.Contains(t, batch[0].NotificationMessage, "Reason: illness")

	// student self-reports completion: only the teacher hears about it
	batch = BuildScheduleNotifications(ScheduleEvent{
		Kind:        EventCompleted,
		Schedule:    sched,
		ActorID:     sched.ClassScheduleUserID,
		ActorRole:   constants.RoleStudent,
		StudentName: "Hamza",
	})
	require.Len(t, batch, 1)
	assert.Equal(t, teacherID, batch[0].NotificationUserID)
	assert.Contains(t, batch[0].NotificationMessage, "Hamza")
}

func TestAdminCancelPhrasingDiffersFromTeacher(t *testing.T) {
	sched := sampleSchedule(nil)

	batch := BuildScheduleNotifications(ScheduleEvent{
		Kind:      EventCancelled,
		Schedule:  sched,
		ActorID:   uuid.New(),
		ActorName: "Root Admin",
		ActorRole: constants.RoleAdmin,
	})
	require.Len(t, batch, 1)
	assert.Contains(t, batch[0].NotificationMessage, "by the administration")
	assert.NotContains(t, batch[0].NotificationMessage, "Root Admin")
	assert.NotContains(t, batch[0].NotificationMessage, "Reason:")
}

func TestRescheduledReferencesOldAndNewDates(t *testing.T) {
	teacherID := uuid.New()
	sched := sampleSchedule(&teacherID)
	oldDate := time.Date(2026, time.February, 20, 10, 0, 0, 0, time.UTC)

	batch := BuildScheduleNotifications(ScheduleEvent{
		Kind:     EventRescheduled,
		Schedule: sched,
		ActorID:  uuid.New(), // admin
		OldDate:  oldDate,
	})
	require.Len(t, batch, 2)
	for _, n := range batch {
		assert.Contains(t, n.NotificationMessage, FormatClassTime(oldDate))
		assert.Contains(t, n.NotificationMessage, FormatClassTime(classDate))
	}
}

func TestNoTeacherMeansSingleRecipient(t *testing.T) {
	sched := sampleSchedule(nil)
	batch := BuildScheduleNotifications(ScheduleEvent{
		Kind:     EventScheduled,
		Schedule: sched,
		ActorID:  uuid.New(),
	})
	require.Len(t, batch, 1)
	assert.Equal(t, sched.ClassScheduleUserID, batch[0].NotificationUserID)
}
