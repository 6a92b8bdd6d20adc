// file: internals/features/home/notifications/service/dispatcher.go
package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	notifModel "quranku_backend/internals/features/home/notifications/model"
	schedModel "quranku_backend/internals/features/learning/schedules/model"
)

type EventKind string

const (
	EventScheduled   EventKind = "scheduled"
	EventCancelled   EventKind = "cancelled"
	EventRescheduled EventKind = "rescheduled"
	EventCompleted   EventKind = "completed"
)

// ScheduleEvent describes one schedule state transition for fan-out. The
// acting party is never notified of their own action; the counterpart
// always is.
type ScheduleEvent struct {
	Kind     EventKind
	Schedule schedModel.ClassScheduleModel

	ActorID   uuid.UUID
	ActorName string
	ActorRole string

	StudentName string
	TeacherName string

	Reason  string    // cancellation only, optional
	OldDate time.Time // reschedule only
}

// FormatClassTime renders the locale-fixed human date used in every
// notification message.
func FormatClassTime(t time.Time) string {
	return t.Format("Monday, January 2 at 3:04 PM")
}

func notifTypeFor(kind EventKind) string {
	switch kind {
	case EventScheduled:
		return constants.NotifClassScheduled
	case EventCancelled:
		return constants.NotifClassCancelled
	case EventRescheduled:
		return constants.NotifClassRescheduled
	default:
		return constants.NotifClassCompleted
	}
}

func titleFor(kind EventKind, course string) string {
	switch kind {
	case EventScheduled:
		return course + " class scheduled"
	case EventCancelled:
		return course + " class cancelled"
	case EventRescheduled:
		return course + " class rescheduled"
	default:
		return course + " class completed"
	}
}

func scheduleMetadata(ev ScheduleEvent) datatypes.JSON {
	meta := map[string]any{
		"class_id":       ev.Schedule.ClassScheduleID.String(),
		"course_type":    ev.Schedule.ClassScheduleCourseType,
		"scheduled_date": ev.Schedule.ClassScheduleDate.Format(time.RFC3339),
		"room_id":        ev.Schedule.ClassScheduleRoomID,
	}
	if ev.TeacherName != "" {
		meta["teacher_name"] = ev.TeacherName
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func studentMessage(ev ScheduleEvent) string {
	course := ev.Schedule.ClassScheduleCourseType
	when := FormatClassTime(ev.Schedule.ClassScheduleDate)

	switch ev.Kind {
	case EventScheduled:
		msg := fmt.Sprintf("Your %s class has been scheduled for %s", course, when)
		if ev.TeacherName != "" {
			msg += fmt.Sprintf(" with %s", ev.TeacherName)
		}
		return msg + "."
	case EventCancelled:
		var by string
		if ev.ActorRole == constants.RoleTeacher && ev.ActorName != "" {
			by = fmt.Sprintf("by %s", ev.ActorName)
		} else {
			by = "by the administration"
		}
		msg := fmt.Sprintf("Your %s class on %s has been cancelled %s.", course, when, by)
		if ev.Reason != "" {
			msg += fmt.Sprintf(" Reason: %s", ev.Reason)
		}
		return msg
	case EventRescheduled:
		return fmt.Sprintf("Your %s class has been moved from %s to %s.",
			course, FormatClassTime(ev.OldDate), when)
	default:
		return fmt.Sprintf("Your %s class on %s has been marked as completed. Well done!", course, when)
	}
}

func teacherMessage(ev ScheduleEvent) string {
	course := ev.Schedule.ClassScheduleCourseType
	when := FormatClassTime(ev.Schedule.ClassScheduleDate)

	student := ev.StudentName
	if student == "" {
		student = "a student"
	}

	switch ev.Kind {
	case EventScheduled:
		return fmt.Sprintf("A %s class with %s has been scheduled for %s.", course, student, when)
	case EventCancelled:
		msg := fmt.Sprintf("The %s class with %s on %s has been cancelled.", course, student, when)
		if ev.Reason != "" {
			msg += fmt.Sprintf(" Reason: %s", ev.Reason)
		}
		return msg
	case EventRescheduled:
		return fmt.Sprintf("The %s class with %s has been moved from %s to %s.",
			course, student, FormatClassTime(ev.OldDate), when)
	default:
		return fmt.Sprintf("%s reported the %s class on %s as completed.", student, course, when)
	}
}

// BuildScheduleNotifications is a pure function of the event: it returns the
// notification rows for every affected party except the actor.
func BuildScheduleNotifications(ev ScheduleEvent) []notifModel.NotificationModel {
	var out []notifModel.NotificationModel
	ntype := notifTypeFor(ev.Kind)
	title := titleFor(ev.Kind, ev.Schedule.ClassScheduleCourseType)
	meta := scheduleMetadata(ev)

	if ev.Schedule.ClassScheduleUserID != ev.ActorID {
		out = append(out, notifModel.NotificationModel{
			NotificationUserID:   ev.Schedule.ClassScheduleUserID,
			NotificationType:     ntype,
			NotificationTitle:    title,
			NotificationMessage:  studentMessage(ev),
			NotificationMetadata: meta,
		})
	}

	if tid := ev.Schedule.ClassScheduleTeacherID; tid != nil && *tid != ev.ActorID {
		out = append(out, notifModel.NotificationModel{
			NotificationUserID:   *tid,
			NotificationType:     ntype,
			NotificationTitle:    title,
			NotificationMessage:  teacherMessage(ev),
			NotificationMetadata: meta,
		})
	}

	return out
}

// Dispatch persists a notification batch. It runs synchronously before the
// HTTP response, but a failure is logged and never rolls back the transition
// that produced it.
func Dispatch(db *gorm.DB, batch []notifModel.NotificationModel) {
	if len(batch) == 0 {
		return
	}
	if err := db.Create(&batch).Error; err != nil {
		log.Printf("[ERROR] notify: failed to persist %d notification(s): %v", len(batch), err)
	}
}

// NotifyScheduleEvent is the fan-out entry point every schedule transition
// calls.
func NotifyScheduleEvent(db *gorm.DB, ev ScheduleEvent) {
	Dispatch(db, BuildScheduleNotifications(ev))
}

// NotifyUser builds and persists a single ad-hoc notification (resource
// decisions, account approval, payment receipts).
func NotifyUser(db *gorm.DB, userID uuid.UUID, ntype, title, message string, meta map[string]any) {
	var rawMeta datatypes.JSON
	if meta != nil {
		if raw, err := json.Marshal(meta); err == nil {
			rawMeta = datatypes.JSON(raw)
		}
	}
	Dispatch(db, []notifModel.NotificationModel{{
		NotificationUserID:   userID,
		NotificationType:     ntype,
		NotificationTitle:    title,
		NotificationMessage:  message,
		NotificationMetadata: rawMeta,
	}})
}
