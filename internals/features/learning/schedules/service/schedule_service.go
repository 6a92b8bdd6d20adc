// file: internals/features/learning/schedules/service/schedule_service.go
package service

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	notifService "quranku_backend/internals/features/home/notifications/service"
	"quranku_backend/internals/features/learning/schedules/model"
	activityService "quranku_backend/internals/features/progress/activity_logs/service"
	userModel "quranku_backend/internals/features/users/user/model"
	rosterService "quranku_backend/internals/features/users/user/service"
)

var ErrScheduleNotFound = errors.New("schedule not found")

// Actor identifies who triggered a schedule mutation and drives both
// authorization scoping and notification phrasing.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role string
}

type CreateScheduleInput struct {
	StudentID  uuid.UUID
	TeacherID  *uuid.UUID
	CourseType string
	Date       time.Time
	Duration   int
	Notes      string
	RoomID     string // empty = mint a fresh one
}

// CreateSchedule runs the shared creation saga: insert the schedule row,
// repair the teacher↔student roster edge, then fan out notifications. Steps
// after the insert are idempotent; their failures are logged per step and do
// not roll back the schedule.
func CreateSchedule(db *gorm.DB, in CreateScheduleInput, actor Actor) (*model.ClassScheduleModel, error) {
	student, err := loadUserWithRole(db, in.StudentID, constants.RoleStudent, rosterService.ErrStudentRoleMismatch)
	if err != nil {
		return nil, err
	}

	var teacher *userModel.UserModel
	if in.TeacherID != nil {
		teacher, err = loadUserWithRole(db, *in.TeacherID, constants.RoleTeacher, rosterService.ErrTeacherRoleMismatch)
		if err != nil {
			return nil, err
		}
	}

	if in.Duration <= 0 {
		in.Duration = 60
	}
	if in.RoomID == "" {
		in.RoomID = model.NewRoomID()
	}

	sched := model.ClassScheduleModel{
		ClassScheduleUserID:     in.StudentID,
		ClassScheduleTeacherID:  in.TeacherID,
		ClassScheduleCourseType: in.CourseType,
		ClassScheduleDate:       in.Date,
		ClassScheduleDuration:   in.Duration,
		ClassScheduleStatus:     constants.ScheduleStatusScheduled,
		ClassScheduleRoomID:     in.RoomID,
		ClassScheduleNotes:      in.Notes,
	}
	if err := db.Create(&sched).Error; err != nil {
		return nil, err
	}

	// saga step: roster edge repair (idempotent, must not roll back the insert)
	if in.TeacherID != nil {
		if err := rosterService.AttachTeacherStudent(db, in.StudentID, *in.TeacherID); err != nil {
			log.Printf("[ERROR] saga: roster repair for schedule %s: %v", sched.ClassScheduleID, err)
		}
	}

	// saga step: notification fan-out
	ev := notifService.ScheduleEvent{
		Kind:        notifService.EventScheduled,
		Schedule:    sched,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		ActorRole:   actor.Role,
		StudentName: student.UserName,
	}
	if teacher != nil {
		ev.TeacherName = teacher.UserName
	}
	notifService.NotifyScheduleEvent(db, ev)

	return &sched, nil
}

// Complete moves a schedule to completed with exactly-once side effects: the
// status write is a conditional update, and only the request that wins it
// increments the student's lifetime counter and appends the attendance log.
func Complete(db *gorm.DB, sched *model.ClassScheduleModel, actor Actor) error {
	if err := CheckTransition(sched.ClassScheduleStatus, constants.ScheduleStatusCompleted); err != nil {
		return err
	}

	res := db.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_id = ? AND class_schedule_status = ?",
			sched.ClassScheduleID, constants.ScheduleStatusScheduled).
		Update("class_schedule_status", constants.ScheduleStatusCompleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// lost a race; whoever won already ran the side effects
		return ErrAlreadyInState
	}
	sched.ClassScheduleStatus = constants.ScheduleStatusCompleted

	if err := db.Model(&userModel.UserModel{}).
		Where("id = ?", sched.ClassScheduleUserID).
		Update("completed_classes", gorm.Expr("completed_classes + 1")).Error; err != nil {
		log.Printf("[ERROR] saga: completed counter for schedule %s: %v", sched.ClassScheduleID, err)
	}
	activityService.Record(db, sched.ClassScheduleUserID, constants.ActivityClassAttended,
		fmt.Sprintf("%s class on %s", sched.ClassScheduleCourseType,
			notifService.FormatClassTime(sched.ClassScheduleDate)))

	notifService.NotifyScheduleEvent(db, notifService.ScheduleEvent{
		Kind:        notifService.EventCompleted,
		Schedule:    *sched,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		ActorRole:   actor.Role,
		StudentName: studentName(db, sched.ClassScheduleUserID),
	})
	return nil
}

// Cancel moves a schedule to cancelled and appends the reason marker to the
// notes without overwriting what was already there.
func Cancel(db *gorm.DB, sched *model.ClassScheduleModel, reason string, actor Actor) error {
	if err := CheckTransition(sched.ClassScheduleStatus, constants.ScheduleStatusCancelled); err != nil {
		return err
	}

	notes := AppendCancelNote(sched.ClassScheduleNotes, reason)
	res := db.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_id = ? AND class_schedule_status = ?",
			sched.ClassScheduleID, constants.ScheduleStatusScheduled).
		Updates(map[string]any{
			"class_schedule_status": constants.ScheduleStatusCancelled,
			"class_schedule_notes":  notes,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyInState
	}
	sched.ClassScheduleStatus = constants.ScheduleStatusCancelled
	sched.ClassScheduleNotes = notes

	notifService.NotifyScheduleEvent(db, notifService.ScheduleEvent{
		Kind:        notifService.EventCancelled,
		Schedule:    *sched,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		ActorRole:   actor.Role,
		Reason:      reason,
		StudentName: studentName(db, sched.ClassScheduleUserID),
	})
	return nil
}

// Reschedule sets a new date (and optionally duration) and force-resets the
// status to scheduled regardless of the prior state. The room id survives.
func Reschedule(db *gorm.DB, sched *model.ClassScheduleModel, newDate time.Time, newDuration int, actor Actor) error {
	oldDate := applyReschedule(sched, newDate, newDuration)

	if err := db.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_id = ?", sched.ClassScheduleID).
		Updates(map[string]any{
			"class_schedule_status":   constants.ScheduleStatusScheduled,
			"class_schedule_date":     sched.ClassScheduleDate,
			"class_schedule_duration": sched.ClassScheduleDuration,
		}).Error; err != nil {
		return err
	}

	notifService.NotifyScheduleEvent(db, notifService.ScheduleEvent{
		Kind:        notifService.EventRescheduled,
		Schedule:    *sched,
		ActorID:     actor.ID,
		ActorName:   actor.Name,
		ActorRole:   actor.Role,
		OldDate:     oldDate,
		StudentName: studentName(db, sched.ClassScheduleUserID),
	})
	return nil
}

// MarkMissed records a no-show. No fan-out: a missed class is surfaced by
// queries, not announced.
func MarkMissed(db *gorm.DB, sched *model.ClassScheduleModel) error {
	if err := CheckTransition(sched.ClassScheduleStatus, constants.ScheduleStatusMissed); err != nil {
		return err
	}

	res := db.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_id = ? AND class_schedule_status = ?",
			sched.ClassScheduleID, constants.ScheduleStatusScheduled).
		Update("class_schedule_status", constants.ScheduleStatusMissed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyInState
	}
	sched.ClassScheduleStatus = constants.ScheduleStatusMissed
	return nil
}

/* ==========================
   Lookup helpers
========================== */

func loadUserWithRole(db *gorm.DB, id uuid.UUID, role string, mismatch error) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := db.Select("id", "user_name", "role").First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rosterService.ErrUserNotFound
		}
		return nil, err
	}
	if u.Role != role {
		return nil, mismatch
	}
	return &u, nil
}

func studentName(db *gorm.DB, id uuid.UUID) string {
	var u userModel.UserModel
	if err := db.Select("user_name").First(&u, "id = ?", id).Error; err != nil {
		return ""
	}
	return u.UserName
}

// FindOwnedSchedule fetches a schedule scoped to the caller: teachers only
// see rows they own, students only their own, admins everything. A row the
// caller may not touch reads as not found.
func FindOwnedSchedule(db *gorm.DB, scheduleID uuid.UUID, actor Actor) (*model.ClassScheduleModel, error) {
	q := db.Where("class_schedule_id = ?", scheduleID)
	switch actor.Role {
	case constants.RoleTeacher:
		q = q.Where("class_schedule_teacher_id = ?", actor.ID)
	case constants.RoleStudent:
		q = q.Where("class_schedule_user_id = ?", actor.ID)
	}

	var sched model.ClassScheduleModel
	if err := q.First(&sched).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &sched, nil
}
