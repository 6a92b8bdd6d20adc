// file: internals/features/learning/classes/service/enrollment_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/learning/classes/model"
	schedService "quranku_backend/internals/features/learning/schedules/service"
	userModel "quranku_backend/internals/features/users/user/model"
	rosterService "quranku_backend/internals/features/users/user/service"
)

var (
	ErrClassNotFound   = errors.New("ClassNotFound")
	ErrAlreadyEnrolled = errors.New("AlreadyEnrolled")
	ErrClassFull       = errors.New("ClassFull")
)

// Enroll adds a student to an offering. The duplicate and capacity checks run
// inside one conditional update, so two concurrent enrollments can never
// double-book past max_students. On success the offering spawns a matching
// ClassSchedule (same room, date, duration) through the shared creation saga,
// which also repairs the roster edge and fans out notifications.
func Enroll(db *gorm.DB, studentID, classID uuid.UUID) (*model.ClassModel, error) {
	// role gate before the committed array write: a teacher or admin id must
	// never land in enrolled_student_ids, because the follow-up schedule would
	// be rejected and the stuck entry could not converge on retry
	var caller userModel.UserModel
	if err := db.Select("id", "role").First(&caller, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, rosterService.ErrUserNotFound
		}
		return nil, err
	}
	if err := checkEnrollRole(caller.Role); err != nil {
		return nil, err
	}

	sid := studentID.String()

	res := db.Exec(
		`UPDATE classes
		 SET class_enrolled_student_ids = array_append(coalesce(class_enrolled_student_ids, '{}'), ?::text),
		     class_updated_at = now()
		 WHERE class_id = ?
		   AND NOT (?::text = ANY(coalesce(class_enrolled_student_ids, '{}')))
		   AND cardinality(coalesce(class_enrolled_student_ids, '{}')) < class_max_students`,
		sid, classID, sid,
	)
	if res.Error != nil {
		return nil, res.Error
	}

	var offering model.ClassModel
	if err := db.First(&offering, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClassNotFound
		}
		return nil, err
	}

	if res.RowsAffected == 0 {
		// the update matched nothing: figure out which gate failed
		if offering.IsEnrolled(studentID) {
			return nil, ErrAlreadyEnrolled
		}
		if offering.IsFull() {
			return nil, ErrClassFull
		}
		return nil, ErrClassNotFound
	}

	// spawn the mirroring schedule; the offering's room id carries over
	teacherID := offering.ClassTeacherID
	_, err := schedService.CreateSchedule(db, schedService.CreateScheduleInput{
		StudentID:  studentID,
		TeacherID:  &teacherID,
		CourseType: offering.ClassCourseType,
		Date:       offering.ClassScheduledTime,
		Duration:   offering.ClassDuration,
		RoomID:     offering.ClassRoomID,
	}, schedService.Actor{ID: studentID, Role: constants.RoleStudent})
	if err != nil {
		return nil, err
	}

	return &offering, nil
}

// checkEnrollRole keeps non-student roles out of enrollment slots. An entry
// for a teacher or admin would occupy capacity with no schedule ever able to
// spawn for it, and a retry would only report AlreadyEnrolled.
func checkEnrollRole(role string) error {
	if role != constants.RoleStudent {
		return rosterService.ErrStudentRoleMismatch
	}
	return nil
}
