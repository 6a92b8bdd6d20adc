// file: internals/features/users/user/service/roster_service.go
package service

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/users/user/model"
)

var (
	ErrStudentRoleMismatch = errors.New("StudentRoleMismatch")
	ErrTeacherRoleMismatch = errors.New("TeacherRoleMismatch")
	ErrUserNotFound        = errors.New("UserNotFound")
)

// AttachTeacherStudent repairs the denormalized teacher↔student edge on both
// sides. Both users are role-validated first, then each side is written as a
// single conditional statement, so a repeated or resumed call converges to
// the same end state instead of duplicating entries. Every schedule-creation
// path and the explicit assign-teacher action go through here.
func AttachTeacherStudent(db *gorm.DB, studentID, teacherID uuid.UUID) error {
	var student model.UserModel
	if err := db.Select("id", "role", "assigned_teacher_id").
		First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if student.Role != constants.RoleStudent {
		return ErrStudentRoleMismatch
	}

	var teacher model.UserModel
	if err := db.Select("id", "role").First(&teacher, "id = ?", teacherID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if teacher.Role != constants.RoleTeacher {
		return ErrTeacherRoleMismatch
	}

	// detach from a previous teacher's roster if the student is moving
	if old := student.AssignedTeacherID; old != nil && *old != teacherID {
		if err := db.Exec(
			`UPDATE users
			 SET assigned_student_ids = array_remove(coalesce(assigned_student_ids, '{}'), ?::text)
			 WHERE id = ?`,
			studentID.String(), *old,
		).Error; err != nil {
			log.Printf("[ERROR] roster: detach student %s from teacher %s: %v", studentID, *old, err)
			return err
		}
	}

	// student side: set only when it differs (no-op on retry)
	if err := db.Exec(
		`UPDATE users
		 SET assigned_teacher_id = ?
		 WHERE id = ? AND assigned_teacher_id IS DISTINCT FROM ?`,
		teacherID, studentID, teacherID,
	).Error; err != nil {
		return err
	}

	// teacher side: append only if absent
	if err := db.Exec(
		`UPDATE users
		 SET assigned_student_ids = array_append(coalesce(assigned_student_ids, '{}'), ?::text)
		 WHERE id = ? AND NOT (?::text = ANY(coalesce(assigned_student_ids, '{}')))`,
		studentID.String(), teacherID, studentID.String(),
	).Error; err != nil {
		return err
	}

	return nil
}
