package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ClassModel is a teacher-owned course offering. Enrolled students are
// denormalized onto the row so capacity and duplicate checks can run as one
// conditional update server-side.
type ClassModel struct {
	ClassID        uuid.UUID `gorm:"column:class_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"class_id"`
	ClassTeacherID uuid.UUID `gorm:"column:class_teacher_id;type:uuid;not null;index" json:"class_teacher_id"`

	ClassName        string `gorm:"column:class_name;size:120;not null" json:"class_name"`
	ClassCourseType  string `gorm:"column:class_course_type;type:varchar(20);not null" json:"class_course_type"`
	ClassDescription string `gorm:"column:class_description;type:text" json:"class_description"`

	ClassScheduledTime time.Time `gorm:"column:class_scheduled_time;type:timestamptz;not null" json:"class_scheduled_time"`
	ClassDuration      int       `gorm:"column:class_duration;not null;default:60" json:"class_duration"`

	ClassMaxStudents        int            `gorm:"column:class_max_students;not null;default:10" json:"class_max_students"`
	ClassEnrolledStudentIDs pq.StringArray `gorm:"column:class_enrolled_student_ids;type:text[]" json:"class_enrolled_student_ids"`

	// shared with every ClassSchedule row this offering spawns
	ClassRoomID string `gorm:"column:class_room_id;type:varchar(64);not null;uniqueIndex" json:"class_room_id"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"class_updated_at"`
}

func (ClassModel) TableName() string {
	return "classes"
}

func (m *ClassModel) IsEnrolled(studentID uuid.UUID) bool {
	sid := studentID.String()
	for _, s := range m.ClassEnrolledStudentIDs {
		if s == sid {
			return true
		}
	}
	return false
}

func (m *ClassModel) IsFull() bool {
	return len(m.ClassEnrolledStudentIDs) >= m.ClassMaxStudents
}
