package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassScheduleModel is one scheduled learning session. Rows are never
// deleted; history is retained across cancellations and reschedules.
type ClassScheduleModel struct {
	ClassScheduleID        uuid.UUID  `gorm:"column:class_schedule_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"class_schedule_id"`
	ClassScheduleUserID    uuid.UUID  `gorm:"column:class_schedule_user_id;type:uuid;not null;index" json:"class_schedule_user_id"`
	ClassScheduleTeacherID *uuid.UUID `gorm:"column:class_schedule_teacher_id;type:uuid;index" json:"class_schedule_teacher_id,omitempty"`

	ClassScheduleCourseType string    `gorm:"column:class_schedule_course_type;type:varchar(20);not null" json:"class_schedule_course_type"`
	ClassScheduleDate       time.Time `gorm:"column:class_schedule_date;type:timestamptz;not null" json:"class_schedule_date"`
	ClassScheduleDuration   int       `gorm:"column:class_schedule_duration;not null;default:60" json:"class_schedule_duration"`

	ClassScheduleStatus string `gorm:"column:class_schedule_status;type:varchar(20);not null;default:'scheduled'" json:"class_schedule_status"`

	// opaque session token, preserved across reschedules; schedules spawned by
	// one class offering share the offering's token
	ClassScheduleRoomID string `gorm:"column:class_schedule_room_id;type:varchar(64);not null;index" json:"class_schedule_room_id"`

	// appended-to on cancellation, never overwritten
	ClassScheduleNotes string `gorm:"column:class_schedule_notes;type:text" json:"class_schedule_notes"`

	ClassScheduleCreatedAt time.Time `gorm:"column:class_schedule_created_at;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `gorm:"column:class_schedule_updated_at;autoUpdateTime" json:"class_schedule_updated_at"`
}

func (ClassScheduleModel) TableName() string {
	return "class_schedules"
}

// NewRoomID mints the opaque session token shared between a schedule row and
// the external real-time session.
func NewRoomID() string {
	return "room-" + uuid.NewString()
}
