package dto

import (
	"time"

	"github.com/google/uuid"

	"quranku_backend/internals/features/learning/classes/model"
)

// ================== REQUESTS ==================

type CreateClassRequest struct {
	Name          string `json:"class_name" validate:"required,min=3,max=120"`
	CourseType    string `json:"course_type" validate:"required,oneof=Nazra Tajweed Hifz Translation Tafseer"`
	Description   string `json:"description"`
	ScheduledTime string `json:"scheduled_time" validate:"required"` // RFC3339
	Duration      int    `json:"duration" validate:"omitempty,gt=0"`
	MaxStudents   int    `json:"max_students" validate:"omitempty,gt=0"`
}

func ParseTime(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, raw)
}

// ================== RESPONSE ==================

type ClassResponse struct {
	ClassID       uuid.UUID `json:"class_id"`
	TeacherID     uuid.UUID `json:"teacher_id"`
	Name          string    `json:"class_name"`
	CourseType    string    `json:"course_type"`
	Description   string    `json:"description,omitempty"`
	ScheduledTime time.Time `json:"scheduled_time"`
	Duration      int       `json:"duration"`
	MaxStudents   int       `json:"max_students"`
	EnrolledCount int       `json:"enrolled_count"`
	RoomID        string    `json:"room_id"`
	CreatedAt     string    `json:"created_at"`
}

// ================ CONVERSION =================

func ToClassResponse(m *model.ClassModel) *ClassResponse {
	return &ClassResponse{
		ClassID:       m.ClassID,
		TeacherID:     m.ClassTeacherID,
		Name:          m.ClassName,
		CourseType:    m.ClassCourseType,
		Description:   m.ClassDescription,
		ScheduledTime: m.ClassScheduledTime,
		Duration:      m.ClassDuration,
		MaxStudents:   m.ClassMaxStudents,
		EnrolledCount: len(m.ClassEnrolledStudentIDs),
		RoomID:        m.ClassRoomID,
		CreatedAt:     m.ClassCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToClassResponseList(models []model.ClassModel) []ClassResponse {
	var result []ClassResponse
	for _, m := range models {
		result = append(result, *ToClassResponse(&m))
	}
	return result
}
