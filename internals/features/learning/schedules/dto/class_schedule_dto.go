package dto

import (
	"time"

	"github.com/google/uuid"

	"quranku_backend/internals/features/learning/schedules/model"
)

// ================== REQUESTS ==================

type CreateScheduleRequest struct {
	StudentID  string `json:"student_id" validate:"required,uuid"`
	TeacherID  string `json:"teacher_id" validate:"omitempty,uuid"`
	CourseType string `json:"course_type" validate:"required,oneof=Nazra Tajweed Hifz Translation Tafseer"`
	Date       string `json:"scheduled_date" validate:"required"` // RFC3339
	Duration   int    `json:"duration" validate:"omitempty,gt=0"`
	Notes      string `json:"notes"`
}

type CancelScheduleRequest struct {
	Reason string `json:"reason"` // optional
}

type RescheduleRequest struct {
	Date     string `json:"scheduled_date" validate:"required"` // RFC3339
	Duration int    `json:"duration" validate:"omitempty,gt=0"`
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=completed cancelled missed"`
	Reason string `json:"reason"` // cancellation only
}

// ParseDate parses the RFC3339 schedule date from a request.
func ParseDate(raw string) (time.Time, error) {
	return time.Parse(time.RFC3339, raw)
}

// ================== RESPONSE ==================

type ClassScheduleResponse struct {
	ClassScheduleID uuid.UUID  `json:"class_schedule_id"`
	StudentID       uuid.UUID  `json:"student_id"`
	TeacherID       *uuid.UUID `json:"teacher_id,omitempty"`
	CourseType      string     `json:"course_type"`
	ScheduledDate   time.Time  `json:"scheduled_date"`
	Duration        int        `json:"duration"`
	Status          string     `json:"status"`
	RoomID          string     `json:"room_id"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       string     `json:"created_at"`
}

// ================ CONVERSION =================

func ToClassScheduleResponse(m *model.ClassScheduleModel) *ClassScheduleResponse {
	return &ClassScheduleResponse{
		ClassScheduleID: m.ClassScheduleID,
		StudentID:       m.ClassScheduleUserID,
		TeacherID:       m.ClassScheduleTeacherID,
		CourseType:      m.ClassScheduleCourseType,
		ScheduledDate:   m.ClassScheduleDate,
		Duration:        m.ClassScheduleDuration,
		Status:          m.ClassScheduleStatus,
		RoomID:          m.ClassScheduleRoomID,
		Notes:           m.ClassScheduleNotes,
		CreatedAt:       m.ClassScheduleCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToClassScheduleResponseList(models []model.ClassScheduleModel) []ClassScheduleResponse {
	var result []ClassScheduleResponse
	for _, m := range models {
		result = append(result, *ToClassScheduleResponse(&m))
	}
	return result
}
