package dto

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"quranku_backend/internals/features/home/notifications/model"
)

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID       uuid.UUID      `json:"notification_id"`
	NotificationType     string         `json:"notification_type"`
	NotificationTitle    string         `json:"notification_title"`
	NotificationMessage  string         `json:"notification_message"`
	NotificationMetadata datatypes.JSON `json:"notification_metadata,omitempty"`
	NotificationRead     bool           `json:"notification_read"`
	NotificationCreated  string         `json:"notification_created_at"`
}

// ================ CONVERSION =================
func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID:       m.NotificationID,
		NotificationType:     m.NotificationType,
		NotificationTitle:    m.NotificationTitle,
		NotificationMessage:  m.NotificationMessage,
		NotificationMetadata: m.NotificationMetadata,
		NotificationRead:     m.NotificationRead,
		NotificationCreated:  m.NotificationCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	var result []NotificationResponse
	for _, m := range models {
		result = append(result, *ToNotificationResponse(&m))
	}
	return result
}
