package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel rows are immutable after insert except for the read flag;
// removal only happens through the bulk clear-read operation.
type NotificationModel struct {
	NotificationID        uuid.UUID      `gorm:"column:notification_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID    uuid.UUID      `gorm:"column:notification_user_id;type:uuid;not null;index" json:"notification_user_id"`
	NotificationType      string         `gorm:"column:notification_type;type:varchar(40);not null" json:"notification_type"`
	NotificationTitle     string         `gorm:"column:notification_title;type:varchar(255);not null" json:"notification_title"`
	NotificationMessage   string         `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationMetadata  datatypes.JSON `gorm:"column:notification_metadata;type:jsonb" json:"notification_metadata,omitempty"`
	NotificationRead      bool           `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
