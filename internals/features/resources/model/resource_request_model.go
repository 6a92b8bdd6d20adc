package model

import (
	"time"

	"github.com/google/uuid"
)

// A request is a one-shot approval ticket. Once reviewed it never goes back
// to pending; a fresh request means a fresh row.
type ResourceRequestModel struct {
	ResourceRequestID        uuid.UUID  `gorm:"column:resource_request_id;type:uuid;default:gen_random_uuid();primaryKey" json:"resource_request_id"`
	ResourceRequestUserID    uuid.UUID  `gorm:"column:resource_request_user_id;type:uuid;not null;index" json:"resource_request_user_id"`
	ResourceRequestStatus    string     `gorm:"column:resource_request_status;type:varchar(20);not null;default:'pending';index" json:"resource_request_status"`
	ResourceRequestMessage   string     `gorm:"column:resource_request_message;type:text" json:"resource_request_message"`
	ResourceRequestReviewedBy *uuid.UUID `gorm:"column:resource_request_reviewed_by;type:uuid" json:"resource_request_reviewed_by,omitempty"`
	ResourceRequestReviewedAt *time.Time `gorm:"column:resource_request_reviewed_at" json:"resource_request_reviewed_at,omitempty"`
	ResourceRequestCreatedAt time.Time  `gorm:"column:resource_request_created_at;autoCreateTime" json:"resource_request_created_at"`
}

func (ResourceRequestModel) TableName() string {
	return "resource_requests"
}
