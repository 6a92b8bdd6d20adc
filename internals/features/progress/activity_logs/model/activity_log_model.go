package model

import (
	"time"

	"github.com/google/uuid"
)

// ActivityLogModel is append-only: rows are never mutated or individually
// deleted.
type ActivityLogModel struct {
	ActivityLogID        uuid.UUID `gorm:"column:activity_log_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"activity_log_id"`
	ActivityLogUserID    uuid.UUID `gorm:"column:activity_log_user_id;type:uuid;not null;index" json:"activity_log_user_id"`
	ActivityLogAction    string    `gorm:"column:activity_log_action;type:varchar(30);not null" json:"activity_log_action"`
	ActivityLogDetail    string    `gorm:"column:activity_log_detail;type:text" json:"activity_log_detail"`
	ActivityLogCreatedAt time.Time `gorm:"column:activity_log_created_at;autoCreateTime" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
