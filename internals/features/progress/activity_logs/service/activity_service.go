// file: internals/features/progress/activity_logs/service/activity_service.go
package service

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/features/progress/activity_logs/model"
)

// Record appends one activity event. Append failures are logged, never
// propagated: an audit miss must not fail the action that produced it.
func Record(db *gorm.DB, userID uuid.UUID, action, detail string) {
	entry := model.ActivityLogModel{
		ActivityLogUserID: userID,
		ActivityLogAction: action,
		ActivityLogDetail: detail,
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] activity log: action=%s user=%s: %v", action, userID, err)
	}
}
