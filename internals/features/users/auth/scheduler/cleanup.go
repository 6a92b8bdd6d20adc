// file: internals/features/users/auth/scheduler/cleanup.go
package scheduler

import (
	"log"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"quranku_backend/internals/configs"
	"quranku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler purges blacklisted access tokens that have
// been expired longer than the TTL. Rows still inside the TTL stay, the
// auth middleware needs them to reject replayed tokens.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	ttlDays := 7
	if val := configs.GetEnv("TOKEN_BLACKLIST_TTL_DAYS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			ttlDays = parsed
		}
	}
	spec := configs.GetEnv("BLACKLIST_CLEANUP_CRON", "30 2 * * *") // daily, off-peak

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		deleteBefore := time.Now().Add(-time.Duration(ttlDays) * 24 * time.Hour)

		res := db.Unscoped().
			Where("expired_at < ?", deleteBefore).
			Delete(&model.TokenBlacklist{})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] token_blacklist purge: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[CLEANUP] %d expired blacklist token(s) removed", res.RowsAffected)
		}

		// expired or revoked refresh sessions go with them
		if err := db.
			Where("expires_at < now() OR revoked_at IS NOT NULL").
			Delete(&model.RefreshToken{}).Error; err != nil {
			log.Printf("[CLEANUP ERROR] refresh_tokens purge: %v", err)
		}
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] invalid cron spec %q: %v", spec, err)
		return
	}
	c.Start()
	log.Printf("[CLEANUP] token blacklist cleanup running (spec %q)", spec)
}
