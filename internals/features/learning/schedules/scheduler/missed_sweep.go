// file: internals/features/learning/schedules/scheduler/missed_sweep.go
package scheduler

import (
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"quranku_backend/internals/configs"
	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/learning/schedules/model"
)

// StartMissedClassSweep periodically marks past-due scheduled classes as
// missed. The sweep is a single conditional update, so overlapping runs and
// concurrent transitions converge: a row someone completed or cancelled in
// the meantime no longer matches.
func StartMissedClassSweep(db *gorm.DB) {
	spec := configs.GetEnv("MISSED_SWEEP_CRON", "0 * * * *") // hourly

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		res := db.Model(&model.ClassScheduleModel{}).
			Where("class_schedule_status = ?", constants.ScheduleStatusScheduled).
			Where("class_schedule_date + (class_schedule_duration || ' minutes')::interval < now()").
			Update("class_schedule_status", constants.ScheduleStatusMissed)
		if res.Error != nil {
			log.Printf("[SWEEP ERROR] missed-class sweep: %v", res.Error)
			return
		}
		if res.RowsAffected > 0 {
			log.Printf("[SWEEP] %d class(es) marked as missed", res.RowsAffected)
		}
	})
	if err != nil {
		log.Printf("[SWEEP ERROR] invalid cron spec %q: %v", spec, err)
		return
	}
	c.Start()
	log.Printf("[SWEEP] missed-class sweep running (spec %q)", spec)
}
