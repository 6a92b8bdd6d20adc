package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/learning/schedules/controller"
)

func ScheduleUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleUserController(db)

	schedules := user.Group("/schedules")
	schedules.Get("/", ctrl.ListMySchedules)
	schedules.Patch("/:id/complete", ctrl.CompleteMySchedule)
}
