package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/learning/schedules/controller"
)

func ScheduleAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleAdminController(db)

	admin.Post("/schedule-class", ctrl.ScheduleClass)
	admin.Get("/schedules", ctrl.ListSchedules)
	admin.Patch("/classes/:id/:action", ctrl.ClassAction)
}
