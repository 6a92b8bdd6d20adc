package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/learning/schedules/controller"
)

func ScheduleTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleTeacherController(db)

	teacher.Post("/schedule-class", ctrl.ScheduleClass)
	teacher.Get("/schedules", ctrl.ListMySchedules)
	teacher.Patch("/classes/:id/:action", ctrl.ClassAction)
}
