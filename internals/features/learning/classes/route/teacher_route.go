package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/learning/classes/controller"
)

func ClassTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassController(db)

	teacher.Post("/classes", ctrl.CreateClass)
	teacher.Get("/classes", ctrl.ListMyClasses)
}
