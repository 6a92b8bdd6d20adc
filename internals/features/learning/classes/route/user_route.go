package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/learning/classes/controller"
)

func ClassUserRoutes(user fiber.Router, db *gorm.DB) {
	classCtrl := controller.NewClassController(db)
	enrollCtrl := controller.NewEnrollmentController(db)

	user.Get("/classes", classCtrl.ListOpenClasses)
	user.Get("/classes/:id", classCtrl.GetClass)
	user.Post("/classes/enroll/:classId", enrollCtrl.Enroll)
}
