package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/home/dashboard/controller"
)

func DashboardUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)
	user.Get("/dashboard", ctrl.StudentDashboard)
}

func DashboardTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)
	teacher.Get("/dashboard", ctrl.TeacherDashboard)
}

func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDashboardController(db)
	admin.Get("/dashboard", ctrl.AdminDashboard)
}
