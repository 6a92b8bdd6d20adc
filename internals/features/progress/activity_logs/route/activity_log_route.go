package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/progress/activity_logs/controller"
)

func ActivityLogUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewActivityLogController(db)
	user.Get("/activity-logs", ctrl.GetMyLogs)
}

func ActivityLogAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewActivityLogController(db)
	admin.Get("/activity-logs/:userId", ctrl.GetLogsByUser)
}
