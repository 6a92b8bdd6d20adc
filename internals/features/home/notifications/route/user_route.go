package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/home/notifications/controller"
)

func NotificationUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	notification := user.Group("/notifications")
	notification.Get("/", ctrl.GetMyNotifications)
	notification.Get("/unread", ctrl.GetUnread)
	notification.Patch("/read-all", ctrl.MarkAllAsRead)
	notification.Patch("/:id/read", ctrl.MarkAsRead)
	notification.Delete("/clear-read", ctrl.ClearRead)
}
