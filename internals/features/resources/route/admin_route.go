package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/resources/controller"
)

func ResourceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceAdminController(db)

	admin.Get("/resource-requests", ctrl.ListRequests)
	admin.Patch("/resource-requests/:id/:action", ctrl.DecideRequest)
}
