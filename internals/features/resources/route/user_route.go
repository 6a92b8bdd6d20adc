package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/resources/controller"
)

func ResourceUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceUserController(db)

	user.Post("/resources/request", ctrl.RequestAccess)
	user.Get("/resources/requests", ctrl.ListMyRequests)
	user.Get("/resources/materials", ctrl.ListMaterials)
}
