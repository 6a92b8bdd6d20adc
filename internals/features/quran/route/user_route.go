package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/quran/controller"
)

func QuranUserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewQuranController(db)

	user.Get("/quran/surah/:number", ctrl.GetSurah)
}
