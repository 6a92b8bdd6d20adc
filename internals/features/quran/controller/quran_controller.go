package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	activityService "quranku_backend/internals/features/progress/activity_logs/service"
	"quranku_backend/internals/features/quran/service"
	helper "quranku_backend/internals/helpers"
)

type QuranController struct {
	DB *gorm.DB
}

func NewQuranController(db *gorm.DB) *QuranController {
	return &QuranController{DB: db}
}

// 🟢 GET /api/u/quran/surah/:number?edition=
func (ctrl *QuranController) GetSurah(c *fiber.Ctx) error {
	number, err := strconv.Atoi(c.Params("number"))
	if err != nil || number < 1 || number > 114 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Surah number must be between 1 and 114")
	}

	data, err := service.FetchSurah(number, c.Query("edition"))
	if err != nil {
		if errors.Is(err, service.ErrUpstream) {
			log.Printf("[ERROR] quran upstream: %v", err)
			return helper.JsonError(c, fiber.StatusBadGateway, "Quran service is unavailable, try again later")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid surah request")
	}

	if userID, err := helper.GetUserIDFromToken(c); err == nil {
		activityService.Record(ctrl.DB, userID, constants.ActivityView, "Read surah "+strconv.Itoa(number))
	}

	return helper.JsonOK(c, "ok", data)
}
