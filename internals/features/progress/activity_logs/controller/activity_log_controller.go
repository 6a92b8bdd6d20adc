package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/features/progress/activity_logs/model"
	helper "quranku_backend/internals/helpers"
)

type ActivityLogController struct {
	DB *gorm.DB
}

func NewActivityLogController(db *gorm.DB) *ActivityLogController {
	return &ActivityLogController{DB: db}
}

// 🟢 GET /api/u/activity-logs — caller's own history
func (ctrl *ActivityLogController) GetMyLogs(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	return ctrl.listFor(c, userID)
}

// 🟢 GET /api/a/activity-logs/:userId — admin view per student
func (ctrl *ActivityLogController) GetLogsByUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	return ctrl.listFor(c, userID)
}

func (ctrl *ActivityLogController) listFor(c *fiber.Ctx, userID uuid.UUID) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.ActivityLogModel{}).
		Where("activity_log_user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] count activity logs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count logs")
	}

	var logs []model.ActivityLogModel
	if err := ctrl.DB.
		Where("activity_log_user_id = ?", userID).
		Order("activity_log_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&logs).Error; err != nil {
		log.Printf("[ERROR] list activity logs: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch logs")
	}

	return helper.JsonList(c, "ok", logs, helper.BuildPagination(total, paging))
}
