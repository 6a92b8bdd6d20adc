package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/features/home/notifications/dto"
	"quranku_backend/internals/features/home/notifications/model"
	helper "quranku_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// 🟢 GET /api/u/notifications (+ pagination)
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ?", userID).
		Count(&total).Error; err != nil {
		log.Printf("[ERROR] count notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ?", userID).
		Order("notification_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] list notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return helper.JsonList(c, "ok", dto.ToNotificationResponseList(notifs), helper.BuildPagination(total, paging))
}

// 🟢 GET /api/u/notifications/unread
func (ctrl *NotificationController) GetUnread(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var notifs []model.NotificationModel
	if err := ctrl.DB.
		Where("notification_user_id = ? AND notification_read = false", userID).
		Order("notification_created_at DESC").
		Find(&notifs).Error; err != nil {
		log.Printf("[ERROR] unread notifications: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch notifications")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"count": len(notifs),
		"items": dto.ToNotificationResponseList(notifs),
	})
}

// 🟢 PATCH /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	notifID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
		Update("notification_read", true)
	if res.Error != nil {
		log.Printf("[ERROR] mark read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notification")
	}
	if res.RowsAffected == 0 {
		// either absent or not the caller's record; both are a 404
		if err := ctrl.DB.Where("notification_id = ? AND notification_user_id = ?", notifID, userID).
			First(&model.NotificationModel{}).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
	}

	return helper.JsonUpdated(c, "Notification marked as read", nil)
}

// 🟢 PATCH /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllAsRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = false", userID).
		Update("notification_read", true)
	if res.Error != nil {
		log.Printf("[ERROR] mark all read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update notifications")
	}

	return helper.JsonUpdated(c, "All notifications marked as read", fiber.Map{"updated": res.RowsAffected})
}

// 🟢 DELETE /api/u/notifications/clear-read
// Bulk removal of already-read records; unread rows are never deleted.
func (ctrl *NotificationController) ClearRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	res := ctrl.DB.
		Where("notification_user_id = ? AND notification_read = true", userID).
		Delete(&model.NotificationModel{})
	if res.Error != nil {
		log.Printf("[ERROR] clear read: %v", res.Error)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clear notifications")
	}

	return helper.JsonDeleted(c, "Read notifications cleared", fiber.Map{"deleted": res.RowsAffected})
}
