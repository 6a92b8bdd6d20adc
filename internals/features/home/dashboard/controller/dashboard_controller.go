package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	notifModel "quranku_backend/internals/features/home/notifications/model"
	scheduleDto "quranku_backend/internals/features/learning/schedules/dto"
	scheduleModel "quranku_backend/internals/features/learning/schedules/model"
	resourceModel "quranku_backend/internals/features/resources/model"
	userModel "quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// 🟢 GET /api/u/dashboard
func (ctrl *DashboardController) StudentDashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var me userModel.UserModel
	if err := ctrl.DB.First(&me, "id = ?", userID).Error; err != nil {
		log.Printf("[ERROR] dashboard load user: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	var upcoming []scheduleModel.ClassScheduleModel
	if err := ctrl.DB.
		Where("class_schedule_user_id = ? AND class_schedule_status = ? AND class_schedule_date >= now()",
			userID, constants.ScheduleStatusScheduled).
		Order("class_schedule_date ASC").
		Limit(5).
		Find(&upcoming).Error; err != nil {
		log.Printf("[ERROR] dashboard upcoming: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	var unread int64
	if err := ctrl.DB.Model(&notifModel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_read = false", userID).
		Count(&unread).Error; err != nil {
		log.Printf("[ERROR] dashboard unread: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"upcoming_classes":     scheduleDto.ToClassScheduleResponseList(upcoming),
		"unread_notifications": unread,
		"completed_classes":    me.CompletedClasses,
		"plan":                 me.Plan,
		"resource_access":      me.ResourceAccess,
		"account_status":       me.AccountStatus,
	})
}

// 🟢 GET /api/t/dashboard
func (ctrl *DashboardController) TeacherDashboard(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var today []scheduleModel.ClassScheduleModel
	if err := ctrl.DB.
		Where("class_schedule_teacher_id = ? AND class_schedule_status = ?", teacherID, constants.ScheduleStatusScheduled).
		Where("class_schedule_date >= date_trunc('day', now()) AND class_schedule_date < date_trunc('day', now()) + interval '1 day'").
		Order("class_schedule_date ASC").
		Find(&today).Error; err != nil {
		log.Printf("[ERROR] dashboard today: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	var rosterSize int64
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("assigned_teacher_id = ?", teacherID).
		Count(&rosterSize).Error; err != nil {
		log.Printf("[ERROR] dashboard roster: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	// sessions already past their slot but never closed out
	var pendingActions int64
	if err := ctrl.DB.Model(&scheduleModel.ClassScheduleModel{}).
		Where("class_schedule_teacher_id = ? AND class_schedule_status = ? AND class_schedule_date < now()",
			teacherID, constants.ScheduleStatusScheduled).
		Count(&pendingActions).Error; err != nil {
		log.Printf("[ERROR] dashboard pending: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"todays_classes":  scheduleDto.ToClassScheduleResponseList(today),
		"roster_size":     rosterSize,
		"pending_actions": pendingActions,
	})
}

// 🟢 GET /api/a/dashboard
func (ctrl *DashboardController) AdminDashboard(c *fiber.Ctx) error {
	type statusCount struct {
		AccountStatus string `gorm:"column:account_status"`
		Count         int64  `gorm:"column:count"`
	}
	var counts []statusCount
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Select("account_status, count(*) AS count").
		Group("account_status").
		Scan(&counts).Error; err != nil {
		log.Printf("[ERROR] dashboard user counts: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}
	usersByStatus := fiber.Map{}
	for _, row := range counts {
		usersByStatus[row.AccountStatus] = row.Count
	}

	var schedulesToday int64
	if err := ctrl.DB.Model(&scheduleModel.ClassScheduleModel{}).
		Where("class_schedule_date >= date_trunc('day', now()) AND class_schedule_date < date_trunc('day', now()) + interval '1 day'").
		Count(&schedulesToday).Error; err != nil {
		log.Printf("[ERROR] dashboard schedules today: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	var pendingRequests int64
	if err := ctrl.DB.Model(&resourceModel.ResourceRequestModel{}).
		Where("resource_request_status = ?", constants.RequestStatusPending).
		Count(&pendingRequests).Error; err != nil {
		log.Printf("[ERROR] dashboard pending requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build dashboard")
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"users_by_status":           usersByStatus,
		"schedules_today":           schedulesToday,
		"pending_resource_requests": pendingRequests,
	})
}
