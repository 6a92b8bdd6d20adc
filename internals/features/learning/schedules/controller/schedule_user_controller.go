package controller

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/learning/schedules/dto"
	"quranku_backend/internals/features/learning/schedules/model"
	"quranku_backend/internals/features/learning/schedules/service"
	helper "quranku_backend/internals/helpers"
)

type ScheduleUserController struct {
	DB *gorm.DB
}

func NewScheduleUserController(db *gorm.DB) *ScheduleUserController {
	return &ScheduleUserController{DB: db}
}

// 🟢 GET /api/u/schedules?scope=upcoming|history
// History includes past-dated rows still marked scheduled: a date that has
// passed reads as history even before the missed sweep touches the row.
func (ctrl *ScheduleUserController) ListMySchedules(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_user_id = ?", userID)

	now := time.Now()
	switch c.Query("scope") {
	case "upcoming":
		q = q.Where("class_schedule_status = ? AND class_schedule_date >= ?",
			constants.ScheduleStatusScheduled, now)
	case "history":
		q = q.Where("class_schedule_status <> ? OR class_schedule_date < ?",
			constants.ScheduleStatusScheduled, now)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count my schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var rows []model.ClassScheduleModel
	if err := q.Order("class_schedule_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list my schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	return helper.JsonList(c, "ok", dto.ToClassScheduleResponseList(rows), helper.BuildPagination(total, paging))
}

// 🟢 PATCH /api/u/schedules/:id/complete — student self-reports completion.
// The only transition a student may perform, and only on their own record.
func (ctrl *ScheduleUserController) CompleteMySchedule(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	actor := actorFromCtx(c)
	if !service.RoleCanTarget(actor.Role, constants.ScheduleStatusCompleted) {
		return helper.JsonError(c, fiber.StatusForbidden, "Role may not set this status")
	}

	sched, err := service.FindOwnedSchedule(ctrl.DB, scheduleID, actor)
	if err != nil {
		return mapServiceError(c, err)
	}

	return applyComplete(c, ctrl.DB, sched, actor)
}
