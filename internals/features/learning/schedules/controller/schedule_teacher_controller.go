package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/learning/schedules/dto"
	"quranku_backend/internals/features/learning/schedules/model"
	"quranku_backend/internals/features/learning/schedules/service"
	helper "quranku_backend/internals/helpers"
)

type ScheduleTeacherController struct {
	DB *gorm.DB
}

func NewScheduleTeacherController(db *gorm.DB) *ScheduleTeacherController {
	return &ScheduleTeacherController{DB: db}
}

// 🟢 POST /api/t/schedule-class — teacher schedules for their own student
func (ctrl *ScheduleTeacherController) ScheduleClass(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "scheduled_date must be RFC3339")
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student_id")
	}

	actor := actorFromCtx(c)
	// the acting teacher always owns the resulting schedule
	teacherID := actor.ID

	sched, err := service.CreateSchedule(ctrl.DB, service.CreateScheduleInput{
		StudentID:  studentID,
		TeacherID:  &teacherID,
		CourseType: req.CourseType,
		Date:       date,
		Duration:   req.Duration,
		Notes:      req.Notes,
	}, actor)
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonCreated(c, "Class scheduled", dto.ToClassScheduleResponse(sched))
}

// 🟢 PATCH /api/t/classes/:id/:action  (action: status | cancel | reschedule)
// Scoped to schedules the teacher owns; anything else reads as 404.
func (ctrl *ScheduleTeacherController) ClassAction(c *fiber.Ctx) error {
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid schedule id")
	}

	actor := actorFromCtx(c)
	sched, err := service.FindOwnedSchedule(ctrl.DB, scheduleID, actor)
	if err != nil {
		return mapServiceError(c, err)
	}

	switch c.Params("action") {
	case "status":
		return ctrl.applyStatus(c, sched, actor)
	case "cancel":
		return applyCancel(c, ctrl.DB, sched, actor)
	case "reschedule":
		return applyReschedule(c, ctrl.DB, sched, actor)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid action")
	}
}

func (ctrl *ScheduleTeacherController) applyStatus(c *fiber.Ctx, sched *model.ClassScheduleModel, actor service.Actor) error {
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if !service.RoleCanTarget(actor.Role, req.Status) {
		return helper.JsonError(c, fiber.StatusForbidden, "Role may not set this status")
	}

	switch req.Status {
	case constants.ScheduleStatusCompleted:
		return applyComplete(c, ctrl.DB, sched, actor)
	case constants.ScheduleStatusCancelled:
		if err := service.Cancel(ctrl.DB, sched, req.Reason, actor); err != nil {
			return mapServiceError(c, err)
		}
	case constants.ScheduleStatusMissed:
		if err := service.MarkMissed(ctrl.DB, sched); err != nil {
			return mapServiceError(c, err)
		}
	}
	return helper.JsonUpdated(c, "Schedule status updated", dto.ToClassScheduleResponse(sched))
}

// 🟢 GET /api/t/schedules — the teacher's own schedule list
func (ctrl *ScheduleTeacherController) ListMySchedules(c *fiber.Ctx) error {
	actor := actorFromCtx(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_teacher_id = ?", actor.ID)
	if status := c.Query("status"); status != "" {
		q = q.Where("class_schedule_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count teacher schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var rows []model.ClassScheduleModel
	if err := q.Order("class_schedule_date ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list teacher schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	return helper.JsonList(c, "ok", dto.ToClassScheduleResponseList(rows), helper.BuildPagination(total, paging))
}
