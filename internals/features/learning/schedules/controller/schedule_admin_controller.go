package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/learning/schedules/dto"
	"quranku_backend/internals/features/learning/schedules/model"
	"quranku_backend/internals/features/learning/schedules/service"
	rosterService "quranku_backend/internals/features/users/user/service"
	helper "quranku_backend/internals/helpers"
	helperAuth "quranku_backend/internals/helpers/auth"
)

type ScheduleAdminController struct {
	DB *gorm.DB
}

func NewScheduleAdminController(db *gorm.DB) *ScheduleAdminController {
	return &ScheduleAdminController{DB: db}
}

func actorFromCtx(c *fiber.Ctx) service.Actor {
	caller := helperAuth.CallerFromLocals(c)
	return service.Actor{ID: caller.ID, Name: caller.Name, Role: caller.Role}
}

// mapServiceError translates the shared service sentinels. Retried
// completions are handled earlier in applyComplete; anything reaching the
// ErrAlreadyInState arm here is a genuine conflict.
func mapServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
	case errors.Is(err, rosterService.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusBadRequest, "User not found")
	case errors.Is(err, rosterService.ErrStudentRoleMismatch):
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id does not belong to a student")
	case errors.Is(err, rosterService.ErrTeacherRoleMismatch):
		return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id does not belong to a teacher")
	case errors.Is(err, service.ErrAlreadyInState), errors.Is(err, service.ErrInvalidTransition):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	default:
		log.Printf("[ERROR] schedule action: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}

// 🟢 POST /api/a/schedule-class
func (ctrl *ScheduleAdminController) ScheduleClass(c *fiber.Ctx) error {
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

	in := service.CreateScheduleInput{
		StudentID:  studentID,
		CourseType: req.CourseType,
		Date:       date,
		Duration:   req.Duration,
		Notes:      req.Notes,
	}
	if req.TeacherID != "" {
		tid, err := uuid.Parse(req.TeacherID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid teacher_id")
		}
		in.TeacherID = &tid
	}

	sched, err := service.CreateSchedule(ctrl.DB, in, actorFromCtx(c))
	if err != nil {
		return mapServiceError(c, err)
	}

	return helper.JsonCreated(c, "Class scheduled", dto.ToClassScheduleResponse(sched))
}

// 🟢 PATCH /api/a/classes/:id/:action  (action: cancel | reschedule)
func (ctrl *ScheduleAdminController) ClassAction(c *fiber.Ctx) error {
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
	case "cancel":
		return applyCancel(c, ctrl.DB, sched, actor)
	case "reschedule":
		return applyReschedule(c, ctrl.DB, sched, actor)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid action")
	}
}

// 🟢 GET /api/a/schedules (+ filters & pagination)
func (ctrl *ScheduleAdminController) ListSchedules(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClassScheduleModel{})
	if status := c.Query("status"); status != "" {
		q = q.Where("class_schedule_status = ?", status)
	}
	if course := c.Query("course_type"); course != "" {
		if !constants.IsValidCourseType(course) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_type")
		}
		q = q.Where("class_schedule_course_type = ?", course)
	}
	if studentID := c.Query("student_id"); studentID != "" {
		q = q.Where("class_schedule_user_id = ?", studentID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count schedules")
	}

	var rows []model.ClassScheduleModel
	if err := q.Order("class_schedule_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list schedules: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch schedules")
	}

	return helper.JsonList(c, "ok", dto.ToClassScheduleResponseList(rows), helper.BuildPagination(total, paging))
}

/* ==========================
   Shared action appliers
========================== */

func applyCancel(c *fiber.Ctx, db *gorm.DB, sched *model.ClassScheduleModel, actor service.Actor) error {
	var req dto.CancelScheduleRequest
	_ = c.BodyParser(&req) // reason is optional, empty body is fine

	if err := service.Cancel(db, sched, req.Reason, actor); err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Class cancelled", dto.ToClassScheduleResponse(sched))
}

func applyReschedule(c *fiber.Ctx, db *gorm.DB, sched *model.ClassScheduleModel, actor service.Actor) error {
	var req dto.RescheduleRequest
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

	if err := service.Reschedule(db, sched, date, req.Duration, actor); err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Class rescheduled", dto.ToClassScheduleResponse(sched))
}

func applyComplete(c *fiber.Ctx, db *gorm.DB, sched *model.ClassScheduleModel, actor service.Actor) error {
	err := service.Complete(db, sched, actor)
	if errors.Is(err, service.ErrAlreadyInState) {
		// retried completion is a no-op, the counter is not re-incremented
		return helper.JsonOK(c, "Class already completed", dto.ToClassScheduleResponse(sched))
	}
	if err != nil {
		return mapServiceError(c, err)
	}
	return helper.JsonUpdated(c, "Class completed", dto.ToClassScheduleResponse(sched))
}
