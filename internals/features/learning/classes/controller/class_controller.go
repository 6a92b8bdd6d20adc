package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/learning/classes/dto"
	"quranku_backend/internals/features/learning/classes/model"
	schedModel "quranku_backend/internals/features/learning/schedules/model"
	helper "quranku_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// 🟢 POST /api/t/classes — teacher creates an offering
func (ctrl *ClassController) CreateClass(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	scheduledTime, err := dto.ParseTime(req.ScheduledTime)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "scheduled_time must be RFC3339")
	}

	offering := model.ClassModel{
		ClassTeacherID:     teacherID,
		ClassName:          req.Name,
		ClassCourseType:    req.CourseType,
		ClassDescription:   req.Description,
		ClassScheduledTime: scheduledTime,
		ClassDuration:      req.Duration,
		ClassMaxStudents:   req.MaxStudents,
		ClassRoomID:        schedModel.NewRoomID(),
	}
	if offering.ClassDuration <= 0 {
		offering.ClassDuration = 60
	}
	if offering.ClassMaxStudents <= 0 {
		offering.ClassMaxStudents = 10
	}

	if err := ctrl.DB.Create(&offering).Error; err != nil {
		log.Printf("[ERROR] create class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	return helper.JsonCreated(c, "Class created", dto.ToClassResponse(&offering))
}

// 🟢 GET /api/t/classes — teacher's own offerings
func (ctrl *ClassController) ListMyClasses(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.ClassModel
	if err := ctrl.DB.Where("class_teacher_id = ?", teacherID).
		Order("class_scheduled_time ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list teacher classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return helper.JsonOK(c, "ok", dto.ToClassResponseList(rows))
}

// 🟢 GET /api/u/classes — offerings open for enrollment
func (ctrl *ClassController) ListOpenClasses(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ClassModel{}).
		Where("class_scheduled_time >= now()")
	if course := c.Query("course_type"); course != "" {
		if !constants.IsValidCourseType(course) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course_type")
		}
		q = q.Where("class_course_type = ?", course)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count open classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var rows []model.ClassModel
	if err := q.Order("class_scheduled_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list open classes: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return helper.JsonList(c, "ok", dto.ToClassResponseList(rows), helper.BuildPagination(total, paging))
}

// 🟢 GET /api/u/classes/:id
func (ctrl *ClassController) GetClass(c *fiber.Ctx) error {
	classID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var offering model.ClassModel
	if err := ctrl.DB.First(&offering, "class_id = ?", classID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		log.Printf("[ERROR] get class: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch class")
	}

	return helper.JsonOK(c, "ok", dto.ToClassResponse(&offering))
}
