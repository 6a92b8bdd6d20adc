package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	activityService "quranku_backend/internals/features/progress/activity_logs/service"
	"quranku_backend/internals/features/users/user/dto"
	"quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"
)

type UserTeacherController struct {
	DB *gorm.DB
}

func NewUserTeacherController(db *gorm.DB) *UserTeacherController {
	return &UserTeacherController{DB: db}
}

type ProgressNoteRequest struct {
	Note string `json:"note" validate:"required,min=3,max=1000"`
}

// 🟢 GET /api/t/students — the teacher's assigned roster
func (ctrl *UserTeacherController) ListMyStudents(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.UserModel
	if err := ctrl.DB.Where("assigned_teacher_id = ?", teacherID).
		Order("user_name ASC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list students: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.JsonOK(c, "ok", dto.ToUserResponseList(rows))
}

// 🟢 POST /api/t/students/:id/progress-note — note lands on the student's
// activity log, so the student and admins read it there.
func (ctrl *UserTeacherController) AddProgressNote(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var req ProgressNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	var student model.UserModel
	if err := ctrl.DB.Select("id", "user_name", "assigned_teacher_id").
		First(&student, "id = ?", studentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		log.Printf("[ERROR] load student %s: %v", studentID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if student.AssignedTeacherID == nil || *student.AssignedTeacherID != teacherID {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	teacherName := helper.GetUserName(c)
	activityService.Record(ctrl.DB, studentID, constants.ActivityProgressNote,
		"Progress note from "+teacherName+": "+req.Note)

	return helper.JsonCreated(c, "Progress note recorded", fiber.Map{
		"student_id": studentID,
		"note":       req.Note,
	})
}
