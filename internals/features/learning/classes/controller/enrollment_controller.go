package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/features/learning/classes/dto"
	"quranku_backend/internals/features/learning/classes/service"
	rosterService "quranku_backend/internals/features/users/user/service"
	helper "quranku_backend/internals/helpers"
)

type EnrollmentController struct {
	DB *gorm.DB
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{DB: db}
}

// 🟢 POST /api/u/classes/enroll/:classId
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	classID, err := uuid.Parse(c.Params("classId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	offering, err := service.Enroll(ctrl.DB, studentID, classID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClassNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		case errors.Is(err, service.ErrAlreadyEnrolled):
			return helper.JsonError(c, fiber.StatusBadRequest, "You are already enrolled in this class")
		case errors.Is(err, service.ErrClassFull):
			return helper.JsonError(c, fiber.StatusBadRequest, "Class is full")
		case errors.Is(err, rosterService.ErrStudentRoleMismatch):
			return helper.JsonError(c, fiber.StatusForbidden, "Only students can enroll in classes")
		case errors.Is(err, rosterService.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		default:
			log.Printf("[ERROR] enroll class %s: %v", classID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll")
		}
	}

	return helper.JsonCreated(c, "Enrolled", dto.ToClassResponse(offering))
}
