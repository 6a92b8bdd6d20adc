package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/users/user/dto"
	"quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// 🟢 GET /api/u/me
func (ctrl *UserController) GetMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("[ERROR] load profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.JsonOK(c, "ok", dto.ToUserResponse(&user))
}

// 🟢 PUT /api/u/me — only the display name is self-serve; role, status and
// roster edges move through admin endpoints.
func (ctrl *UserController) UpdateMe(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}
	if req.UserName == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nothing to update")
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("user_name", req.UserName).Error; err != nil {
		log.Printf("[ERROR] update profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("[ERROR] reload profile: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch profile")
	}

	return helper.JsonUpdated(c, "Profile updated", dto.ToUserResponse(&user))
}

// 🟢 GET /api/u/my-teacher — the student's assigned teacher, if any
func (ctrl *UserController) GetMyTeacher(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var me model.UserModel
	if err := ctrl.DB.Select("id", "assigned_teacher_id").First(&me, "id = ?", userID).Error; err != nil {
		log.Printf("[ERROR] load student: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}
	if me.AssignedTeacherID == nil {
		return helper.JsonOK(c, "No teacher assigned yet", nil)
	}

	var teacher model.UserModel
	if err := ctrl.DB.First(&teacher, "id = ?", *me.AssignedTeacherID).Error; err != nil {
		log.Printf("[ERROR] load assigned teacher: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch teacher")
	}

	return helper.JsonOK(c, "ok", dto.ToUserResponse(&teacher))
}
