package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/configs"
	"quranku_backend/internals/constants"
	notifService "quranku_backend/internals/features/home/notifications/service"
	"quranku_backend/internals/features/users/user/dto"
	"quranku_backend/internals/features/users/user/model"
	"quranku_backend/internals/features/users/user/service"
	helper "quranku_backend/internals/helpers"
)

type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// 🟢 GET /api/a/users?role=&status=
func (ctrl *UserAdminController) ListUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.UserModel{})
	if role := c.Query("role"); role != "" {
		if !constants.IsValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role filter")
		}
		q = q.Where("role = ?", role)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("account_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var rows []model.UserModel
	if err := q.Order("created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list users: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c, "ok", dto.ToUserResponseList(rows), helper.BuildPagination(total, paging))
}

// 🟢 PATCH /api/a/users/:id/:action — approve | block | reject
func (ctrl *UserAdminController) AccountAction(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}
	action := c.Params("action")
	if action != "approve" && action != "block" && action != "reject" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid action, expected approve, block or reject")
	}

	var user model.UserModel
	if err := ctrl.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		log.Printf("[ERROR] load user %s: %v", userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch user")
	}

	// allow-listed admins stay untouchable
	if action != "approve" && configs.IsAdminEmail(user.Email) {
		return helper.JsonError(c, fiber.StatusForbidden, "Administrator accounts cannot be blocked or rejected")
	}

	newStatus := constants.AccountStatusApproved
	if action != "approve" {
		newStatus = constants.AccountStatusBlocked
	}

	if err := ctrl.DB.Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("account_status", newStatus).Error; err != nil {
		log.Printf("[ERROR] %s user %s: %v", action, userID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update account status")
	}
	user.AccountStatus = newStatus

	if action == "approve" {
		notifService.NotifyUser(ctrl.DB, user.ID,
			constants.NotifAccountApproved,
			"Account approved",
			"Your account has been approved. You can now book classes and join lessons.",
			nil,
		)
	}

	messages := map[string]string{
		"approve": "Account approved",
		"block":   "Account blocked",
		"reject":  "Account rejected",
	}
	return helper.JsonUpdated(c, messages[action], dto.ToUserResponse(&user))
}

// 🟢 POST /api/a/assign-teacher
func (ctrl *UserAdminController) AssignTeacher(c *fiber.Ctx) error {
	var req dto.AssignTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	studentID, _ := uuid.Parse(req.StudentID)
	teacherID, _ := uuid.Parse(req.TeacherID)

	if err := service.AttachTeacherStudent(ctrl.DB, studentID, teacherID); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrStudentRoleMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id does not belong to a student")
		case errors.Is(err, service.ErrTeacherRoleMismatch):
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id does not belong to a teacher")
		default:
			log.Printf("[ERROR] assign teacher: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to assign teacher")
		}
	}

	return helper.JsonUpdated(c, "Teacher assigned", fiber.Map{
		"student_id": req.StudentID,
		"teacher_id": req.TeacherID,
	})
}
