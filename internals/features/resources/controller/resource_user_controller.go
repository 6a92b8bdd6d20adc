package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/resources/dto"
	"quranku_backend/internals/features/resources/model"
	"quranku_backend/internals/features/resources/service"
	userModel "quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"
)

type ResourceUserController struct {
	DB *gorm.DB
}

func NewResourceUserController(db *gorm.DB) *ResourceUserController {
	return &ResourceUserController{DB: db}
}

// 🟢 POST /api/u/resources/request
func (ctrl *ResourceUserController) RequestAccess(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateResourceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
		}
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	row, err := service.Request(ctrl.DB, userID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadyHasAccess):
			return helper.JsonError(c, fiber.StatusBadRequest, "You already have resource access")
		case errors.Is(err, service.ErrDuplicatePending):
			return helper.JsonError(c, fiber.StatusBadRequest, "You already have a pending request")
		default:
			log.Printf("[ERROR] resource request: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to submit request")
		}
	}

	return helper.JsonCreated(c, "Request submitted", dto.ToResourceRequestResponse(row))
}

// 🟢 GET /api/u/resources/requests — the caller's own ticket history
func (ctrl *ResourceUserController) ListMyRequests(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.ResourceRequestModel
	if err := ctrl.DB.Where("resource_request_user_id = ?", userID).
		Order("resource_request_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list resource requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch requests")
	}

	return helper.JsonOK(c, "ok", dto.ToResourceRequestResponseList(rows))
}

// 🟢 GET /api/u/resources/materials — gated on resource_access
func (ctrl *ResourceUserController) ListMaterials(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctrl.DB.Select("id", "resource_access").First(&user, "id = ?", userID).Error; err != nil {
		log.Printf("[ERROR] load user for materials: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch materials")
	}
	if !user.ResourceAccess {
		return helper.JsonError(c, fiber.StatusForbidden, "Resource access required. Submit an access request first.")
	}

	return helper.JsonOK(c, "ok", MaterialsCatalogue())
}
