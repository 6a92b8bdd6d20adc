package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	"quranku_backend/internals/features/resources/dto"
	"quranku_backend/internals/features/resources/model"
	"quranku_backend/internals/features/resources/service"
	helper "quranku_backend/internals/helpers"
)

type ResourceAdminController struct {
	DB *gorm.DB
}

func NewResourceAdminController(db *gorm.DB) *ResourceAdminController {
	return &ResourceAdminController{DB: db}
}

// 🟢 GET /api/a/resources/requests?status=pending
func (ctrl *ResourceAdminController) ListRequests(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ResourceRequestModel{})
	status := c.Query("status", constants.RequestStatusPending)
	if status != "all" {
		q = q.Where("resource_request_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] count resource requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count requests")
	}

	var rows []model.ResourceRequestModel
	if err := q.Order("resource_request_created_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list resource requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch requests")
	}

	return helper.JsonList(c, "ok", dto.ToResourceRequestResponseList(rows), helper.BuildPagination(total, paging))
}

// 🟢 PATCH /api/a/resource-requests/:id/:action — approve or reject
func (ctrl *ResourceAdminController) DecideRequest(c *fiber.Ctx) error {
	reviewerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request id")
	}
	action := c.Params("action")
	if action != "approve" && action != "reject" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid action, expected approve or reject")
	}

	row, err := service.Decide(ctrl.DB, requestID, reviewerID, action == "approve")
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, "Request not found")
		case errors.Is(err, service.ErrRequestNotPending):
			return helper.JsonError(c, fiber.StatusConflict, "Request has already been reviewed")
		default:
			log.Printf("[ERROR] decide resource request %s: %v", requestID, err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to review request")
		}
	}

	return helper.JsonUpdated(c, "Request reviewed", dto.ToResourceRequestResponse(row))
}
