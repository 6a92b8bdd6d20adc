package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	notifService "quranku_backend/internals/features/home/notifications/service"
	"quranku_backend/internals/features/resources/model"
	userModel "quranku_backend/internals/features/users/user/model"
)

var (
	ErrAlreadyHasAccess  = errors.New("AlreadyHasAccess")
	ErrDuplicatePending  = errors.New("DuplicatePending")
	ErrRequestNotFound   = errors.New("RequestNotFound")
	ErrRequestNotPending = errors.New("RequestNotPending")
)

// Request opens an access ticket for the user. The pending-duplicate check is
// a query-before-insert; a racing duplicate slips through harmlessly because
// deciding one pending row leaves the other decidable too.
func Request(db *gorm.DB, userID uuid.UUID, message string) (*model.ResourceRequestModel, error) {
	var user userModel.UserModel
	if err := db.Select("id", "resource_access").First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if user.ResourceAccess {
		return nil, ErrAlreadyHasAccess
	}

	var pending int64
	if err := db.Model(&model.ResourceRequestModel{}).
		Where("resource_request_user_id = ? AND resource_request_status = ?", userID, constants.RequestStatusPending).
		Count(&pending).Error; err != nil {
		return nil, err
	}
	if pending > 0 {
		return nil, ErrDuplicatePending
	}

	req := model.ResourceRequestModel{
		ResourceRequestUserID:  userID,
		ResourceRequestStatus:  constants.RequestStatusPending,
		ResourceRequestMessage: message,
	}
	if err := db.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// Decide moves a pending request to approved or rejected. The status guard is
// part of the UPDATE itself, so a request reviewed twice loses the race
// instead of being silently re-stamped.
func Decide(db *gorm.DB, requestID, reviewerID uuid.UUID, approve bool) (*model.ResourceRequestModel, error) {
	newStatus := constants.RequestStatusRejected
	if approve {
		newStatus = constants.RequestStatusApproved
	}
	now := time.Now()

	res := db.Model(&model.ResourceRequestModel{}).
		Where("resource_request_id = ? AND resource_request_status = ?", requestID, constants.RequestStatusPending).
		Updates(map[string]any{
			"resource_request_status":      newStatus,
			"resource_request_reviewed_by": reviewerID,
			"resource_request_reviewed_at": now,
		})
	if res.Error != nil {
		return nil, res.Error
	}

	var req model.ResourceRequestModel
	if err := db.First(&req, "resource_request_id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if res.RowsAffected == 0 {
		return &req, ErrRequestNotPending
	}

	if approve {
		if err := db.Model(&userModel.UserModel{}).
			Where("id = ?", req.ResourceRequestUserID).
			Update("resource_access", true).Error; err != nil {
			return nil, err
		}
		notifService.NotifyUser(db, req.ResourceRequestUserID,
			constants.NotifResourceApproved,
			"Resource access approved",
			"Your request for learning resources has been approved. The materials library is now open to you.",
			map[string]any{"request_id": req.ResourceRequestID.String()},
		)
	} else {
		notifService.NotifyUser(db, req.ResourceRequestUserID,
			constants.NotifResourceRejected,
			"Resource access rejected",
			"Your request for learning resources was not approved. You may submit a new request.",
			map[string]any{"request_id": req.ResourceRequestID.String()},
		)
	}

	return &req, nil
}
