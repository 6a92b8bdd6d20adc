package dto

import (
	"github.com/google/uuid"

	"quranku_backend/internals/features/resources/model"
)

// ================== REQUESTS ==================

type CreateResourceRequest struct {
	Message string `json:"message" validate:"omitempty,max=500"`
}

// ================== RESPONSE ==================

type ResourceRequestResponse struct {
	RequestID  uuid.UUID  `json:"request_id"`
	UserID     uuid.UUID  `json:"user_id"`
	Status     string     `json:"status"`
	Message    string     `json:"message,omitempty"`
	ReviewedBy *uuid.UUID `json:"reviewed_by,omitempty"`
	ReviewedAt string     `json:"reviewed_at,omitempty"`
	CreatedAt  string     `json:"created_at"`
}

// ================ CONVERSION =================

func ToResourceRequestResponse(m *model.ResourceRequestModel) *ResourceRequestResponse {
	resp := &ResourceRequestResponse{
		RequestID:  m.ResourceRequestID,
		UserID:     m.ResourceRequestUserID,
		Status:     m.ResourceRequestStatus,
		Message:    m.ResourceRequestMessage,
		ReviewedBy: m.ResourceRequestReviewedBy,
		CreatedAt:  m.ResourceRequestCreatedAt.Format("2006-01-02 15:04:05"),
	}
	if m.ResourceRequestReviewedAt != nil {
		resp.ReviewedAt = m.ResourceRequestReviewedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func ToResourceRequestResponseList(models []model.ResourceRequestModel) []ResourceRequestResponse {
	var result []ResourceRequestResponse
	for _, m := range models {
		result = append(result, *ToResourceRequestResponse(&m))
	}
	return result
}
