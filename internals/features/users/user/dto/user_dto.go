package dto

import (
	"github.com/google/uuid"

	"quranku_backend/internals/features/users/user/model"
)

// ================== REQUESTS ==================

type UpdateProfileRequest struct {
	UserName string `json:"user_name" validate:"omitempty,min=3,max=50"`
}

type AssignTeacherRequest struct {
	StudentID string `json:"student_id" validate:"required,uuid"`
	TeacherID string `json:"teacher_id" validate:"required,uuid"`
}

// ================== RESPONSE ==================

type UserResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserName           string     `json:"user_name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	AccountStatus      string     `json:"account_status"`
	ResourceAccess     bool       `json:"resource_access"`
	AssignedTeacherID  *uuid.UUID `json:"assigned_teacher_id,omitempty"`
	AssignedStudentIDs []string   `json:"assigned_student_ids,omitempty"`
	CompletedClasses   int        `json:"completed_classes"`
	Plan               string     `json:"plan"`
	PlanExpiresAt      string     `json:"plan_expires_at,omitempty"`
	CreatedAt          string     `json:"created_at"`
}

// ================ CONVERSION =================

func ToUserResponse(u *model.UserModel) *UserResponse {
	resp := &UserResponse{
		ID:                 u.ID,
		UserName:           u.UserName,
		Email:              u.Email,
		Role:               u.Role,
		AccountStatus:      u.AccountStatus,
		ResourceAccess:     u.ResourceAccess,
		AssignedTeacherID:  u.AssignedTeacherID,
		AssignedStudentIDs: u.AssignedStudentIDs,
		CompletedClasses:   u.CompletedClasses,
		Plan:               u.Plan,
		CreatedAt:          u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if u.PlanExpiresAt != nil {
		resp.PlanExpiresAt = u.PlanExpiresAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	var result []UserResponse
	for _, m := range models {
		result = append(result, *ToUserResponse(&m))
	}
	return result
}
