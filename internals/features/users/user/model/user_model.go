package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// UserModel represents the users table. The teacher↔student assignment is
// denormalized on both sides: a student's assigned_teacher_id and the
// teacher's assigned_student_ids must stay mutually consistent, so every
// write path that touches one side goes through service.AttachTeacherStudent.
type UserModel struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"column:user_name;size:50;not null" json:"user_name"`
	Email    string    `gorm:"column:email;size:255;unique;not null" json:"email"`
	Password string    `gorm:"column:password;not null" json:"-"`
	GoogleID *string   `gorm:"column:google_id;size:255;unique" json:"google_id,omitempty"`

	Role          string `gorm:"column:role;type:varchar(20);not null;default:'student'" json:"role"`
	AccountStatus string `gorm:"column:account_status;type:varchar(20);not null;default:'pending'" json:"account_status"`

	ResourceAccess bool `gorm:"column:resource_access;not null;default:false" json:"resource_access"`

	// students only
	AssignedTeacherID *uuid.UUID `gorm:"column:assigned_teacher_id;type:uuid" json:"assigned_teacher_id,omitempty"`
	// teachers only
	AssignedStudentIDs pq.StringArray `gorm:"column:assigned_student_ids;type:text[]" json:"assigned_student_ids,omitempty"`

	CompletedClasses int `gorm:"column:completed_classes;not null;default:0" json:"completed_classes"`

	Plan          string     `gorm:"column:plan;type:varchar(20);not null;default:'free'" json:"plan"`
	PlanExpiresAt *time.Time `gorm:"column:plan_expires_at" json:"plan_expires_at,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// HasAssignedStudent reports whether the student id is already on the
// teacher's denormalized roster.
func (u *UserModel) HasAssignedStudent(studentID uuid.UUID) bool {
	sid := studentID.String()
	for _, s := range u.AssignedStudentIDs {
		if s == sid {
			return true
		}
	}
	return false
}
