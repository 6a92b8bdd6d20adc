package model

import (
	"time"

	"github.com/google/uuid"
)

type PaymentModel struct {
	PaymentID        uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`
	PaymentUserID    uuid.UUID `gorm:"column:payment_user_id;type:uuid;not null;index" json:"payment_user_id"`
	PaymentOrderID   string    `gorm:"column:payment_order_id;size:64;not null;uniqueIndex" json:"payment_order_id"`
	PaymentPlan      string    `gorm:"column:payment_plan;type:varchar(20);not null" json:"payment_plan"`
	PaymentAmount    int64     `gorm:"column:payment_amount;not null" json:"payment_amount"`
	PaymentStatus    string    `gorm:"column:payment_status;type:varchar(20);not null;default:'pending';index" json:"payment_status"`
	PaymentSnapToken string    `gorm:"column:payment_snap_token;type:text" json:"payment_snap_token,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"payment_created_at"`
	PaymentUpdatedAt time.Time `gorm:"column:payment_updated_at;autoUpdateTime" json:"payment_updated_at"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
