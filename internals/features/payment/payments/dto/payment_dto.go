package dto

import (
	"github.com/google/uuid"

	"quranku_backend/internals/features/payment/payments/model"
)

// ================== REQUESTS ==================

type ChargeRequest struct {
	Plan string `json:"plan" validate:"required,oneof=basic premium"`
}

// ================== RESPONSE ==================

type PaymentResponse struct {
	PaymentID uuid.UUID `json:"payment_id"`
	OrderID   string    `json:"order_id"`
	Plan      string    `json:"plan"`
	Amount    int64     `json:"amount"`
	Status    string    `json:"status"`
	SnapToken string    `json:"snap_token,omitempty"`
	CreatedAt string    `json:"created_at"`
}

// ================ CONVERSION =================

func ToPaymentResponse(m *model.PaymentModel) *PaymentResponse {
	return &PaymentResponse{
		PaymentID: m.PaymentID,
		OrderID:   m.PaymentOrderID,
		Plan:      m.PaymentPlan,
		Amount:    m.PaymentAmount,
		Status:    m.PaymentStatus,
		SnapToken: m.PaymentSnapToken,
		CreatedAt: m.PaymentCreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func ToPaymentResponseList(models []model.PaymentModel) []PaymentResponse {
	var result []PaymentResponse
	for _, m := range models {
		result = append(result, *ToPaymentResponse(&m))
	}
	return result
}
