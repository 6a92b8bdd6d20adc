package controller

import (
	"crypto/sha512"
	"encoding/hex"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quranku_backend/internals/configs"
	"quranku_backend/internals/constants"
	notifService "quranku_backend/internals/features/home/notifications/service"
	"quranku_backend/internals/features/payment/payments/dto"
	"quranku_backend/internals/features/payment/payments/model"
	"quranku_backend/internals/features/payment/payments/service"
	userModel "quranku_backend/internals/features/users/user/model"
	helper "quranku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* =======================================================================
   Charge
======================================================================= */

// 🟢 POST /api/payments/charge
func (ctrl *PaymentController) Charge(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.ChargeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if fieldErrs := helper.ValidateStruct(req); fieldErrs != nil {
		return helper.JsonValidationError(c, fieldErrs)
	}

	amount, ok := constants.PlanPrices[req.Plan]
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Unknown plan")
	}

	payment := model.PaymentModel{
		PaymentUserID:  userID,
		PaymentOrderID: "order-" + uuid.NewString(),
		PaymentPlan:    req.Plan,
		PaymentAmount:  amount,
		PaymentStatus:  "pending",
	}

	token, err := service.GenerateSnapToken(payment.PaymentOrderID, amount, req.Plan, service.CustomerInput{
		Name:  helper.GetUserName(c),
		Email: helper.GetUserEmail(c),
	})
	if err != nil {
		log.Printf("[ERROR] midtrans snap token for %s: %v", payment.PaymentOrderID, err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Payment provider is unavailable, try again later")
	}
	payment.PaymentSnapToken = token

	if err := ctrl.DB.Create(&payment).Error; err != nil {
		log.Printf("[ERROR] create payment: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	return helper.JsonCreated(c, "Payment created", dto.ToPaymentResponse(&payment))
}

// 🟢 GET /api/payments — the caller's payment history
func (ctrl *PaymentController) ListMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.PaymentModel
	if err := ctrl.DB.Where("payment_user_id = ?", userID).
		Order("payment_created_at DESC").
		Find(&rows).Error; err != nil {
		log.Printf("[ERROR] list payments: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.JsonOK(c, "ok", dto.ToPaymentResponseList(rows))
}

/* =======================================================================
   Webhook Midtrans
======================================================================= */

type midtransNotif struct {
	TransactionStatus string `json:"transaction_status"` // capture, settlement, pending, deny, cancel, expire, failure
	StatusCode        string `json:"status_code"`
	SignatureKey      string `json:"signature_key"`
	OrderID           string `json:"order_id"`
	GrossAmount       string `json:"gross_amount"`
	FraudStatus       string `json:"fraud_status"`
}

// 🟢 POST /api/payments/notification — skip-auth path, Midtrans calls it
func (ctrl *PaymentController) MidtransWebhook(c *fiber.Ctx) error {
	var notif midtransNotif
	if err := c.BodyParser(&notif); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
	}

	// SHA512(order_id + status_code + gross_amount + server key)
	serverKey := configs.GetEnv("MIDTRANS_SERVER_KEY")
	want := strings.ToLower(notif.SignatureKey)
	got := sha512sum(notif.OrderID + notif.StatusCode + notif.GrossAmount + serverKey)
	if want == "" || got != want {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid signature")
	}

	var payment model.PaymentModel
	if err := ctrl.DB.First(&payment, "payment_order_id = ?", notif.OrderID).Error; err != nil {
		// answer 200 so Midtrans stops retrying an order we never issued
		log.Printf("[WARNING] webhook for unknown order %s", notif.OrderID)
		return c.JSON(fiber.Map{"status": "ignored", "reason": "payment not found"})
	}

	newStatus := mapMidtransStatus(notif)
	if newStatus == "" || payment.PaymentStatus == newStatus {
		return c.JSON(fiber.Map{"status": "ok", "payment_status": payment.PaymentStatus})
	}

	// settle at most once, the status guard keeps retried webhooks idempotent
	res := ctrl.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND payment_status = ?", payment.PaymentID, "pending").
		Update("payment_status", newStatus)
	if res.Error != nil {
		log.Printf("[ERROR] webhook update %s: %v", notif.OrderID, res.Error)
		return fiber.NewError(fiber.StatusInternalServerError, "update payment failed")
	}
	if res.RowsAffected == 0 {
		return c.JSON(fiber.Map{"status": "ok", "payment_status": payment.PaymentStatus})
	}

	if newStatus == "settled" {
		ctrl.applySettlement(&payment)
	}

	return c.JSON(fiber.Map{
		"status":         "ok",
		"payment_id":     payment.PaymentID,
		"payment_status": newStatus,
	})
}

func (ctrl *PaymentController) applySettlement(payment *model.PaymentModel) {
	expires := time.Now().AddDate(0, 1, 0) // monthly subscription
	if err := ctrl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", payment.PaymentUserID).
		Updates(map[string]any{
			"plan":            payment.PaymentPlan,
			"plan_expires_at": expires,
		}).Error; err != nil {
		log.Printf("[ERROR] apply plan upgrade for %s: %v", payment.PaymentOrderID, err)
		return
	}

	notifService.NotifyUser(ctrl.DB, payment.PaymentUserID,
		constants.NotifPaymentReceived,
		"Payment received",
		"Your payment was received. Your "+payment.PaymentPlan+" plan is now active.",
		map[string]any{
			"order_id": payment.PaymentOrderID,
			"plan":     payment.PaymentPlan,
			"amount":   payment.PaymentAmount,
		},
	)
}

func mapMidtransStatus(notif midtransNotif) string {
	switch notif.TransactionStatus {
	case "capture":
		if notif.FraudStatus == "accept" {
			return "settled"
		}
		return ""
	case "settlement":
		return "settled"
	case "deny", "cancel", "expire", "failure":
		return "failed"
	default:
		return ""
	}
}

func sha512sum(s string) string {
	h := sha512.Sum512([]byte(s))
	return hex.EncodeToString(h[:])
}
