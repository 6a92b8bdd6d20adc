package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/payment/payments/controller"
)

// PaymentRoutes hang off the authenticated /api/payments group; the webhook
// is registered separately because Midtrans calls it unauthenticated.
func PaymentRoutes(payments fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	payments.Post("/charge", ctrl.Charge)
	payments.Get("/", ctrl.ListMyPayments)
}

func PaymentWebhookRoutes(payments fiber.Router, db *gorm.DB) {
	ctrl := controller.NewPaymentController(db)

	payments.Post("/notification", ctrl.MidtransWebhook)
}
