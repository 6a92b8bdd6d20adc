// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/constants"
	dashboardRoute "quranku_backend/internals/features/home/dashboard/route"
	notificationRoute "quranku_backend/internals/features/home/notifications/route"
	classRoute "quranku_backend/internals/features/learning/classes/route"
	scheduleRoute "quranku_backend/internals/features/learning/schedules/route"
	paymentRoute "quranku_backend/internals/features/payment/payments/route"
	activityRoute "quranku_backend/internals/features/progress/activity_logs/route"
	quranRoute "quranku_backend/internals/features/quran/route"
	resourceRoute "quranku_backend/internals/features/resources/route"
	authRoute "quranku_backend/internals/features/users/auth/route"
	userRoute "quranku_backend/internals/features/users/user/route"
	authMiddleware "quranku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	// webhook must stay reachable without a bearer token
	log.Println("[INFO] Setting up Payment webhook...")
	paymentRoute.PaymentWebhookRoutes(api.Group("/payments"), db)

	// everything below carries a live identity
	authenticated := authMiddleware.AuthMiddleware(db)

	// ===================== PAYMENTS =====================
	log.Println("[INFO] Setting up Payment routes...")
	paymentRoute.PaymentRoutes(api.Group("/payments", authenticated), db)

	// ===================== USER (/api/u) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authenticated)
	userRoute.UserRoutes(user, db)
	dashboardRoute.DashboardUserRoutes(user, db)
	notificationRoute.NotificationUserRoutes(user, db)
	activityRoute.ActivityLogUserRoutes(user, db)
	resourceRoute.ResourceUserRoutes(user, db)

	// booking and live content need an approved account; derived from the
	// same group so the token is parsed once, and registered after the open
	// routes so the gate only covers what follows
	userApproved := user.Group("", authMiddleware.RequireApproved())
	classRoute.ClassUserRoutes(userApproved, db)
	scheduleRoute.ScheduleUserRoutes(userApproved, db)
	quranRoute.QuranUserRoutes(userApproved, db)

	// ===================== TEACHER (/api/t) =====================
	log.Println("[INFO] Setting up TEACHER group...")
	teacher := app.Group("/api/t", authenticated,
		authMiddleware.OnlyRolesApproved(constants.RoleErrorTeacher("teaching tools"), constants.RoleTeacher),
	)
	dashboardRoute.DashboardTeacherRoutes(teacher, db)
	userRoute.UserTeacherRoutes(teacher, db)
	classRoute.ClassTeacherRoutes(teacher, db)
	scheduleRoute.ScheduleTeacherRoutes(teacher, db)

	// ===================== ADMIN (/api/a) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authenticated,
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("administration"), constants.RoleAdmin),
	)
	dashboardRoute.DashboardAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
	scheduleRoute.ScheduleAdminRoutes(admin, db)
	resourceRoute.ResourceAdminRoutes(admin, db)
	activityRoute.ActivityLogAdminRoutes(admin, db)

	log.Println("✅ All routes registered")
}
