package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quranku_backend/internals/features/users/user/controller"
)

func UserRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	user.Get("/me", ctrl.GetMe)
	user.Put("/me", ctrl.UpdateMe)
	user.Get("/my-teacher", ctrl.GetMyTeacher)
}

func UserTeacherRoutes(teacher fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserTeacherController(db)

	teacher.Get("/students", ctrl.ListMyStudents)
	teacher.Post("/students/:id/progress-note", ctrl.AddProgressNote)
}

func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewUserAdminController(db)

	admin.Get("/users", ctrl.ListUsers)
	admin.Patch("/users/:id/:action", ctrl.AccountAction)
	admin.Post("/assign-teacher", ctrl.AssignTeacher)
}
