package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"quranku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain: request logging, panic
// recovery, CORS, and the global rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(logger.LoggerMiddleware())
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
