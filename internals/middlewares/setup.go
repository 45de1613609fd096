package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"skyouth_backend/internals/configs"
	"skyouth_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global (urutan penting: recover paling luar).
func SetupMiddlewares(app *fiber.App, cfg configs.Config) {
	app.Use(RecoveryMiddleware(cfg.Environment != "production"))
	app.Use(RequestContext(cfg.RequestTimeout))
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(logger.LoggerMiddleware(cfg.Timezone))
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
}
