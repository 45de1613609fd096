package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"skyouth_backend/internals/configs"
	databases "skyouth_backend/internals/databases"
)

func BaseRoutes(app *fiber.App, cfg configs.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("SK youth forms backend is running 🚀")
	})

	// ❤️ Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := databases.Ping(); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    cfg.Environment,
		})
	})

	// file upload lokal (UPLOAD_DRIVER=local)
	if cfg.UploadDriver == "" || cfg.UploadDriver == "local" {
		app.Static(cfg.UploadPublicPrefix, cfg.UploadDir, fiber.Static{
			MaxAge:   3600,
			Compress: true,
		})
	}
}
