package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"skyouth_backend/internals/configs"
	database "skyouth_backend/internals/databases"
	helper "skyouth_backend/internals/helpers"
	"skyouth_backend/internals/helpers/dbtime"
	middlewares "skyouth_backend/internals/middlewares"
	routes "skyouth_backend/internals/route"
	"skyouth_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.App

	loc := dbtime.SetTimezone(cfg.Timezone)
	log.Printf("[INFO] timezone: %s", loc)

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.ErrorHandler,
		BodyLimit:               int(cfg.UploadMaxBytes) * 4,
		DisableStartupMessage:   true,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	middlewares.SetupMiddlewares(app, cfg)

	// 🔌 DB connect + pool + warm-up
	database.ConnectDB(cfg)
	database.TunePool()
	if cfg.DBMigrate {
		if err := database.Migrate(database.DB); err != nil {
			log.Fatalf("❌ migrate: %v", err)
		}
		log.Println("✅ migrations applied")
	}
	seeds.RunAllSeeds(database.DB, cfg)
	database.WarmUpQueries()

	// ✅ Routes
	if err := routes.SetupRoutes(app, database.DB, cfg); err != nil {
		log.Fatalf("❌ routes: %v", err)
	}

	// 🔒 Keep-Alive & timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	// Start server non-blocking
	go func() {
		log.Printf("✅ Listening on :%s", cfg.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close()
}
