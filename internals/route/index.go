package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"skyouth_backend/internals/configs"
	"skyouth_backend/internals/constants"
	authMiddleware "skyouth_backend/internals/middlewares/auth"
	routeDetails "skyouth_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, cfg configs.Config) error {
	startTime = time.Now()

	deps, err := routeDetails.NewDeps(db, cfg)
	if err != nil {
		return err
	}

	BaseRoutes(app, cfg)

	// ===================== GROUPS =====================

	// PUBLIC → JWT opsional (submission ditautkan ke user bila token ada)
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public", authMiddleware.OptionalAuthMiddleware(db))

	// ADMIN → Auth + role admin/owner/staff
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("the admin API"), constants.StaffAndAbove...),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting Forms routes...")
	routeDetails.FormsPublicRoutes(public, deps)
	routeDetails.FormsAdminRoutes(admin, deps)

	log.Println("[INFO] Mounting Finance routes...")
	routeDetails.FinanceAdminRoutes(admin, deps)

	log.Println("[INFO] Mounting Youth routes...")
	routeDetails.YouthAdminRoutes(admin, deps)

	return nil
}
