package route

import (
	"github.com/gofiber/fiber/v2"

	revCtrl "skyouth_backend/internals/features/finance/revenues/controller"
	"skyouth_backend/internals/features/finance/revenues/repository"
	"skyouth_backend/internals/features/finance/revenues/service"
)

// RevenueAdminRoutes: r sudah di-guard admin oleh caller.
func RevenueAdminRoutes(r fiber.Router, reconciler *service.Reconciler, repo *repository.RevenueRepository) {
	ctl := revCtrl.NewRevenueController(repo, reconciler)

	g := r.Group("/revenues")
	g.Get("/", ctl.List)
	g.Post("/sync-gcash", ctl.SyncGcash)
}
