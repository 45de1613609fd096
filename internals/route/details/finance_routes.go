package details

import (
	"github.com/gofiber/fiber/v2"

	revenueRoute "skyouth_backend/internals/features/finance/revenues/route"
)

func FinanceAdminRoutes(r fiber.Router, d *Deps) {
	revenueRoute.RevenueAdminRoutes(r, d.Reconciler, d.Revenues)
}
