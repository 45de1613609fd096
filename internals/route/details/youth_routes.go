package details

import (
	"github.com/gofiber/fiber/v2"

	profileRoute "skyouth_backend/internals/features/youth/profiles/route"
)

func YouthAdminRoutes(r fiber.Router, d *Deps) {
	profileRoute.YouthProfileAdminRoutes(r, d.ProfileService, d.Profiles, d.Validate)
}
