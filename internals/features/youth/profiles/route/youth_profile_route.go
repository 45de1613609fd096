package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	profileCtrl "skyouth_backend/internals/features/youth/profiles/controller"
	"skyouth_backend/internals/features/youth/profiles/repository"
	"skyouth_backend/internals/features/youth/profiles/service"
)

// YouthProfileAdminRoutes: r sudah di-guard admin oleh caller.
func YouthProfileAdminRoutes(r fiber.Router, svc *service.Service, repo *repository.YouthProfileRepository, v *validator.Validate) {
	ctl := profileCtrl.NewYouthProfileController(svc, repo, v)

	g := r.Group("/youth-profiles")
	g.Get("/", ctl.List)
	g.Post("/auto-create", ctl.AutoCreate)
	g.Get("/:id", ctl.GetByID)
}
