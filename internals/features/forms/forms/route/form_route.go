package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"skyouth_backend/internals/constants"
	formCtrl "skyouth_backend/internals/features/forms/forms/controller"
	"skyouth_backend/internals/features/forms/forms/repository"
	authMiddleware "skyouth_backend/internals/middlewares/auth"
)

// FormPublicRoutes: schema form untuk dirender submitter.
func FormPublicRoutes(r fiber.Router, repo *repository.FormRepository, v *validator.Validate) {
	ctl := formCtrl.NewFormController(repo, v)
	r.Get("/forms/:id", ctl.PublicGet)
}

// FormAdminRoutes: CRUD form, r sudah di-guard admin.
func FormAdminRoutes(r fiber.Router, repo *repository.FormRepository, v *validator.Validate) {
	ctl := formCtrl.NewFormController(repo, v)

	g := r.Group("/forms")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id", ctl.Update)
	// hapus form ikut menghapus submission-nya → admin/owner saja
	g.Delete("/:id", authMiddleware.OnlyRoles(constants.RoleErrorAdmin("form deletion"), constants.OwnerAndAbove...), ctl.Delete)
}
