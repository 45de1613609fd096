package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	subCtrl "skyouth_backend/internals/features/forms/submissions/controller"
	"skyouth_backend/internals/features/forms/submissions/repository"
	"skyouth_backend/internals/features/forms/submissions/service"
	"skyouth_backend/internals/helpers/storage"
)

// SubmissionPublicRoutes: submit tanpa login (user ditautkan bila token ada).
func SubmissionPublicRoutes(r fiber.Router, svc *service.Service, repo *repository.SubmissionRepository, uploader *storage.Uploader, v *validator.Validate, limiter fiber.Handler) {
	ctl := subCtrl.NewSubmissionController(svc, repo, uploader, v)

	r.Post("/forms/:id/submissions", limiter, ctl.Submit)
}

// SubmissionAdminRoutes: review & listing, r sudah di-guard admin.
func SubmissionAdminRoutes(r fiber.Router, svc *service.Service, repo *repository.SubmissionRepository, v *validator.Validate) {
	ctl := subCtrl.NewSubmissionController(svc, repo, nil, v)

	r.Get("/forms/:id/submissions", ctl.ListByForm)

	g := r.Group("/submissions")
	g.Get("/:id", ctl.GetByID)
	g.Patch("/:id/status", ctl.Review)
}
