package details

import (
	"github.com/gofiber/fiber/v2"

	formRoute "skyouth_backend/internals/features/forms/forms/route"
	submissionRoute "skyouth_backend/internals/features/forms/submissions/route"
	"skyouth_backend/internals/middlewares"
)

func FormsPublicRoutes(r fiber.Router, d *Deps) {
	formRoute.FormPublicRoutes(r, d.Forms, d.Validate)
	submissionRoute.SubmissionPublicRoutes(r, d.SubmissionService, d.Submissions, d.Uploader, d.Validate,
		middlewares.SubmitRateLimiter(d.Cfg.SubmitRateMax))
}

func FormsAdminRoutes(r fiber.Router, d *Deps) {
	formRoute.FormAdminRoutes(r, d.Forms, d.Validate)
	submissionRoute.SubmissionAdminRoutes(r, d.SubmissionService, d.Submissions, d.Validate)
}
