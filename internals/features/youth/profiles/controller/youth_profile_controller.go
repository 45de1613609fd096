package controller

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skyouth_backend/internals/features/youth/profiles/dto"
	"skyouth_backend/internals/features/youth/profiles/model"
	"skyouth_backend/internals/features/youth/profiles/repository"
	"skyouth_backend/internals/features/youth/profiles/service"
	helper "skyouth_backend/internals/helpers"
	"skyouth_backend/internals/helpers/apperror"
)

type profileService interface {
	AutoCreate(ctx context.Context, in service.AutoCreateInput) (service.AutoCreateResult, error)
	Get(ctx context.Context, id uuid.UUID) (*model.YouthProfile, error)
}

type profileLister interface {
	List(ctx context.Context, f repository.ListFilter, p helper.Params) ([]model.YouthProfile, int64, error)
}

type YouthProfileController struct {
	Service  profileService
	Lister   profileLister
	Validate *validator.Validate
}

func NewYouthProfileController(svc profileService, lister profileLister, v *validator.Validate) *YouthProfileController {
	return &YouthProfileController{Service: svc, Lister: lister, Validate: v}
}

/* =========================================================
   AUTO CREATE
   POST /api/a/youth-profiles/auto-create
   body: {"submission_id": "...", "form_title": "Youth Registration"}
========================================================= */
func (ctl *YouthProfileController) AutoCreate(c *fiber.Ctx) error {
	var req dto.AutoCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	subID, _ := uuid.Parse(req.SubmissionID)

	res, err := ctl.Service.AutoCreate(c.UserContext(), service.AutoCreateInput{
		SubmissionID: subID,
		FormTitle:    req.FormTitle,
	})
	if err != nil {
		if apperror.KindOf(err) == apperror.KindDuplicateProfile && res.Profile != nil {
			return helper.JsonAppErrorWithData(c, err, res.Profile)
		}
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Youth profile created", res)
}

/* =========================================================
   GET
   GET /api/a/youth-profiles/:id
========================================================= */
func (ctl *YouthProfileController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	p, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", p)
}

/* =========================================================
   LIST
   GET /api/a/youth-profiles?q=&barangay=&age_group=&status=&page=&per_page=
========================================================= */
func (ctl *YouthProfileController) List(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		Q:        c.Query("q"),
		Barangay: c.Query("barangay"),
		AgeGroup: c.Query("age_group"),
		Status:   c.Query("status"),
	}
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	items, total, err := ctl.Lister.List(c.UserContext(), filter, p)
	if err != nil {
		return helper.JsonAppError(c, apperror.Storage("list youth profiles", err))
	}
	return helper.JsonList(c, "ok", items, helper.BuildMeta(total, p))
}
