package controller

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyouth_backend/internals/features/forms/forms/dto"
	"skyouth_backend/internals/features/forms/forms/model"
	"skyouth_backend/internals/features/forms/forms/repository"
	"skyouth_backend/internals/features/forms/schema"
	helper "skyouth_backend/internals/helpers"
	"skyouth_backend/internals/helpers/apperror"
)

type formStore interface {
	Create(ctx context.Context, f *model.Form) error
	Save(ctx context.Context, f *model.Form) error
	Find(ctx context.Context, id uuid.UUID) (*model.Form, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	EventExists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, f repository.ListFilter, p helper.Params) ([]model.Form, int64, error)
}

type FormController struct {
	Store    formStore
	Validate *validator.Validate
	Now      func() time.Time
}

func NewFormController(store formStore, v *validator.Validate) *FormController {
	return &FormController{Store: store, Validate: v, Now: time.Now}
}

// checkFields: nama field harus unik, select/radio butuh opsi, min <= max.
func checkFields(fields []schema.FieldDescriptor) map[string][]string {
	var msgs []string
	for _, name := range schema.DuplicateNames(fields) {
		msgs = append(msgs, fmt.Sprintf("field name %q is used more than once", name))
	}
	for _, f := range fields {
		if (f.Type == schema.TypeSelect || f.Type == schema.TypeRadio) && len(f.Options) == 0 {
			msgs = append(msgs, fmt.Sprintf("field %q needs at least one option", f.Name))
		}
		if f.Min != nil && f.Max != nil && *f.Min > *f.Max {
			msgs = append(msgs, fmt.Sprintf("field %q has min greater than max", f.Name))
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return map[string][]string{"form_fields": msgs}
}

func (ctl *FormController) checkEvent(ctx context.Context, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	ok, err := ctl.Store.EventExists(ctx, *id)
	if err != nil {
		return apperror.Storage("check event", err)
	}
	if !ok {
		return apperror.New(apperror.KindBadRequest, "form_event_id tidak ditemukan")
	}
	return nil
}

func (ctl *FormController) load(ctx context.Context, c *fiber.Ctx) (*model.Form, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return nil, apperror.New(apperror.KindBadRequest, "id tidak valid")
	}
	f, err := ctl.Store.Find(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrFormNotFound
		}
		return nil, apperror.Storage("load form", err)
	}
	return f, nil
}

// ✅ POST /api/a/forms
func (ctl *FormController) Create(c *fiber.Ctx) error {
	var req dto.CreateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	form := req.ToModel()
	if errs := checkFields(form.Fields); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if err := ctl.checkEvent(c.UserContext(), form.FormEventID); err != nil {
		return helper.JsonAppError(c, err)
	}

	if err := ctl.Store.Create(c.UserContext(), form); err != nil {
		return helper.JsonAppError(c, apperror.Storage("create form", err))
	}
	log.Printf("[INFO] form %s created (%d fields)", form.FormID, len(form.Fields))
	return helper.JsonCreated(c, "Form created", form)
}

// ✅ PATCH /api/a/forms/:id
func (ctl *FormController) Update(c *fiber.Ctx) error {
	var req dto.UpdateFormRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	form, err := ctl.load(c.UserContext(), c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	req.ApplyTo(form)

	if errs := checkFields(form.Fields); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if req.EventID != nil {
		if err := ctl.checkEvent(c.UserContext(), req.EventID); err != nil {
			return helper.JsonAppError(c, err)
		}
	}

	if err := ctl.Store.Save(c.UserContext(), form); err != nil {
		return helper.JsonAppError(c, apperror.Storage("update form", err))
	}
	return helper.JsonUpdated(c, "Form updated", form)
}

// ✅ DELETE /api/a/forms/:id
func (ctl *FormController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}
	deleted, err := ctl.Store.Delete(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, apperror.Storage("delete form", err))
	}
	if !deleted {
		return helper.JsonAppError(c, apperror.ErrFormNotFound)
	}
	return helper.JsonDeleted(c, "Form deleted", fiber.Map{"form_id": id})
}

// ✅ GET /api/a/forms/:id
func (ctl *FormController) GetByID(c *fiber.Ctx) error {
	form, err := ctl.load(c.UserContext(), c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", form)
}

// ✅ GET /api/a/forms?q=&publish_status=&event_id=&page=&per_page=
func (ctl *FormController) List(c *fiber.Ctx) error {
	filter := repository.ListFilter{
		Q:             c.Query("q"),
		PublishStatus: c.Query("publish_status"),
	}
	if s := strings.TrimSpace(c.Query("event_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "event_id tidak valid")
		}
		filter.EventID = &id
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)
	items, total, err := ctl.Store.List(c.UserContext(), filter, p)
	if err != nil {
		return helper.JsonAppError(c, apperror.Storage("list forms", err))
	}
	return helper.JsonList(c, "ok", items, helper.BuildMeta(total, p))
}

// ✅ GET /api/public/forms/:id (draft tidak terlihat publik)
func (ctl *FormController) PublicGet(c *fiber.Ctx) error {
	form, err := ctl.load(c.UserContext(), c)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if !form.IsPublished() {
		return helper.JsonAppError(c, apperror.ErrFormNotFound)
	}
	return helper.JsonOK(c, "ok", dto.ToPublic(form, ctl.Now()))
}
