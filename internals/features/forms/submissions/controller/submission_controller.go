package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skyouth_backend/internals/features/forms/resolver"
	"skyouth_backend/internals/features/forms/submissions/dto"
	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	"skyouth_backend/internals/features/forms/submissions/service"
	helper "skyouth_backend/internals/helpers"
	"skyouth_backend/internals/helpers/apperror"
)

type submissionService interface {
	Precheck(ctx context.Context, in service.SubmitInput) error
	Submit(ctx context.Context, in service.SubmitInput) (service.SubmitResult, error)
	Review(ctx context.Context, in service.ReviewInput) (service.ReviewResult, error)
	Get(ctx context.Context, id uuid.UUID) (*submissionModel.FormSubmission, error)
}

type submissionLister interface {
	ListByForm(ctx context.Context, formID uuid.UUID, status string, p helper.Params) ([]submissionModel.FormSubmission, int64, error)
}

type fileSaver interface {
	SaveForm(ctx context.Context, dir string, form *multipart.Form) (map[string]string, error)
}

type SubmissionController struct {
	Service  submissionService
	Lister   submissionLister
	Files    fileSaver
	Validate *validator.Validate
}

func NewSubmissionController(svc submissionService, lister submissionLister, files fileSaver, v *validator.Validate) *SubmissionController {
	return &SubmissionController{Service: svc, Lister: lister, Files: files, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, apperror.New(apperror.KindBadRequest, name+" tidak valid")
	}
	return id, nil
}

// decodeData keeps numbers as json.Number so amounts and phone numbers survive intact.
func decodeData(raw []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var out map[string]any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

/* =========================================================
   SUBMIT (public)
   POST /api/public/forms/:id/submissions
   - JSON:      {"data": {...}, "files": {"field": "url"}}
   - multipart: data=<json>, plus file parts keyed by field name
========================================================= */
func (ctl *SubmissionController) Submit(c *fiber.Ctx) error {
	formID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var (
		req     dto.SubmitRequest
		uploads *multipart.Form
	)
	if strings.HasPrefix(strings.ToLower(c.Get(fiber.HeaderContentType)), fiber.MIMEMultipartForm) {
		req, uploads, err = ctl.readMultipart(c)
	} else {
		req, err = ctl.readJSON(c)
	}
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	// ✅ file baru disimpan setelah form terbukti menerima submission ini
	if ctl.Files != nil && uploads != nil && len(uploads.File) > 0 {
		if err := ctl.Service.Precheck(c.UserContext(), service.SubmitInput{
			FormID: formID,
			Data:   resolver.Data(req.Data),
			Files:  pendingFiles(uploads),
		}); err != nil {
			return helper.JsonAppError(c, err)
		}
		req.Files, err = ctl.Files.SaveForm(c.UserContext(), "submissions/"+formID.String(), uploads)
		if err != nil {
			return helper.JsonAppError(c, apperror.Wrap(apperror.KindBadRequest, err.Error(), err))
		}
	}

	res, err := ctl.Service.Submit(c.UserContext(), service.SubmitInput{
		FormID: formID,
		Data:   resolver.Data(req.Data),
		Files:  req.Files,
		UserID: helper.OptionalUserID(c),
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonCreated(c, "Submission received", res)
}

func (ctl *SubmissionController) readJSON(c *fiber.Ctx) (dto.SubmitRequest, error) {
	var envelope struct {
		Data  json.RawMessage   `json:"data"`
		Files map[string]string `json:"files"`
	}
	if err := json.Unmarshal(c.Body(), &envelope); err != nil {
		return dto.SubmitRequest{}, apperror.Wrap(apperror.KindBadRequest, "Invalid request body", err)
	}

	req := dto.SubmitRequest{Files: envelope.Files}
	if len(bytes.TrimSpace(envelope.Data)) > 0 {
		data, err := resolver.ParseData(envelope.Data)
		if err != nil {
			return dto.SubmitRequest{}, apperror.Wrap(apperror.KindBadRequest, "data must be a JSON object", err)
		}
		req.Data = data
	}
	return req, nil
}

func (ctl *SubmissionController) readMultipart(c *fiber.Ctx) (dto.SubmitRequest, *multipart.Form, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return dto.SubmitRequest{}, nil, apperror.Wrap(apperror.KindBadRequest, "Invalid multipart body", err)
	}

	data := map[string]any{}
	if raw := strings.TrimSpace(c.FormValue("data")); raw != "" {
		decoded, err := decodeData([]byte(raw))
		if err != nil {
			return dto.SubmitRequest{}, nil, apperror.Wrap(apperror.KindBadRequest, "data must be a JSON object", err)
		}
		data = decoded
	}
	// plain form fields other than "data" are submitted values too
	for key, values := range form.Value {
		if key == "data" || len(values) == 0 {
			continue
		}
		if len(values) == 1 {
			data[key] = values[0]
		} else {
			data[key] = strings.Join(values, ", ")
		}
	}
	return dto.SubmitRequest{Data: data}, form, nil
}

// pendingFiles: nama file asli per field, dipakai Precheck sebelum upload.
func pendingFiles(form *multipart.Form) map[string]string {
	out := map[string]string{}
	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		out[strings.TrimSuffix(field, "[]")] = headers[0].Filename
	}
	return out
}

/* =========================================================
   REVIEW (admin)
   PATCH /api/a/submissions/:id/status
========================================================= */
func (ctl *SubmissionController) Review(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	var req dto.ReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	reviewer := strings.TrimSpace(req.ReviewedBy)
	if reviewer == "" {
		reviewer = helper.GetReviewerName(c)
	}

	res, err := ctl.Service.Review(c.UserContext(), service.ReviewInput{
		SubmissionID: id,
		Status:       req.Status,
		ReviewedBy:   reviewer,
		Notes:        req.Notes,
	})
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	return helper.JsonUpdated(c, "Submission reviewed", fiber.Map{
		"submission":   dto.FromModel(res.Submission),
		"notification": res.Notification,
		"revenue":      res.Revenue,
	})
}

/* =========================================================
   GET (admin)
   GET /api/a/submissions/:id
========================================================= */
func (ctl *SubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	sub, err := ctl.Service.Get(c.UserContext(), id)
	if err != nil {
		return helper.JsonAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.FromModel(sub))
}

/* =========================================================
   LIST (admin)
   GET /api/a/forms/:id/submissions?status=&page=&per_page=&sort_by=submitted_at&order=desc
========================================================= */
func (ctl *SubmissionController) ListByForm(c *fiber.Ctx) error {
	formID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonAppError(c, err)
	}

	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	if status != "" && status != submissionModel.SubmissionStatusPending && !submissionModel.IsReviewStatus(status) {
		return helper.JsonAppError(c, apperror.New(apperror.KindBadRequest, "status must be PENDING, APPROVED or REJECTED"))
	}

	p := helper.ParseFiber(c, "submitted_at", "desc", helper.AdminOpts)
	items, total, err := ctl.Lister.ListByForm(c.UserContext(), formID, status, p)
	if err != nil {
		return helper.JsonAppError(c, apperror.Storage("list submissions", err))
	}
	return helper.JsonList(c, "ok", dto.FromModels(items), helper.BuildMeta(total, p))
}
