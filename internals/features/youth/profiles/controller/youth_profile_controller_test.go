package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"skyouth_backend/internals/features/youth/profiles/model"
	"skyouth_backend/internals/features/youth/profiles/service"
	helper "skyouth_backend/internals/helpers"
	"skyouth_backend/internals/helpers/apperror"
	"skyouth_backend/internals/helpers/besteffort"
)

type fakeProfiles struct {
	err      error
	existing *model.YouthProfile
	got      []service.AutoCreateInput
}

func (f *fakeProfiles) AutoCreate(_ context.Context, in service.AutoCreateInput) (service.AutoCreateResult, error) {
	f.got = append(f.got, in)
	if f.err != nil {
		return service.AutoCreateResult{Profile: f.existing}, f.err
	}
	p := &model.YouthProfile{YouthProfileID: uuid.New(), YouthProfileTrackingID: "SK-2024-0042"}
	return service.AutoCreateResult{Profile: p, Note: besteffort.Report{OK: true}}, nil
}

func (f *fakeProfiles) Get(context.Context, uuid.UUID) (*model.YouthProfile, error) {
	return nil, apperror.New(apperror.KindNotFound, "youth profile not found")
}

func newProfileApp(svc *fakeProfiles) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: helper.ErrorHandler})
	ctl := NewYouthProfileController(svc, nil, helper.NewValidator())
	app.Post("/youth-profiles/auto-create", ctl.AutoCreate)
	app.Get("/youth-profiles/:id", ctl.GetByID)
	return app
}

func post(t *testing.T, app *fiber.App, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest("POST", "/youth-profiles/auto-create", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, out
}

func TestAutoCreate_Created(t *testing.T) {
	t.Parallel()

	svc := &fakeProfiles{}
	subID := uuid.New()
	status, body := post(t, newProfileApp(svc), `{"submission_id":"`+subID.String()+`","form_title":"Youth Registration"}`)
	if status != fiber.StatusCreated {
		t.Fatalf("status = %d, body = %v", status, body)
	}
	data := body["data"].(map[string]any)
	profile := data["profile"].(map[string]any)
	if profile["youth_profile_tracking_id"] != "SK-2024-0042" {
		t.Fatalf("profile = %v", profile)
	}
	if svc.got[0].SubmissionID != subID || svc.got[0].FormTitle != "Youth Registration" {
		t.Fatalf("input = %+v", svc.got[0])
	}
}

func TestAutoCreate_DuplicateCarriesExisting(t *testing.T) {
	t.Parallel()

	existing := &model.YouthProfile{YouthProfileID: uuid.New(), YouthProfileTrackingID: "SK-2023-0007"}
	svc := &fakeProfiles{err: apperror.New(apperror.KindDuplicateProfile, "youth profile already exists: SK-2023-0007"), existing: existing}
	status, body := post(t, newProfileApp(svc), `{"submission_id":"`+uuid.NewString()+`"}`)
	if status != fiber.StatusConflict {
		t.Fatalf("status = %d", status)
	}
	if body["error_code"] != "DUPLICATE_PROFILE" {
		t.Fatalf("error_code = %v", body["error_code"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["youth_profile_tracking_id"] != "SK-2023-0007" {
		t.Fatalf("data = %v", body["data"])
	}
}

func TestAutoCreate_BadRequests(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		err  error
		want int
	}{
		{name: "missing submission", body: `{}`, want: fiber.StatusUnprocessableEntity},
		{name: "not a uuid", body: `{"submission_id":"abc"}`, want: fiber.StatusUnprocessableEntity},
		{name: "unsupported form", body: `{"submission_id":"` + uuid.NewString() + `","form_title":"Volunteers"}`, err: apperror.ErrUnsupportedForm, want: fiber.StatusBadRequest},
		{name: "no data", body: `{"submission_id":"` + uuid.NewString() + `"}`, err: apperror.Invalid("submission lacks required profile data", nil), want: fiber.StatusUnprocessableEntity},
	}
	for _, tt := range tests {
		status, body := post(t, newProfileApp(&fakeProfiles{err: tt.err}), tt.body)
		if status != tt.want {
			t.Fatalf("%s: status = %d, want %d (%v)", tt.name, status, tt.want, body)
		}
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	app := newProfileApp(&fakeProfiles{})
	resp, err := app.Test(httptest.NewRequest("GET", "/youth-profiles/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/youth-profiles/nope", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
