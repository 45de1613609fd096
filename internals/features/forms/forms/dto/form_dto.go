package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"skyouth_backend/internals/features/forms/forms/model"
	"skyouth_backend/internals/features/forms/schema"
)

/* ===================== Requests ===================== */

type FieldRequest struct {
	ID          string   `json:"id" validate:"omitempty,max=100"`
	Name        string   `json:"name" validate:"required,max=100"`
	Label       string   `json:"label" validate:"omitempty,max=255"`
	Type        string   `json:"type" validate:"omitempty,max=50"`
	Required    bool     `json:"required"`
	Options     []string `json:"options" validate:"omitempty,dive,max=255"`
	Min         *float64 `json:"min"`
	Max         *float64 `json:"max"`
	Placeholder string   `json:"placeholder" validate:"omitempty,max=255"`
}

type CreateFormRequest struct {
	Title              string         `json:"form_title" validate:"required,max=255"`
	Description        *string        `json:"form_description" validate:"omitempty,max=5000"`
	Fields             []FieldRequest `json:"form_fields" validate:"omitempty,dive"`
	IsActive           *bool          `json:"form_is_active"`
	PublishStatus      string         `json:"form_publish_status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	SubmissionLimit    *int           `json:"form_submission_limit" validate:"omitempty,min=1"`
	SubmissionDeadline *time.Time     `json:"form_submission_deadline"`
	EventID            *uuid.UUID     `json:"form_event_id"`
}

// UpdateFormRequest: partial update, field yang nil tidak diubah.
type UpdateFormRequest struct {
	Title              *string         `json:"form_title" validate:"omitempty,min=1,max=255"`
	Description        *string         `json:"form_description" validate:"omitempty,max=5000"`
	Fields             *[]FieldRequest `json:"form_fields" validate:"omitempty,dive"`
	IsActive           *bool           `json:"form_is_active"`
	PublishStatus      *string         `json:"form_publish_status" validate:"omitempty,oneof=DRAFT PUBLISHED"`
	SubmissionLimit    *int            `json:"form_submission_limit" validate:"omitempty,min=0"`
	SubmissionDeadline *time.Time      `json:"form_submission_deadline"`
	ClearDeadline      bool            `json:"clear_deadline"`
	EventID            *uuid.UUID      `json:"form_event_id"`
}

// Descriptors converts the request fields and applies schema defaults.
func Descriptors(in []FieldRequest) []schema.FieldDescriptor {
	out := make([]schema.FieldDescriptor, 0, len(in))
	for _, f := range in {
		out = append(out, schema.FieldDescriptor{
			ID:          strings.TrimSpace(f.ID),
			Name:        strings.TrimSpace(f.Name),
			Label:       strings.TrimSpace(f.Label),
			Type:        strings.TrimSpace(f.Type),
			Required:    f.Required,
			Options:     f.Options,
			Min:         f.Min,
			Max:         f.Max,
			Placeholder: f.Placeholder,
		})
	}
	return schema.Backfill(out)
}

func (r CreateFormRequest) ToModel() *model.Form {
	f := &model.Form{
		FormTitle:              strings.TrimSpace(r.Title),
		FormDescription:        r.Description,
		FormIsActive:           true,
		FormPublishStatus:      model.PublishStatusDraft,
		FormSubmissionLimit:    r.SubmissionLimit,
		FormSubmissionDeadline: r.SubmissionDeadline,
		FormEventID:            r.EventID,
		Fields:                 Descriptors(r.Fields),
	}
	if r.IsActive != nil {
		f.FormIsActive = *r.IsActive
	}
	if r.PublishStatus != "" {
		f.FormPublishStatus = r.PublishStatus
	}
	return f
}

// ApplyTo copies the provided fields onto f. A limit of 0 removes the limit.
func (r UpdateFormRequest) ApplyTo(f *model.Form) {
	if r.Title != nil {
		f.FormTitle = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		f.FormDescription = r.Description
	}
	if r.Fields != nil {
		f.Fields = Descriptors(*r.Fields)
	}
	if r.IsActive != nil {
		f.FormIsActive = *r.IsActive
	}
	if r.PublishStatus != nil {
		f.FormPublishStatus = *r.PublishStatus
	}
	if r.SubmissionLimit != nil {
		if *r.SubmissionLimit == 0 {
			f.FormSubmissionLimit = nil
		} else {
			f.FormSubmissionLimit = r.SubmissionLimit
		}
	}
	if r.ClearDeadline {
		f.FormSubmissionDeadline = nil
	} else if r.SubmissionDeadline != nil {
		f.FormSubmissionDeadline = r.SubmissionDeadline
	}
	if r.EventID != nil {
		f.FormEventID = r.EventID
	}
}

/* ===================== Responses ===================== */

// PublicFormResponse is what an anonymous submitter needs to render the form.
type PublicFormResponse struct {
	FormID               uuid.UUID                `json:"form_id"`
	FormTitle            string                   `json:"form_title"`
	FormDescription      *string                  `json:"form_description,omitempty"`
	FormFields           []schema.FieldDescriptor `json:"form_fields"`
	FormSubmissionLimit  *int                     `json:"form_submission_limit,omitempty"`
	FormDeadline         *time.Time               `json:"form_submission_deadline,omitempty"`
	AcceptingSubmissions bool                     `json:"accepting_submissions"`
}

func ToPublic(f *model.Form, now time.Time) PublicFormResponse {
	accepting := f.AcceptsSubmissions()
	if f.FormSubmissionDeadline != nil && f.FormSubmissionDeadline.Before(now) {
		accepting = false
	}
	fields := f.Fields
	if fields == nil {
		fields = []schema.FieldDescriptor{}
	}
	return PublicFormResponse{
		FormID:               f.FormID,
		FormTitle:            f.FormTitle,
		FormDescription:      f.FormDescription,
		FormFields:           fields,
		FormSubmissionLimit:  f.FormSubmissionLimit,
		FormDeadline:         f.FormSubmissionDeadline,
		AcceptingSubmissions: accepting,
	}
}
