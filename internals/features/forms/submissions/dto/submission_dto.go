package dto

import (
	"time"

	"github.com/google/uuid"

	"skyouth_backend/internals/features/forms/resolver"
	"skyouth_backend/internals/features/forms/submissions/model"
)

/* ===================== Requests ===================== */

// SubmitRequest: body JSON untuk submit publik. Multipart memakai field "data"
// (JSON string) dan file part per field.
type SubmitRequest struct {
	Data  map[string]any    `json:"data" validate:"required"`
	Files map[string]string `json:"files" validate:"omitempty,dive,max=2048"`
}

// ReviewRequest: status divalidasi di service (INVALID_STATUS), bukan di sini.
type ReviewRequest struct {
	Status     string  `json:"status"`
	ReviewedBy string  `json:"reviewed_by" validate:"omitempty,max=255"`
	Notes      *string `json:"notes" validate:"omitempty,max=5000"`
}

/* ===================== Responses ===================== */

type SubmissionResponse struct {
	FormSubmissionID         uuid.UUID     `json:"form_submission_id"`
	FormSubmissionFormID     uuid.UUID     `json:"form_submission_form_id"`
	FormTitle                string        `json:"form_title,omitempty"`
	FormSubmissionUserID     *uuid.UUID    `json:"form_submission_user_id,omitempty"`
	FormSubmissionData       resolver.Data `json:"form_submission_data"`
	SubmitterName            string        `json:"submitter_name"`
	FormSubmissionStatus     string        `json:"form_submission_status"`
	FormSubmissionSubmitted  time.Time     `json:"form_submission_submitted_at"`
	FormSubmissionReviewedAt *time.Time    `json:"form_submission_reviewed_at,omitempty"`
	FormSubmissionReviewedBy *string       `json:"form_submission_reviewed_by,omitempty"`
	FormSubmissionNotes      *string       `json:"form_submission_notes,omitempty"`
}

func FromModel(m *model.FormSubmission) SubmissionResponse {
	data := m.Values()
	out := SubmissionResponse{
		FormSubmissionID:         m.FormSubmissionID,
		FormSubmissionFormID:     m.FormSubmissionFormID,
		FormSubmissionUserID:     m.FormSubmissionUserID,
		FormSubmissionData:       data,
		SubmitterName:            resolver.SubmitterName(data),
		FormSubmissionStatus:     m.FormSubmissionStatus,
		FormSubmissionSubmitted:  m.FormSubmissionSubmitted,
		FormSubmissionReviewedAt: m.FormSubmissionReviewedAt,
		FormSubmissionReviewedBy: m.FormSubmissionReviewedBy,
		FormSubmissionNotes:      m.FormSubmissionNotes,
	}
	if m.Form != nil {
		out.FormTitle = m.Form.FormTitle
	}
	return out
}

func FromModels(items []model.FormSubmission) []SubmissionResponse {
	out := make([]SubmissionResponse, 0, len(items))
	for i := range items {
		out = append(out, FromModel(&items[i]))
	}
	return out
}
