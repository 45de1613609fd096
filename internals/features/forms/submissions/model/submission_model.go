package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	formModel "skyouth_backend/internals/features/forms/forms/model"
	"skyouth_backend/internals/features/forms/resolver"
)

/* ===================== Enums (string) ===================== */

const (
	SubmissionStatusPending  = "PENDING"
	SubmissionStatusApproved = "APPROVED"
	SubmissionStatusRejected = "REJECTED"
)

// IsReviewStatus: status yang boleh di-set lewat review.
func IsReviewStatus(s string) bool {
	return s == SubmissionStatusApproved || s == SubmissionStatusRejected
}

/* ===================== Model ===================== */

type FormSubmission struct {
	FormSubmissionID     uuid.UUID      `gorm:"column:form_submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"form_submission_id"`
	FormSubmissionFormID uuid.UUID      `gorm:"column:form_submission_form_id;type:uuid;not null;index" json:"form_submission_form_id"`
	FormSubmissionUserID *uuid.UUID     `gorm:"column:form_submission_user_id;type:uuid;index" json:"form_submission_user_id,omitempty"`
	FormSubmissionData   datatypes.JSON `gorm:"column:form_submission_data;type:jsonb;not null" json:"form_submission_data"`

	FormSubmissionStatus     string     `gorm:"column:form_submission_status;type:varchar(20);not null;default:'PENDING';index" json:"form_submission_status"`
	FormSubmissionSubmitted  time.Time  `gorm:"column:form_submission_submitted_at;not null" json:"form_submission_submitted_at"`
	FormSubmissionReviewedAt *time.Time `gorm:"column:form_submission_reviewed_at" json:"form_submission_reviewed_at,omitempty"`
	FormSubmissionReviewedBy *string    `gorm:"column:form_submission_reviewed_by;type:varchar(255)" json:"form_submission_reviewed_by,omitempty"`
	FormSubmissionNotes      *string    `gorm:"column:form_submission_notes;type:text" json:"form_submission_notes,omitempty"`

	CreatedAt time.Time `gorm:"column:form_submission_created_at;autoCreateTime" json:"form_submission_created_at"`
	UpdatedAt time.Time `gorm:"column:form_submission_updated_at;autoUpdateTime" json:"form_submission_updated_at"`
	// ikut soft delete bersama form-nya
	DeletedAt gorm.DeletedAt `gorm:"column:form_submission_deleted_at;index" json:"-"`

	Form *formModel.Form `gorm:"foreignKey:FormSubmissionFormID;references:FormID;constraint:OnDelete:CASCADE" json:"form,omitempty"`
}

func (FormSubmission) TableName() string { return "form_submissions" }

/* ===================== Helpers ===================== */

// Values decodes the stored data; corrupt rows degrade to an empty map.
func (s *FormSubmission) Values() resolver.Data {
	d, _ := resolver.ParseDataLenient(s.FormSubmissionData)
	return d
}

func (s *FormSubmission) IsApproved() bool {
	return s.FormSubmissionStatus == SubmissionStatusApproved
}

// AppendNote menambahkan catatan baru tanpa menghapus catatan reviewer.
func (s *FormSubmission) AppendNote(note string) {
	note = strings.TrimSpace(note)
	if note == "" {
		return
	}
	if s.FormSubmissionNotes == nil || strings.TrimSpace(*s.FormSubmissionNotes) == "" {
		s.FormSubmissionNotes = &note
		return
	}
	joined := strings.TrimRight(*s.FormSubmissionNotes, "\n") + "\n" + note
	s.FormSubmissionNotes = &joined
}
