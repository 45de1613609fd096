package model

import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyouth_backend/internals/features/forms/schema"
)

/* ===================== Enums (string) ===================== */

const (
	PublishStatusDraft     = "DRAFT"
	PublishStatusPublished = "PUBLISHED"
)

/* ===================== Model ===================== */

type Form struct {
	FormID          uuid.UUID `gorm:"column:form_id;type:uuid;default:gen_random_uuid();primaryKey" json:"form_id"`
	FormTitle       string    `gorm:"column:form_title;type:varchar(255);not null" json:"form_title"`
	FormDescription *string   `gorm:"column:form_description;type:text" json:"form_description,omitempty"`

	// Raw column; some historic rows hold the array JSON-encoded twice.
	FormFieldsRaw string `gorm:"column:form_fields;type:text;not null;default:'[]'" json:"-"`

	FormIsActive           bool       `gorm:"column:form_is_active;not null;default:true" json:"form_is_active"`
	FormPublishStatus      string     `gorm:"column:form_publish_status;type:varchar(20);not null;default:'DRAFT'" json:"form_publish_status"`
	FormSubmissionLimit    *int       `gorm:"column:form_submission_limit" json:"form_submission_limit,omitempty"`
	FormSubmissionDeadline *time.Time `gorm:"column:form_submission_deadline" json:"form_submission_deadline,omitempty"`
	FormEventID            *uuid.UUID `gorm:"column:form_event_id;type:uuid;index" json:"form_event_id,omitempty"`

	CreatedAt time.Time      `gorm:"column:form_created_at;autoCreateTime" json:"form_created_at"`
	UpdatedAt time.Time      `gorm:"column:form_updated_at;autoUpdateTime" json:"form_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:form_deleted_at;index" json:"-"`

	// Canonical field list, filled once when the row is read.
	Fields            []schema.FieldDescriptor `gorm:"-" json:"form_fields"`
	FieldsParseFailed bool                     `gorm:"-" json:"-"`
}

func (Form) TableName() string { return "forms" }

// AfterFind resolves the stored field list into its canonical form.
func (f *Form) AfterFind(tx *gorm.DB) error {
	f.LoadFields()
	return nil
}

// BeforeSave always writes the canonical single-encoded array back.
func (f *Form) BeforeSave(tx *gorm.DB) error {
	if f.Fields == nil {
		f.LoadFields()
	}
	raw, err := schema.Encode(f.Fields)
	if err != nil {
		return err
	}
	f.FormFieldsRaw = raw
	return nil
}

// LoadFields normalizes FormFieldsRaw into Fields.
func (f *Form) LoadFields() {
	res := schema.Normalize(f.FormFieldsRaw)
	f.Fields = res.Fields
	f.FieldsParseFailed = res.ParseFailed
	if res.ParseFailed && strings.TrimSpace(f.FormFieldsRaw) != "" {
		log.Printf("[WARN] form %s: stored fields unreadable (%s), using empty schema", f.FormID, res.Kind)
	}
}

/* ===================== Helpers ===================== */

func (f *Form) IsPublished() bool {
	return f.FormPublishStatus == PublishStatusPublished
}

// AcceptsSubmissions: aktif dan sudah dipublish.
func (f *Form) AcceptsSubmissions() bool {
	return f.FormIsActive && f.IsPublished()
}

func (f *Form) FieldByName(name string) (schema.FieldDescriptor, bool) {
	for _, fd := range f.Fields {
		if fd.Name == name {
			return fd, true
		}
	}
	return schema.FieldDescriptor{}, false
}
