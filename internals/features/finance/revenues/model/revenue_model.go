package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* ===================== Enums (string) ===================== */

const (
	RevenueSourceGcash    = "GCASH"
	RevenueSourceCash     = "CASH"
	RevenueSourceDonation = "DONATION"
	RevenueSourceOther    = "OTHER"
)

const (
	RevenueStatusPending  = "PENDING"
	RevenueStatusApproved = "APPROVED"
	RevenueStatusRejected = "REJECTED"
)

/* ===================== Model ===================== */

// Revenue: at most one row per (revenue_form_submission_id, revenue_source).
type Revenue struct {
	RevenueID          uuid.UUID `gorm:"column:revenue_id;type:uuid;default:gen_random_uuid();primaryKey" json:"revenue_id"`
	RevenueTitle       string    `gorm:"column:revenue_title;type:varchar(255);not null" json:"revenue_title"`
	RevenueDescription *string   `gorm:"column:revenue_description;type:text" json:"revenue_description,omitempty"`
	RevenueAmount      float64   `gorm:"column:revenue_amount;type:numeric(14,2);not null;check:revenue_amount > 0" json:"revenue_amount"`
	RevenueSource      string    `gorm:"column:revenue_source;type:varchar(30);not null;uniqueIndex:uq_revenue_submission_source,priority:2" json:"revenue_source"`
	RevenueStatus      string    `gorm:"column:revenue_status;type:varchar(20);not null;default:'PENDING'" json:"revenue_status"`
	RevenueDate        time.Time `gorm:"column:revenue_date;not null" json:"revenue_date"`

	RevenueProgramID        *uuid.UUID `gorm:"column:revenue_program_id;type:uuid;index" json:"revenue_program_id,omitempty"`
	RevenueFormSubmissionID *uuid.UUID `gorm:"column:revenue_form_submission_id;type:uuid;uniqueIndex:uq_revenue_submission_source,priority:1" json:"revenue_form_submission_id,omitempty"`
	RevenueFieldName        *string    `gorm:"column:revenue_field_name;type:varchar(255)" json:"revenue_field_name,omitempty"`
	RevenueReceipt          *string    `gorm:"column:revenue_receipt;type:text" json:"revenue_receipt,omitempty"`

	RevenueMeta datatypes.JSONMap `gorm:"column:revenue_meta;type:jsonb" json:"revenue_meta,omitempty"`

	CreatedAt time.Time      `gorm:"column:revenue_created_at;autoCreateTime" json:"revenue_created_at"`
	UpdatedAt time.Time      `gorm:"column:revenue_updated_at;autoUpdateTime" json:"revenue_updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:revenue_deleted_at;index" json:"-"`
}

func (Revenue) TableName() string { return "revenues" }
