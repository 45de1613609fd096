package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	revenueModel "skyouth_backend/internals/features/finance/revenues/model"
	formModel "skyouth_backend/internals/features/forms/forms/model"
	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	helper "skyouth_backend/internals/helpers"
)

type RevenueRepository struct {
	DB *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{DB: db}
}

func (r *RevenueRepository) ListApproved(ctx context.Context) ([]submissionModel.FormSubmission, error) {
	var subs []submissionModel.FormSubmission
	err := r.DB.WithContext(ctx).
		Preload("Form").
		Where("form_submission_status = ?", submissionModel.SubmissionStatusApproved).
		Order("form_submission_submitted_at ASC").
		Find(&subs).Error
	return subs, err
}

func (r *RevenueRepository) FindEvent(ctx context.Context, id uuid.UUID) (*formModel.Event, error) {
	var ev formModel.Event
	if err := r.DB.WithContext(ctx).First(&ev, "event_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *RevenueRepository) RevenueExists(ctx context.Context, submissionID uuid.UUID, source string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&revenueModel.Revenue{}).
		Where("revenue_form_submission_id = ? AND revenue_source = ?", submissionID, source).
		Limit(1).
		Count(&n).Error
	return n > 0, err
}

func (r *RevenueRepository) CreateRevenue(ctx context.Context, rev *revenueModel.Revenue) error {
	return r.DB.WithContext(ctx).Create(rev).Error
}

/* ===================== Admin listing ===================== */

type ListFilter struct {
	Source       string
	Status       string
	SubmissionID *uuid.UUID
	ProgramID    *uuid.UUID
}

var revenueSorts = map[string]string{
	"date":       "revenue_date",
	"amount":     "revenue_amount",
	"created_at": "revenue_created_at",
}

func (r *RevenueRepository) List(ctx context.Context, f ListFilter, p helper.Params) ([]revenueModel.Revenue, int64, error) {
	tx := r.DB.WithContext(ctx).Model(&revenueModel.Revenue{})
	if s := strings.ToUpper(strings.TrimSpace(f.Source)); s != "" {
		tx = tx.Where("revenue_source = ?", s)
	}
	if s := strings.ToUpper(strings.TrimSpace(f.Status)); s != "" {
		tx = tx.Where("revenue_status = ?", s)
	}
	if f.SubmissionID != nil {
		tx = tx.Where("revenue_form_submission_id = ?", *f.SubmissionID)
	}
	if f.ProgramID != nil {
		tx = tx.Where("revenue_program_id = ?", *f.ProgramID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []revenueModel.Revenue
	err := tx.Order(p.OrderClause(revenueSorts, "date")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&items).Error
	return items, total, err
}
