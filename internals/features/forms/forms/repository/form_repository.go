package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skyouth_backend/internals/features/forms/forms/model"
	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	helper "skyouth_backend/internals/helpers"
)

type FormRepository struct {
	DB *gorm.DB
}

func NewFormRepository(db *gorm.DB) *FormRepository {
	return &FormRepository{DB: db}
}

func (r *FormRepository) Create(ctx context.Context, f *model.Form) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

// Save writes every column; BeforeSave re-encodes the field list.
func (r *FormRepository) Save(ctx context.Context, f *model.Form) error {
	return r.DB.WithContext(ctx).Save(f).Error
}

func (r *FormRepository) Find(ctx context.Context, id uuid.UUID) (*model.Form, error) {
	var f model.Form
	if err := r.DB.WithContext(ctx).First(&f, "form_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// Delete soft-deletes the form and its submissions in one transaction.
func (r *FormRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var deleted bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		deleted, err = deleteFormCascade(tx, id)
		return err
	})
	return deleted, err
}

func deleteFormCascade(tx *gorm.DB, id uuid.UUID) (bool, error) {
	if err := tx.Where("form_submission_form_id = ?", id).Delete(&submissionModel.FormSubmission{}).Error; err != nil {
		return false, err
	}
	res := tx.Delete(&model.Form{}, "form_id = ?", id)
	return res.RowsAffected > 0, res.Error
}

func (r *FormRepository) EventExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Event{}).Where("event_id = ?", id).Count(&n).Error
	return n > 0, err
}

type ListFilter struct {
	Q             string
	PublishStatus string
	EventID       *uuid.UUID
}

var formSorts = map[string]string{
	"created_at": "form_created_at",
	"title":      "form_title",
	"deadline":   "form_submission_deadline",
}

func (r *FormRepository) List(ctx context.Context, f ListFilter, p helper.Params) ([]model.Form, int64, error) {
	tx := r.DB.WithContext(ctx).Model(&model.Form{})
	if q := strings.TrimSpace(f.Q); q != "" {
		tx = tx.Where("form_title ILIKE ?", "%"+q+"%")
	}
	if s := strings.ToUpper(strings.TrimSpace(f.PublishStatus)); s != "" {
		tx = tx.Where("form_publish_status = ?", s)
	}
	if f.EventID != nil {
		tx = tx.Where("form_event_id = ?", *f.EventID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.Form
	err := tx.Order(p.OrderClause(formSorts, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&items).Error
	return items, total, err
}
