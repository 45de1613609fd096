package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	formModel "skyouth_backend/internals/features/forms/forms/model"
	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	userModel "skyouth_backend/internals/features/users/user/model"
	helper "skyouth_backend/internals/helpers"
)

type SubmissionRepository struct {
	DB *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{DB: db}
}

func (r *SubmissionRepository) FindForm(ctx context.Context, id uuid.UUID) (*formModel.Form, error) {
	var f formModel.Form
	if err := r.DB.WithContext(ctx).First(&f, "form_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *SubmissionRepository) CountSubmissions(ctx context.Context, formID uuid.UUID) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Model(&submissionModel.FormSubmission{}).
		Where("form_submission_form_id = ?", formID).
		Count(&n).Error
	return n, err
}

func (r *SubmissionRepository) CreateSubmission(ctx context.Context, s *submissionModel.FormSubmission) error {
	return r.DB.WithContext(ctx).Omit("Form").Create(s).Error
}

// FindSubmission loads a submission with its Form.
func (r *SubmissionRepository) FindSubmission(ctx context.Context, id uuid.UUID) (*submissionModel.FormSubmission, error) {
	var s submissionModel.FormSubmission
	if err := r.DB.WithContext(ctx).Preload("Form").First(&s, "form_submission_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// SaveReview writes only the review columns.
func (r *SubmissionRepository) SaveReview(ctx context.Context, s *submissionModel.FormSubmission) error {
	return r.DB.WithContext(ctx).
		Model(&submissionModel.FormSubmission{}).
		Where("form_submission_id = ?", s.FormSubmissionID).
		Updates(map[string]any{
			"form_submission_status":      s.FormSubmissionStatus,
			"form_submission_reviewed_at": s.FormSubmissionReviewedAt,
			"form_submission_reviewed_by": s.FormSubmissionReviewedBy,
			"form_submission_notes":       s.FormSubmissionNotes,
		}).Error
}

// SaveNotes writes only the notes column.
func (r *SubmissionRepository) SaveNotes(ctx context.Context, id uuid.UUID, notes *string) error {
	return r.DB.WithContext(ctx).
		Model(&submissionModel.FormSubmission{}).
		Where("form_submission_id = ?", id).
		Update("form_submission_notes", notes).Error
}

func (r *SubmissionRepository) FindUser(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	var u userModel.UserModel
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *SubmissionRepository) FindEvent(ctx context.Context, id uuid.UUID) (*formModel.Event, error) {
	var ev formModel.Event
	if err := r.DB.WithContext(ctx).First(&ev, "event_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

/* ===================== Admin listing ===================== */

var submissionSorts = map[string]string{
	"submitted_at": "form_submission_submitted_at",
	"status":       "form_submission_status",
	"reviewed_at":  "form_submission_reviewed_at",
}

func (r *SubmissionRepository) ListByForm(ctx context.Context, formID uuid.UUID, status string, p helper.Params) ([]submissionModel.FormSubmission, int64, error) {
	tx := r.DB.WithContext(ctx).
		Model(&submissionModel.FormSubmission{}).
		Where("form_submission_form_id = ?", formID)
	if s := strings.ToUpper(strings.TrimSpace(status)); s != "" {
		tx = tx.Where("form_submission_status = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []submissionModel.FormSubmission
	err := tx.Order(p.OrderClause(submissionSorts, "submitted_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&items).Error
	return items, total, err
}
