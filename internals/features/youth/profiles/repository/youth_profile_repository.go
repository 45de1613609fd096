package repository

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	"skyouth_backend/internals/features/youth/profiles/model"
	helper "skyouth_backend/internals/helpers"
)

type YouthProfileRepository struct {
	DB *gorm.DB
}

func NewYouthProfileRepository(db *gorm.DB) *YouthProfileRepository {
	return &YouthProfileRepository{DB: db}
}

func (r *YouthProfileRepository) FindSubmission(ctx context.Context, id uuid.UUID) (*submissionModel.FormSubmission, error) {
	var s submissionModel.FormSubmission
	if err := r.DB.WithContext(ctx).Preload("Form").First(&s, "form_submission_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *YouthProfileRepository) SaveNotes(ctx context.Context, submissionID uuid.UUID, notes *string) error {
	return r.DB.WithContext(ctx).
		Model(&submissionModel.FormSubmission{}).
		Where("form_submission_id = ?", submissionID).
		Update("form_submission_notes", notes).Error
}

func (r *YouthProfileRepository) FindByIdentityHash(ctx context.Context, hash string) (*model.YouthProfile, error) {
	var p model.YouthProfile
	if err := r.DB.WithContext(ctx).First(&p, "youth_profile_identity_hash = ?", hash).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *YouthProfileRepository) TrackingIDExists(ctx context.Context, trackingID string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).
		Unscoped().
		Model(&model.YouthProfile{}).
		Where("youth_profile_tracking_id = ?", trackingID).
		Count(&n).Error
	return n > 0, err
}

func (r *YouthProfileRepository) CreateProfile(ctx context.Context, p *model.YouthProfile) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *YouthProfileRepository) FindProfile(ctx context.Context, id uuid.UUID) (*model.YouthProfile, error) {
	var p model.YouthProfile
	if err := r.DB.WithContext(ctx).First(&p, "youth_profile_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

/* ===================== Admin listing ===================== */

type ListFilter struct {
	Q        string
	Barangay string
	AgeGroup string
	Status   string
}

var profileSorts = map[string]string{
	"created_at":  "youth_profile_created_at",
	"full_name":   "youth_profile_full_name",
	"age":         "youth_profile_age",
	"tracking_id": "youth_profile_tracking_id",
}

func (r *YouthProfileRepository) List(ctx context.Context, f ListFilter, p helper.Params) ([]model.YouthProfile, int64, error) {
	tx := r.DB.WithContext(ctx).Model(&model.YouthProfile{})

	if q := strings.TrimSpace(f.Q); q != "" {
		like := "%" + q + "%"
		tx = tx.Where("youth_profile_full_name ILIKE ? OR youth_profile_tracking_id ILIKE ?", like, like)
	}
	if b := strings.TrimSpace(f.Barangay); b != "" {
		tx = tx.Where("youth_profile_barangay ILIKE ?", b)
	}
	if g := strings.TrimSpace(f.AgeGroup); g != "" {
		tx = tx.Where("youth_profile_age_group = ?", g)
	}
	if s := strings.TrimSpace(f.Status); s != "" {
		tx = tx.Where("youth_profile_status = ?", s)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []model.YouthProfile
	err := tx.Order(p.OrderClause(profileSorts, "created_at")).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&items).Error
	return items, total, err
}
