package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	revenueService "skyouth_backend/internals/features/finance/revenues/service"
	formModel "skyouth_backend/internals/features/forms/forms/model"
	"skyouth_backend/internals/features/forms/resolver"
	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	"skyouth_backend/internals/features/notifications/email"
	userModel "skyouth_backend/internals/features/users/user/model"
	"skyouth_backend/internals/helpers/apperror"
	"skyouth_backend/internals/helpers/besteffort"
)

// Store is the persistence the submission pipeline needs. Lookups return
// gorm.ErrRecordNotFound for missing rows.
type Store interface {
	FindForm(ctx context.Context, id uuid.UUID) (*formModel.Form, error)
	CountSubmissions(ctx context.Context, formID uuid.UUID) (int64, error)
	CreateSubmission(ctx context.Context, s *submissionModel.FormSubmission) error
	FindSubmission(ctx context.Context, id uuid.UUID) (*submissionModel.FormSubmission, error)
	SaveReview(ctx context.Context, s *submissionModel.FormSubmission) error
	FindUser(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error)
	FindEvent(ctx context.Context, id uuid.UUID) (*formModel.Event, error)
}

type ReviewNotifier interface {
	NotifyReview(ctx context.Context, notice email.ReviewNotice) email.Outcome
}

type SubmissionReconciler interface {
	ReconcileSubmission(ctx context.Context, sub *submissionModel.FormSubmission) (revenueService.SyncResult, error)
}

type Service struct {
	store      Store
	notifier   ReviewNotifier
	reconciler SubmissionReconciler
	validate   *validator.Validate
	now        func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithReconciler enables revenue reconciliation when a submission is approved.
func WithReconciler(r SubmissionReconciler) Option {
	return func(s *Service) { s.reconciler = r }
}

func NewService(store Store, notifier ReviewNotifier, v *validator.Validate, opts ...Option) *Service {
	s := &Service{
		store:    store,
		notifier: notifier,
		validate: v,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.validate == nil {
		s.validate = validator.New()
	}
	return s
}

/* ===================== Submit ===================== */

type SubmitInput struct {
	FormID uuid.UUID
	Data   resolver.Data
	// Files maps field keys to stored upload references; merged over Data.
	Files  map[string]string
	UserID *uuid.UUID
}

type SubmitResult struct {
	SubmissionID uuid.UUID `json:"submissionId"`
	SubmittedAt  time.Time `json:"submittedAt"`
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (SubmitResult, error) {
	now := s.now()
	form, err := s.openForm(ctx, in.FormID, now)
	if err != nil {
		return SubmitResult{}, err
	}
	data, err := s.checkData(form, in)
	if err != nil {
		return SubmitResult{}, err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return SubmitResult{}, apperror.Wrap(apperror.KindBadRequest, "submission data is not serializable", err)
	}

	sub := &submissionModel.FormSubmission{
		FormSubmissionID:        uuid.New(),
		FormSubmissionFormID:    form.FormID,
		FormSubmissionUserID:    in.UserID,
		FormSubmissionData:      datatypes.JSON(raw),
		FormSubmissionStatus:    submissionModel.SubmissionStatusPending,
		FormSubmissionSubmitted: now,
	}
	if err := s.store.CreateSubmission(ctx, sub); err != nil {
		return SubmitResult{}, apperror.Storage("create submission", err)
	}

	log.Printf("[INFO] 📝 submission %s stored for form %s", sub.FormSubmissionID, form.FormID)
	return SubmitResult{SubmissionID: sub.FormSubmissionID, SubmittedAt: sub.FormSubmissionSubmitted}, nil
}

// Precheck runs the same rules as Submit without writing anything. Files carries
// the pending upload field names (any non-empty value), so uploads are only stored
// for submissions that will be accepted.
func (s *Service) Precheck(ctx context.Context, in SubmitInput) error {
	form, err := s.openForm(ctx, in.FormID, s.now())
	if err != nil {
		return err
	}
	_, err = s.checkData(form, in)
	return err
}

// openForm loads the form and applies open/deadline/limit.
func (s *Service) openForm(ctx context.Context, formID uuid.UUID, now time.Time) (*formModel.Form, error) {
	form, err := s.store.FindForm(ctx, formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrFormNotFound
		}
		return nil, apperror.Storage("load form", err)
	}

	var existing int64
	if form.FormSubmissionLimit != nil {
		// read without lock; concurrent submits at the boundary may overshoot slightly
		existing, err = s.store.CountSubmissions(ctx, form.FormID)
		if err != nil {
			return nil, apperror.Storage("count submissions", err)
		}
	}
	if err := CheckAvailability(form, now, existing); err != nil {
		return nil, err
	}
	return form, nil
}

func (s *Service) checkData(form *formModel.Form, in SubmitInput) (resolver.Data, error) {
	data := resolver.Data{}
	for k, v := range in.Data {
		data[k] = v
	}
	data.Merge(in.Files)

	if fieldErrs := ValidateData(s.validate, form.Fields, data); fieldErrs != nil {
		return nil, apperror.Invalid("submission data is invalid", fieldErrs)
	}
	return data, nil
}

/* ===================== Review ===================== */

type ReviewInput struct {
	SubmissionID uuid.UUID
	Status       string
	ReviewedBy   string
	// Notes replaces the stored notes when non-nil.
	Notes *string
}

type ReviewResult struct {
	Submission   *submissionModel.FormSubmission `json:"submission"`
	Notification email.Outcome                   `json:"notification"`
	Revenue      *RevenueReport                  `json:"revenue,omitempty"`
}

// RevenueReport is the outcome of reconciling an approved submission.
type RevenueReport struct {
	besteffort.Report
	Created int `json:"created"`
	Skipped int `json:"skipped"`
}

// Review persists the decision, then notifies the submitter and, on approval,
// reconciles payments. Neither follow-up can fail the review.
func (s *Service) Review(ctx context.Context, in ReviewInput) (ReviewResult, error) {
	status := strings.ToUpper(strings.TrimSpace(in.Status))
	if !submissionModel.IsReviewStatus(status) {
		return ReviewResult{}, apperror.ErrInvalidStatus
	}

	sub, err := s.store.FindSubmission(ctx, in.SubmissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ReviewResult{}, apperror.ErrSubmissionNotFound
		}
		return ReviewResult{}, apperror.Storage("load submission", err)
	}

	reviewedAt := s.now()
	reviewer := strings.TrimSpace(in.ReviewedBy)
	sub.FormSubmissionStatus = status
	sub.FormSubmissionReviewedAt = &reviewedAt
	sub.FormSubmissionReviewedBy = &reviewer
	if in.Notes != nil {
		notes := strings.TrimSpace(*in.Notes)
		sub.FormSubmissionNotes = &notes
	}

	if err := s.store.SaveReview(ctx, sub); err != nil {
		return ReviewResult{}, apperror.Storage("save review", err)
	}

	res := ReviewResult{Submission: sub}
	res.Notification = s.notify(ctx, sub)

	if status == submissionModel.SubmissionStatusApproved && s.reconciler != nil {
		res.Revenue = s.reconcile(ctx, sub)
	}
	return res, nil
}

func (s *Service) notify(ctx context.Context, sub *submissionModel.FormSubmission) email.Outcome {
	if s.notifier == nil {
		return email.Outcome{Sent: false, Skipped: "notifications disabled"}
	}

	data := sub.Values()
	notice := email.ReviewNotice{
		Status:     sub.FormSubmissionStatus,
		ReviewedAt: *sub.FormSubmissionReviewedAt,
	}
	if sub.FormSubmissionReviewedBy != nil {
		notice.ReviewedBy = *sub.FormSubmissionReviewedBy
	}
	if sub.FormSubmissionNotes != nil {
		notice.Notes = *sub.FormSubmissionNotes
	}

	notice.RecipientEmail, notice.RecipientName = s.recipient(ctx, sub, data)

	if sub.Form != nil {
		notice.FormTitle = sub.Form.FormTitle
		if sub.Form.FormEventID != nil {
			ev, err := s.store.FindEvent(ctx, *sub.Form.FormEventID)
			if err == nil {
				notice.EventTitle = ev.EventTitle
				notice.EventDate = ev.EventDate
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("[WARN] review notice: load event for form %s: %v", sub.Form.FormID, err)
			}
		}
	}

	return s.notifier.NotifyReview(ctx, notice)
}

// recipient prefers the linked user's email and name, falling back to the submitted data.
func (s *Service) recipient(ctx context.Context, sub *submissionModel.FormSubmission, data resolver.Data) (string, string) {
	var addr, name string
	if sub.FormSubmissionUserID != nil {
		u, err := s.store.FindUser(ctx, *sub.FormSubmissionUserID)
		switch {
		case err == nil:
			addr = strings.TrimSpace(u.Email)
			name = strings.TrimSpace(u.DisplayName())
		case !errors.Is(err, gorm.ErrRecordNotFound):
			log.Printf("[WARN] review notice: load user %s: %v", *sub.FormSubmissionUserID, err)
		}
	}
	if addr == "" {
		addr, _ = resolver.SubmitterEmail(data)
	}
	if name == "" {
		name = resolver.SubmitterName(data)
	}
	return addr, name
}

func (s *Service) reconcile(ctx context.Context, sub *submissionModel.FormSubmission) *RevenueReport {
	var out revenueService.SyncResult
	rep := besteffort.Run(ctx, "reconcile revenue for "+sub.FormSubmissionID.String(), 0, func(ctx context.Context) error {
		var err error
		out, err = s.reconciler.ReconcileSubmission(ctx, sub)
		return err
	})
	return &RevenueReport{Report: rep, Created: out.Created, Skipped: out.Skipped}
}

/* ===================== Read ===================== */

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*submissionModel.FormSubmission, error) {
	sub, err := s.store.FindSubmission(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrSubmissionNotFound
		}
		return nil, apperror.Storage("load submission", err)
	}
	return sub, nil
}
