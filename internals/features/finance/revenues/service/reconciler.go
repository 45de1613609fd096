package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	revenueModel "skyouth_backend/internals/features/finance/revenues/model"
	formModel "skyouth_backend/internals/features/forms/forms/model"
	"skyouth_backend/internals/features/forms/resolver"
	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	"skyouth_backend/internals/helpers/apperror"
)

// Store is the persistence the reconciler needs.
type Store interface {
	// ListApproved returns approved submissions with their Form preloaded.
	ListApproved(ctx context.Context) ([]submissionModel.FormSubmission, error)
	FindEvent(ctx context.Context, id uuid.UUID) (*formModel.Event, error)
	RevenueExists(ctx context.Context, submissionID uuid.UUID, source string) (bool, error)
	CreateRevenue(ctx context.Context, rev *revenueModel.Revenue) error
}

// SyncResult is the observable outcome of a reconciliation run. A second run over
// unchanged data reports Created == 0.
type SyncResult struct {
	Created        int `json:"created"`
	Skipped        int `json:"skipped"`
	TotalProcessed int `json:"totalProcessed"`
	Failed         int `json:"failed"`
}

func (r *SyncResult) add(o SyncResult) {
	r.Created += o.Created
	r.Skipped += o.Skipped
	r.TotalProcessed += o.TotalProcessed
	r.Failed += o.Failed
}

// DefaultSyncTimeout bounds one batch run. The run is detached from the request
// that started it, so a client deadline never cuts it short.
const DefaultSyncTimeout = 10 * time.Minute

type Reconciler struct {
	store       Store
	group       singleflight.Group
	syncTimeout time.Duration
}

type ReconcilerOption func(*Reconciler)

func WithSyncTimeout(d time.Duration) ReconcilerOption {
	return func(r *Reconciler) {
		if d > 0 {
			r.syncTimeout = d
		}
	}
}

func NewReconciler(store Store, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{store: store, syncTimeout: DefaultSyncTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SyncGcash reconciles every approved submission, one at a time. Concurrent calls
// share the run in flight. When the run is interrupted the counts reached so far
// are returned together with the error.
func (r *Reconciler) SyncGcash(ctx context.Context) (SyncResult, error) {
	v, err, shared := r.group.Do("sync-gcash", func() (any, error) {
		runCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.syncTimeout)
		defer cancel()
		return r.syncAll(runCtx)
	})
	if shared {
		log.Println("[INFO] gcash sync joined a run already in progress")
	}
	res, _ := v.(SyncResult)
	return res, err
}

func (r *Reconciler) syncAll(ctx context.Context) (SyncResult, error) {
	subs, err := r.store.ListApproved(ctx)
	if err != nil {
		return SyncResult{}, apperror.Storage("list approved submissions", err)
	}

	var total SyncResult
	for i := range subs {
		if err := ctx.Err(); err != nil {
			log.Printf("[WARN] gcash sync interrupted after %d submissions: created=%d skipped=%d failed=%d",
				total.TotalProcessed, total.Created, total.Skipped, total.Failed)
			return total, apperror.Wrap(apperror.KindStorage, "gcash sync interrupted", err)
		}
		res, err := r.ReconcileSubmission(ctx, &subs[i])
		if err != nil {
			log.Printf("[ERROR] gcash sync: submission %s: %v", subs[i].FormSubmissionID, err)
			res.Failed++
		}
		total.add(res)
	}

	log.Printf("[INFO] 💰 gcash sync done: created=%d skipped=%d processed=%d failed=%d",
		total.Created, total.Skipped, total.TotalProcessed, total.Failed)
	return total, nil
}

// ReconcileSubmission creates the missing GCash revenue for one approved submission.
// Submissions that are not approved count as processed with nothing to do.
func (r *Reconciler) ReconcileSubmission(ctx context.Context, sub *submissionModel.FormSubmission) (SyncResult, error) {
	res := SyncResult{TotalProcessed: 1}
	if sub == nil || !sub.IsApproved() || sub.Form == nil {
		return res, nil
	}

	data := sub.Values()
	payments := resolver.Payments(data, sub.Form.Fields)
	if len(payments) == 0 {
		return res, nil
	}

	var programID *uuid.UUID
	programResolved := false

	for _, pay := range payments {
		if !pay.Valid() {
			continue
		}

		exists, err := r.store.RevenueExists(ctx, sub.FormSubmissionID, revenueModel.RevenueSourceGcash)
		if err != nil {
			return res, apperror.Storage("check existing revenue", err)
		}
		if exists {
			res.Skipped++
			continue
		}

		if !programResolved {
			programID = r.programFor(ctx, sub.Form)
			programResolved = true
		}

		rev := buildRevenue(sub, pay, resolver.SubmitterName(data), programID)
		if err := r.store.CreateRevenue(ctx, rev); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				res.Skipped++
				continue
			}
			return res, apperror.Storage("create revenue", err)
		}
		res.Created++
	}
	return res, nil
}

// programFor walks form -> event -> program. A missing link leaves the revenue unassigned.
func (r *Reconciler) programFor(ctx context.Context, form *formModel.Form) *uuid.UUID {
	if form == nil || form.FormEventID == nil {
		return nil
	}
	ev, err := r.store.FindEvent(ctx, *form.FormEventID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("[WARN] resolve program for form %s: %v", form.FormID, err)
		}
		return nil
	}
	return ev.EventProgramID
}

func buildRevenue(sub *submissionModel.FormSubmission, pay resolver.Payment, submitter string, programID *uuid.UUID) *revenueModel.Revenue {
	label := pay.Field.DisplayName()
	desc := fmt.Sprintf("%s paid by %s via %s", label, submitter, sub.Form.FormTitle)
	fieldName := pay.Field.Name
	subID := sub.FormSubmissionID

	return &revenueModel.Revenue{
		RevenueTitle:            "GCash Payment - " + label,
		RevenueDescription:      &desc,
		RevenueAmount:           *pay.Amount,
		RevenueSource:           revenueModel.RevenueSourceGcash,
		RevenueStatus:           revenueModel.RevenueStatusApproved,
		RevenueDate:             sub.FormSubmissionSubmitted,
		RevenueProgramID:        programID,
		RevenueFormSubmissionID: &subID,
		RevenueFieldName:        &fieldName,
		RevenueReceipt:          pay.Receipt,
		RevenueMeta: datatypes.JSONMap{
			"form_id":     sub.FormSubmissionFormID.String(),
			"submitter":   submitter,
			"reconciled":  time.Now().UTC().Format(time.RFC3339),
			"field_label": label,
		},
	}
}
