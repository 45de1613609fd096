package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	revenueService "skyouth_backend/internals/features/finance/revenues/service"
	formModel "skyouth_backend/internals/features/forms/forms/model"
	"skyouth_backend/internals/features/forms/resolver"
	"skyouth_backend/internals/features/forms/schema"
	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	"skyouth_backend/internals/features/notifications/email"
	userModel "skyouth_backend/internals/features/users/user/model"
	"skyouth_backend/internals/helpers/apperror"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fakeStore struct {
	forms       map[uuid.UUID]*formModel.Form
	submissions map[uuid.UUID]*submissionModel.FormSubmission
	users       map[uuid.UUID]*userModel.UserModel
	events      map[uuid.UUID]*formModel.Event
	count       int64
	saveErr     error
	created     []*submissionModel.FormSubmission
	reviews     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		forms:       map[uuid.UUID]*formModel.Form{},
		submissions: map[uuid.UUID]*submissionModel.FormSubmission{},
		users:       map[uuid.UUID]*userModel.UserModel{},
		events:      map[uuid.UUID]*formModel.Event{},
	}
}

func (s *fakeStore) FindForm(_ context.Context, id uuid.UUID) (*formModel.Form, error) {
	if f, ok := s.forms[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) CountSubmissions(context.Context, uuid.UUID) (int64, error) {
	return s.count, nil
}

func (s *fakeStore) CreateSubmission(_ context.Context, sub *submissionModel.FormSubmission) error {
	s.created = append(s.created, sub)
	s.submissions[sub.FormSubmissionID] = sub
	s.count++
	return nil
}

func (s *fakeStore) FindSubmission(_ context.Context, id uuid.UUID) (*submissionModel.FormSubmission, error) {
	if sub, ok := s.submissions[id]; ok {
		return sub, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) SaveReview(context.Context, *submissionModel.FormSubmission) error {
	s.reviews++
	return s.saveErr
}

func (s *fakeStore) FindUser(_ context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeStore) FindEvent(_ context.Context, id uuid.UUID) (*formModel.Event, error) {
	if ev, ok := s.events[id]; ok {
		return ev, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type recordingSender struct {
	sent []email.Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg email.Message) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

type fakeReconciler struct {
	calls int
	res   revenueService.SyncResult
	err   error
}

func (r *fakeReconciler) ReconcileSubmission(context.Context, *submissionModel.FormSubmission) (revenueService.SyncResult, error) {
	r.calls++
	return r.res, r.err
}

func openForm() *formModel.Form {
	return &formModel.Form{
		FormID:            uuid.New(),
		FormTitle:         "Youth Registration 2024",
		FormIsActive:      true,
		FormPublishStatus: formModel.PublishStatusPublished,
		Fields: []schema.FieldDescriptor{
			{ID: "field-0", Name: "fullName", Label: "Full Name", Type: schema.TypeText, Required: true},
			{ID: "field-1", Name: "email", Label: "Email", Type: schema.TypeEmail},
		},
	}
}

func intPtr(n int) *int { return &n }

func TestSubmit_Limit(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	form := openForm()
	form.FormSubmissionLimit = intPtr(1)
	store.forms[form.FormID] = form
	svc := NewService(store, nil, validator.New(), WithClock(fixedClock))

	in := SubmitInput{FormID: form.FormID, Data: resolver.Data{"fullName": "Juan Dela Cruz"}}
	res, err := svc.Submit(context.Background(), in)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if res.SubmissionID == uuid.Nil || !res.SubmittedAt.Equal(fixedNow) {
		t.Fatalf("result = %+v", res)
	}

	_, err = svc.Submit(context.Background(), in)
	if !errors.Is(err, apperror.ErrLimitReached) {
		t.Fatalf("second submit err = %v, want LimitReached", err)
	}
	if len(store.created) != 1 {
		t.Fatalf("created = %d, want 1", len(store.created))
	}
}

func TestSubmit_Rejections(t *testing.T) {
	t.Parallel()

	past := fixedNow.Add(-time.Minute)
	future := fixedNow.Add(time.Hour)

	tests := []struct {
		name   string
		mutate func(*formModel.Form)
		data   resolver.Data
		want   apperror.Kind
	}{
		{name: "inactive", mutate: func(f *formModel.Form) { f.FormIsActive = false }, want: apperror.KindFormUnavailable},
		{name: "draft", mutate: func(f *formModel.Form) { f.FormPublishStatus = formModel.PublishStatusDraft }, want: apperror.KindFormUnavailable},
		{name: "deadline passed", mutate: func(f *formModel.Form) { f.FormSubmissionDeadline = &past }, want: apperror.KindDeadlinePassed},
		{name: "missing required", mutate: func(*formModel.Form) {}, data: resolver.Data{"email": "juan@example.com"}, want: apperror.KindInvalidSubmissionData},
		{name: "bad email", mutate: func(*formModel.Form) {}, data: resolver.Data{"fullName": "Juan", "email": "not-an-email"}, want: apperror.KindInvalidSubmissionData},
		{name: "open with future deadline", mutate: func(f *formModel.Form) { f.FormSubmissionDeadline = &future }, data: resolver.Data{"Full Name": "Juan"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := newFakeStore()
			form := openForm()
			tt.mutate(form)
			store.forms[form.FormID] = form
			svc := NewService(store, nil, validator.New(), WithClock(fixedClock))

			data := tt.data
			if data == nil {
				data = resolver.Data{"fullName": "Juan"}
			}
			_, err := svc.Submit(context.Background(), SubmitInput{FormID: form.FormID, Data: data})
			if got := apperror.KindOf(err); got != tt.want {
				t.Fatalf("kind = %q, want %q (err=%v)", got, tt.want, err)
			}
		})
	}
}

func TestSubmit_UnknownForm(t *testing.T) {
	t.Parallel()

	svc := NewService(newFakeStore(), nil, validator.New())
	_, err := svc.Submit(context.Background(), SubmitInput{FormID: uuid.New()})
	if !errors.Is(err, apperror.ErrFormNotFound) {
		t.Fatalf("err = %v, want FormNotFound", err)
	}
}

func TestSubmit_MergesFiles(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	form := openForm()
	form.Fields = append(form.Fields, schema.FieldDescriptor{ID: "field-2", Name: "fee", Label: "Fee", Type: schema.TypeGcashReceipt, Required: true})
	store.forms[form.FormID] = form
	userID := uuid.New()
	svc := NewService(store, nil, validator.New(), WithClock(fixedClock))

	_, err := svc.Submit(context.Background(), SubmitInput{
		FormID: form.FormID,
		Data:   resolver.Data{"fullName": "Juan", "fee_amount": "150"},
		Files:  map[string]string{"fee_receipt": "/uploads/receipt.png"},
		UserID: &userID,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	sub := store.created[0]
	vals := sub.Values()
	if v, _ := vals.Get("fee_receipt"); v != "/uploads/receipt.png" {
		t.Fatalf("receipt = %q", v)
	}
	if sub.FormSubmissionStatus != submissionModel.SubmissionStatusPending {
		t.Fatalf("status = %q", sub.FormSubmissionStatus)
	}
	if sub.FormSubmissionUserID == nil || *sub.FormSubmissionUserID != userID {
		t.Fatalf("user not linked")
	}
}

func TestPrecheck_WritesNothing(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	form := openForm()
	form.Fields = append(form.Fields, schema.FieldDescriptor{ID: "field-2", Name: "id_photo", Label: "ID Photo", Type: schema.TypeFile, Required: true})
	form.FormSubmissionLimit = intPtr(1)
	store.forms[form.FormID] = form
	svc := NewService(store, nil, validator.New(), WithClock(fixedClock))

	ok := SubmitInput{FormID: form.FormID, Data: resolver.Data{"fullName": "Juan"}, Files: map[string]string{"id_photo": "photo.jpg"}}
	if err := svc.Precheck(context.Background(), ok); err != nil {
		t.Fatalf("precheck with pending upload: %v", err)
	}

	missing := SubmitInput{FormID: form.FormID, Data: resolver.Data{"fullName": "Juan"}}
	if got := apperror.KindOf(svc.Precheck(context.Background(), missing)); got != apperror.KindInvalidSubmissionData {
		t.Fatalf("kind without upload = %q", got)
	}

	store.count = 1
	if err := svc.Precheck(context.Background(), ok); !errors.Is(err, apperror.ErrLimitReached) {
		t.Fatalf("full form err = %v", err)
	}
	if err := svc.Precheck(context.Background(), SubmitInput{FormID: uuid.New()}); !errors.Is(err, apperror.ErrFormNotFound) {
		t.Fatalf("unknown form err = %v", err)
	}
	if len(store.created) != 0 {
		t.Fatalf("precheck created %d submissions", len(store.created))
	}
}

func storedSubmission(store *fakeStore, form *formModel.Form, data string) *submissionModel.FormSubmission {
	sub := &submissionModel.FormSubmission{
		FormSubmissionID:        uuid.New(),
		FormSubmissionFormID:    form.FormID,
		FormSubmissionData:      datatypes.JSON(data),
		FormSubmissionStatus:    submissionModel.SubmissionStatusPending,
		FormSubmissionSubmitted: fixedNow.Add(-24 * time.Hour),
		Form:                    form,
	}
	store.submissions[sub.FormSubmissionID] = sub
	return sub
}

func TestReview_NotifiesFromSubmittedEmail(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	form := openForm()
	eventDate := time.Date(2024, 8, 12, 0, 0, 0, 0, time.UTC)
	eventID := uuid.New()
	form.FormEventID = &eventID
	store.events[eventID] = &formModel.Event{EventID: eventID, EventTitle: "Linggo ng Kabataan", EventDate: &eventDate}
	sub := storedSubmission(store, form, `{"Full Name":"Juan Dela Cruz","Email":"juan@example.com"}`)

	sender := &recordingSender{}
	rec := &fakeReconciler{res: revenueService.SyncResult{Created: 1, TotalProcessed: 1}}
	svc := NewService(store, email.NewNotifier(sender, time.Second), validator.New(), WithClock(fixedClock), WithReconciler(rec))

	notes := "See you there"
	res, err := svc.Review(context.Background(), ReviewInput{SubmissionID: sub.FormSubmissionID, Status: "APPROVED", ReviewedBy: "SK Chair", Notes: &notes})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if res.Submission.FormSubmissionStatus != submissionModel.SubmissionStatusApproved {
		t.Fatalf("status = %q", res.Submission.FormSubmissionStatus)
	}
	if !res.Notification.Sent || res.Notification.Recipient != "juan@example.com" {
		t.Fatalf("notification = %+v", res.Notification)
	}
	if len(sender.sent) != 1 || sender.sent[0].ToName != "Juan Dela Cruz" {
		t.Fatalf("sent = %+v", sender.sent)
	}
	if res.Revenue == nil || !res.Revenue.OK || res.Revenue.Created != 1 || rec.calls != 1 {
		t.Fatalf("revenue report = %+v (calls=%d)", res.Revenue, rec.calls)
	}
	if res.Submission.FormSubmissionReviewedAt == nil || !res.Submission.FormSubmissionReviewedAt.Equal(fixedNow) {
		t.Fatalf("reviewedAt = %v", res.Submission.FormSubmissionReviewedAt)
	}
}

func TestReview_PrefersLinkedUser(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	form := openForm()
	sub := storedSubmission(store, form, `{"Email":"typed@example.com"}`)
	userID := uuid.New()
	full := "Maria Clara"
	store.users[userID] = &userModel.UserModel{ID: userID, UserName: "maria", FullName: &full, Email: "maria@example.com"}
	sub.FormSubmissionUserID = &userID

	sender := &recordingSender{}
	svc := NewService(store, email.NewNotifier(sender, time.Second), validator.New(), WithClock(fixedClock))

	res, err := svc.Review(context.Background(), ReviewInput{SubmissionID: sub.FormSubmissionID, Status: "rejected", ReviewedBy: "Admin"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if res.Notification.Recipient != "maria@example.com" || sender.sent[0].ToName != "Maria Clara" {
		t.Fatalf("notification = %+v, sent = %+v", res.Notification, sender.sent)
	}
	if res.Revenue != nil {
		t.Fatalf("rejected review should not reconcile")
	}
}

func TestReview_NotificationFailureKeepsStatus(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	sub := storedSubmission(store, openForm(), `{"email":"juan@example.com"}`)
	sender := &recordingSender{err: errors.New("smtp: 421 service not available")}
	rec := &fakeReconciler{err: errors.New("db down")}
	svc := NewService(store, email.NewNotifier(sender, time.Second), validator.New(), WithClock(fixedClock), WithReconciler(rec))

	res, err := svc.Review(context.Background(), ReviewInput{SubmissionID: sub.FormSubmissionID, Status: "APPROVED"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if res.Submission.FormSubmissionStatus != submissionModel.SubmissionStatusApproved || store.reviews != 1 {
		t.Fatalf("status not persisted")
	}
	if res.Notification.Sent || res.Notification.Error == "" {
		t.Fatalf("notification = %+v", res.Notification)
	}
	if res.Revenue == nil || res.Revenue.OK || res.Revenue.Error != "db down" {
		t.Fatalf("revenue = %+v", res.Revenue)
	}
}

func TestReview_NoRecipient(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	sub := storedSubmission(store, openForm(), `{"Full Name":"Walk-in"}`)
	sender := &recordingSender{}
	svc := NewService(store, email.NewNotifier(sender, time.Second), validator.New(), WithClock(fixedClock))

	res, err := svc.Review(context.Background(), ReviewInput{SubmissionID: sub.FormSubmissionID, Status: "REJECTED"})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	if res.Notification.Sent || res.Notification.Skipped != email.SkippedNoRecipient || len(sender.sent) != 0 {
		t.Fatalf("notification = %+v", res.Notification)
	}
}

func TestReview_Errors(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	sub := storedSubmission(store, openForm(), `{}`)
	svc := NewService(store, nil, validator.New(), WithClock(fixedClock))

	if _, err := svc.Review(context.Background(), ReviewInput{SubmissionID: sub.FormSubmissionID, Status: "PENDING"}); !errors.Is(err, apperror.ErrInvalidStatus) {
		t.Fatalf("err = %v, want InvalidStatus", err)
	}
	if _, err := svc.Review(context.Background(), ReviewInput{SubmissionID: uuid.New(), Status: "APPROVED"}); !errors.Is(err, apperror.ErrSubmissionNotFound) {
		t.Fatalf("err = %v, want SubmissionNotFound", err)
	}

	store.saveErr = errors.New("write failed")
	_, err := svc.Review(context.Background(), ReviewInput{SubmissionID: sub.FormSubmissionID, Status: "APPROVED"})
	if apperror.KindOf(err) != apperror.KindStorage {
		t.Fatalf("err = %v, want storage error", err)
	}
}
