package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/text/cases"
	"gorm.io/gorm"

	"skyouth_backend/internals/features/forms/resolver"
	submissionModel "skyouth_backend/internals/features/forms/submissions/model"
	"skyouth_backend/internals/features/youth/profiles/model"
	"skyouth_backend/internals/helpers/apperror"
	"skyouth_backend/internals/helpers/besteffort"
	"skyouth_backend/internals/helpers/dbtime"
)

// RegistrationMarker must appear (case-folded) in the title of a youth registration form.
const RegistrationMarker = "youth registration"

// Store is what profile synthesis needs. Missing rows come back as gorm.ErrRecordNotFound.
type Store interface {
	FindSubmission(ctx context.Context, id uuid.UUID) (*submissionModel.FormSubmission, error)
	SaveNotes(ctx context.Context, submissionID uuid.UUID, notes *string) error
	FindByIdentityHash(ctx context.Context, hash string) (*model.YouthProfile, error)
	TrackingIDExists(ctx context.Context, trackingID string) (bool, error)
	CreateProfile(ctx context.Context, p *model.YouthProfile) error
	FindProfile(ctx context.Context, id uuid.UUID) (*model.YouthProfile, error)
}

type Service struct {
	store       Store
	now         func() time.Time
	randN       func(n int) int
	noteTimeout time.Duration
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithRandom replaces the tracking number source; randN must return [0, n).
func WithRandom(randN func(n int) int) Option {
	return func(s *Service) { s.randN = randN }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		now:         time.Now,
		randN:       defaultRandN,
		noteTimeout: 3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type AutoCreateInput struct {
	SubmissionID uuid.UUID
	FormTitle    string
}

type AutoCreateResult struct {
	Profile *model.YouthProfile `json:"profile"`
	Note    besteffort.Report   `json:"note"`
}

// IsRegistrationTitle reports whether title names a youth registration form.
func IsRegistrationTitle(title string) bool {
	return strings.Contains(cases.Fold().String(title), RegistrationMarker)
}

/* =========================================================
   AUTO CREATE
   - gate: judul form harus "youth registration"
   - duplicate: (nama lengkap, nomor HP, tanggal lahir)
   On DUPLICATE_PROFILE the result carries the existing profile.
========================================================= */
func (s *Service) AutoCreate(ctx context.Context, in AutoCreateInput) (AutoCreateResult, error) {
	title := strings.TrimSpace(in.FormTitle)
	if title != "" && !IsRegistrationTitle(title) {
		return AutoCreateResult{}, apperror.ErrUnsupportedForm
	}

	sub, err := s.store.FindSubmission(ctx, in.SubmissionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AutoCreateResult{}, apperror.ErrSubmissionNotFound
		}
		return AutoCreateResult{}, apperror.Storage("load submission", err)
	}
	if title == "" && (sub.Form == nil || !IsRegistrationTitle(sub.Form.FormTitle)) {
		return AutoCreateResult{}, apperror.ErrUnsupportedForm
	}

	data, err := resolver.ParseData(sub.FormSubmissionData)
	if err != nil {
		return AutoCreateResult{}, apperror.Wrap(apperror.KindInvalidSubmissionData, "submission data is not valid JSON", err)
	}

	profile, err := s.Build(data, &sub.FormSubmissionID)
	if err != nil {
		return AutoCreateResult{}, err
	}

	existing, err := s.store.FindByIdentityHash(ctx, profile.YouthProfileIdentityHash)
	switch {
	case err == nil:
		return AutoCreateResult{Profile: existing}, duplicateOf(existing)
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return AutoCreateResult{}, apperror.Storage("check duplicate profile", err)
	}

	existing, err = s.insert(ctx, profile)
	if err != nil {
		return AutoCreateResult{Profile: existing}, err
	}
	log.Printf("[INFO] youth profile %s created from submission %s", profile.YouthProfileTrackingID, sub.FormSubmissionID)

	note := besteffort.Run(ctx, "annotate submission", s.noteTimeout, func(ctx context.Context) error {
		sub.AppendNote("Youth profile created: " + profile.YouthProfileTrackingID)
		return s.store.SaveNotes(ctx, sub.FormSubmissionID, sub.FormSubmissionNotes)
	})

	return AutoCreateResult{Profile: profile, Note: note}, nil
}

// insert draws tracking ids until one sticks. A unique violation on the identity hash
// means a concurrent request created the same person first.
func (s *Service) insert(ctx context.Context, p *model.YouthProfile) (*model.YouthProfile, error) {
	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		id := s.nextTrackingID()
		taken, err := s.store.TrackingIDExists(ctx, id)
		if err != nil {
			return nil, apperror.Storage("check tracking id", err)
		}
		if taken {
			continue
		}

		p.YouthProfileTrackingID = id
		err = s.store.CreateProfile(ctx, p)
		if err == nil {
			return nil, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.Storage("create youth profile", err)
		}
		if existing, ferr := s.store.FindByIdentityHash(ctx, p.YouthProfileIdentityHash); ferr == nil {
			return existing, duplicateOf(existing)
		}
	}
	return nil, apperror.New(apperror.KindConflict, "could not allocate a unique tracking id")
}

// Build maps submission data onto a new profile without touching the store.
func (s *Service) Build(data resolver.Data, submissionID *uuid.UUID) (*model.YouthProfile, error) {
	v := Profile.LookupAll(data)

	fullName := v[AttrFullName]
	if fullName == "" {
		fullName = ComposeFullName(v[AttrFirstName], v[AttrMiddleName], v[AttrLastName], v[AttrSuffix])
	}
	dob, dobOK := ParseDate(v[AttrDateOfBirth])

	missing := map[string][]string{}
	if fullName == "" {
		missing[AttrFullName] = []string{"full name is required"}
	}
	if !dobOK {
		missing[AttrDateOfBirth] = []string{"a valid date of birth is required"}
	}
	if len(missing) > 0 {
		return nil, apperror.Invalid("submission lacks required profile data", missing)
	}

	age := AgeOn(dob, dbtime.DateOf(s.now()))
	ageGroup := v[AttrYouthAgeGroup]
	if ageGroup == "" {
		ageGroup = AgeGroupFor(age)
	}
	mobile := v[AttrMobileNumber]

	p := &model.YouthProfile{
		YouthProfileFullName:    fullName,
		YouthProfileFirstName:   optional(v, AttrFirstName),
		YouthProfileMiddleName:  optional(v, AttrMiddleName),
		YouthProfileLastName:    optional(v, AttrLastName),
		YouthProfileSuffix:      optional(v, AttrSuffix),
		YouthProfileDateOfBirth: dob,
		YouthProfileAge:         age,
		YouthProfileGender:      optional(v, AttrGender),
		YouthProfileCivilStatus: optional(v, AttrCivilStatus),
		YouthProfileReligion:    optional(v, AttrReligion),

		YouthProfileMobileNumber: mobile,
		YouthProfileEmail:        optional(v, AttrEmail),
		YouthProfileAddress:      optional(v, AttrAddress),
		YouthProfilePurok:        optional(v, AttrPurok),
		YouthProfileBarangay:     optional(v, AttrBarangay),
		YouthProfileMunicipality: optional(v, AttrMunicipality),
		YouthProfileProvince:     optional(v, AttrProvince),
		YouthProfileRegion:       optional(v, AttrRegion),

		YouthProfileClassification: optional(v, AttrYouthClassification),
		YouthProfileAgeGroup:       ageGroup,
		YouthProfileEducationLevel: optional(v, AttrEducationLevel),
		YouthProfileSchoolName:     optional(v, AttrSchoolName),
		YouthProfileWorkStatus:     optional(v, AttrWorkStatus),
		YouthProfileOccupation:     optional(v, AttrOccupation),

		YouthProfileRegisteredSkVoter:       optionalBool(v, AttrRegisteredSkVoter),
		YouthProfileRegisteredNationalVoter: optionalBool(v, AttrRegisteredNationalVoter),
		YouthProfileVotedLastElection:       optionalBool(v, AttrVotedLastElection),
		YouthProfileAttendedKkAssembly:      optionalBool(v, AttrAttendedKkAssembly),

		YouthProfileIsPwd:        flag(v, AttrIsPwd),
		YouthProfileIsIndigenous: flag(v, AttrIsIndigenous),
		YouthProfileIsSoloParent: flag(v, AttrIsSoloParent),
		YouthProfileSpecialNeeds: pq.StringArray(SplitList(v[AttrSpecialNeeds])),
		YouthProfileSkills:       pq.StringArray(SplitList(v[AttrSkills])),

		YouthProfileEmergencyContactName:     optional(v, AttrEmergencyContactName),
		YouthProfileEmergencyContactNumber:   optional(v, AttrEmergencyContactNumber),
		YouthProfileEmergencyContactRelation: optional(v, AttrEmergencyContactRelation),

		YouthProfileStatus:             model.YouthProfileStatusActive,
		YouthProfileParticipation:      0,
		YouthProfileIdentityHash:       IdentityHash(fullName, mobile, dob),
		YouthProfileSourceSubmissionID: submissionID,
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.YouthProfile, error) {
	p, err := s.store.FindProfile(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.KindNotFound, "youth profile not found")
		}
		return nil, apperror.Storage("load youth profile", err)
	}
	return p, nil
}

/* ===================== small helpers ===================== */

func duplicateOf(existing *model.YouthProfile) error {
	return apperror.New(apperror.KindDuplicateProfile,
		fmt.Sprintf("youth profile already exists: %s", existing.YouthProfileTrackingID))
}

func optional(v map[string]string, attr string) *string {
	s, ok := v[attr]
	if !ok || s == "" {
		return nil
	}
	return &s
}

func optionalBool(v map[string]string, attr string) *bool {
	b, ok := ParseBool(v[attr])
	if !ok {
		return nil
	}
	return &b
}

func flag(v map[string]string, attr string) bool {
	b, _ := ParseBool(v[attr])
	return b
}
