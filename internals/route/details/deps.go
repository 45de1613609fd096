package details

import (
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"skyouth_backend/internals/configs"
	revenueRepository "skyouth_backend/internals/features/finance/revenues/repository"
	revenueService "skyouth_backend/internals/features/finance/revenues/service"
	formRepository "skyouth_backend/internals/features/forms/forms/repository"
	submissionRepository "skyouth_backend/internals/features/forms/submissions/repository"
	submissionService "skyouth_backend/internals/features/forms/submissions/service"
	"skyouth_backend/internals/features/notifications/email"
	profileRepository "skyouth_backend/internals/features/youth/profiles/repository"
	profileService "skyouth_backend/internals/features/youth/profiles/service"
	helper "skyouth_backend/internals/helpers"
	"skyouth_backend/internals/helpers/storage"
)

// Deps dibangun sekali saat startup lalu dibagikan ke semua route detail.
type Deps struct {
	Cfg      configs.Config
	Validate *validator.Validate
	Uploader *storage.Uploader

	Forms *formRepository.FormRepository

	Submissions       *submissionRepository.SubmissionRepository
	SubmissionService *submissionService.Service

	Revenues   *revenueRepository.RevenueRepository
	Reconciler *revenueService.Reconciler

	Profiles       *profileRepository.YouthProfileRepository
	ProfileService *profileService.Service
}

func NewDeps(db *gorm.DB, cfg configs.Config) (*Deps, error) {
	blobs, err := storage.NewBlobServiceFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	v := helper.NewValidator()
	notifier := email.NewNotifier(email.NewSender(cfg), cfg.SendTimeout)

	revenues := revenueRepository.NewRevenueRepository(db)
	reconciler := revenueService.NewReconciler(revenues, revenueService.WithSyncTimeout(cfg.SyncTimeout))

	submissions := submissionRepository.NewSubmissionRepository(db)
	profiles := profileRepository.NewYouthProfileRepository(db)

	return &Deps{
		Cfg:      cfg,
		Validate: v,
		Uploader: storage.NewUploader(blobs, cfg),

		Forms: formRepository.NewFormRepository(db),

		Submissions:       submissions,
		SubmissionService: submissionService.NewService(submissions, notifier, v, submissionService.WithReconciler(reconciler)),

		Revenues:   revenues,
		Reconciler: reconciler,

		Profiles:       profiles,
		ProfileService: profileService.NewService(profiles),
	}, nil
}
