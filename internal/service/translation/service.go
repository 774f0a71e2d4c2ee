package translation

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg translation . translationRepo keyRepo languageRepo accessChecker activityRecorder txManager

type translationRepo interface {
	Upsert(ctx context.Context, t domain.Translation) (*domain.Translation, error)
	Get(ctx context.Context, keyID, languageID int64) (*domain.Translation, error)
	SetState(ctx context.Context, id int64, state domain.TranslationState) (*domain.Translation, error)
	ListByLanguage(ctx context.Context, languageID int64) ([]domain.Translation, error)
}

type keyRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Key, error)
}

type languageRepo interface {
	GetByTag(ctx context.Context, projectID int64, tag string) (*domain.Language, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Language, error)
}

type accessChecker interface {
	CheckAccess(ctx context.Context, projectID int64, scope domain.Scope) error
}

type activityRecorder interface {
	CreateRevision(ctx context.Context, rev *domain.ActivityRevision) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service edits translation texts and review states.
type Service struct {
	translations translationRepo
	keys         keyRepo
	languages    languageRepo
	access       accessChecker
	activity     activityRecorder
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new translation service.
func NewService(
	log *slog.Logger,
	translations translationRepo,
	keys keyRepo,
	languages languageRepo,
	access accessChecker,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		translations: translations,
		keys:         keys,
		languages:    languages,
		access:       access,
		activity:     activity,
		tx:           tx,
		log:          log.With("service", "translation"),
	}
}
