package key

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg key . keyRepo languageRepo translationRepo accessChecker activityRecorder txManager

type keyRepo interface {
	Create(ctx context.Context, k domain.Key) (*domain.Key, error)
	GetByID(ctx context.Context, id int64) (*domain.Key, error)
	List(ctx context.Context, projectID int64, f domain.KeyFilter) ([]domain.Key, int, error)
	Rename(ctx context.Context, id int64, name string) (*domain.Key, error)
	Delete(ctx context.Context, id int64) error
}

type languageRepo interface {
	ListByProject(ctx context.Context, projectID int64) ([]domain.Language, error)
}

type translationRepo interface {
	Upsert(ctx context.Context, t domain.Translation) (*domain.Translation, error)
	ListByKeys(ctx context.Context, keyIDs []int64) ([]domain.Translation, error)
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

// Service manages translation keys.
type Service struct {
	keys         keyRepo
	languages    languageRepo
	translations translationRepo
	access       accessChecker
	activity     activityRecorder
	tx           txManager
	log          *slog.Logger
}

// NewService creates a new key service.
func NewService(
	log *slog.Logger,
	keys keyRepo,
	languages languageRepo,
	translations translationRepo,
	access accessChecker,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		keys:         keys,
		languages:    languages,
		translations: translations,
		access:       access,
		activity:     activity,
		tx:           tx,
		log:          log.With("service", "key"),
	}
}

// ListResult is a page of keys with their translations.
type ListResult struct {
	Keys  []domain.KeyWithTranslations
	Total int
}
