package importer

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localize-backend/internal/config"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg importer . languageRepo keyRepo translationRepo accessChecker activityRecorder txManager

type languageRepo interface {
	GetByTag(ctx context.Context, projectID int64, tag string) (*domain.Language, error)
	Create(ctx context.Context, l domain.Language) (*domain.Language, error)
}

type keyRepo interface {
	ListByNames(ctx context.Context, projectID int64, names []string) ([]domain.Key, error)
	Create(ctx context.Context, k domain.Key) (*domain.Key, error)
}

type translationRepo interface {
	ListByLanguage(ctx context.Context, languageID int64) ([]domain.Translation, error)
	Upsert(ctx context.Context, t domain.Translation) (*domain.Translation, error)
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

// Service imports translation documents into a project language.
type Service struct {
	languages    languageRepo
	keys         keyRepo
	translations translationRepo
	access       accessChecker
	activity     activityRecorder
	tx           txManager
	cfg          config.ImportConfig
	log          *slog.Logger
}

// NewService creates a new import service.
func NewService(
	log *slog.Logger,
	languages languageRepo,
	keys keyRepo,
	translations translationRepo,
	access accessChecker,
	activity activityRecorder,
	tx txManager,
	cfg config.ImportConfig,
) *Service {
	return &Service{
		languages:    languages,
		keys:         keys,
		translations: translations,
		access:       access,
		activity:     activity,
		tx:           tx,
		cfg:          cfg,
		log:          log.With("service", "importer"),
	}
}

// ProgressFunc is called after each processed entry with the number of
// entries done so far and the total.
type ProgressFunc func(done, total int)

// Result summarizes an import.
type Result struct {
	LanguageID      int64
	LanguageCreated bool
	Entries         int
	KeysCreated     int
	Translated      int
	Unchanged       int
	Skipped         int
}
