package language

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg language . languageRepo accessChecker activityRecorder txManager

type languageRepo interface {
	Create(ctx context.Context, l domain.Language) (*domain.Language, error)
	GetByID(ctx context.Context, id int64) (*domain.Language, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.Language, error)
	Update(ctx context.Context, id int64, params domain.LanguageUpdateParams) (*domain.Language, error)
	Delete(ctx context.Context, id int64) error
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

// Service manages the languages of a project.
type Service struct {
	languages languageRepo
	access    accessChecker
	activity  activityRecorder
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new language service.
func NewService(
	log *slog.Logger,
	languages languageRepo,
	access accessChecker,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		languages: languages,
		access:    access,
		activity:  activity,
		tx:        tx,
		log:       log.With("service", "language"),
	}
}
