package project

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg project . projectRepo languageRepo activityRecorder txManager

type projectRepo interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error)
	Update(ctx context.Context, id int64, params domain.ProjectUpdateParams) (*domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

type languageRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Language, error)
}

type activityRecorder interface {
	CreateRevision(ctx context.Context, rev *domain.ActivityRevision) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides project management and project access checks.
type Service struct {
	projects  projectRepo
	languages languageRepo
	activity  activityRecorder
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new project service.
func NewService(
	log *slog.Logger,
	projects projectRepo,
	languages languageRepo,
	activity activityRecorder,
	tx txManager,
) *Service {
	return &Service{
		projects:  projects,
		languages: languages,
		activity:  activity,
		tx:        tx,
		log:       log.With("service", "project"),
	}
}
