package activity

import (
	"context"
	"fmt"
	"log/slog"

	pipeline "github.com/heartmarshall/localize-backend/internal/activity"
	"github.com/heartmarshall/localize-backend/internal/config"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg activity . activityRepo accessChecker

type activityRepo interface {
	ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]domain.ActivityRevision, error)
	GetByID(ctx context.Context, projectID, revisionID int64) (*domain.ActivityRevision, error)
	CountByProject(ctx context.Context, projectID int64) (int, error)
}

type accessChecker interface {
	CheckAccess(ctx context.Context, projectID int64, scope domain.Scope) error
}

// Service serves the project activity feed.
type Service struct {
	revisions activityRepo
	access    accessChecker
	assembler *pipeline.Assembler
	cfg       config.ActivityConfig
	log       *slog.Logger
}

// NewService creates a new activity feed service.
func NewService(
	log *slog.Logger,
	revisions activityRepo,
	access accessChecker,
	assembler *pipeline.Assembler,
	cfg config.ActivityConfig,
) *Service {
	return &Service{
		revisions: revisions,
		access:    access,
		assembler: assembler,
		cfg:       cfg,
		log:       log.With("service", "activity"),
	}
}

// Page is one page of the activity feed, newest first.
type Page struct {
	Items []pipeline.Activity
	Page  int
	Size  int
	Total int
}

// ListInput selects a feed page. Page is zero-based.
type ListInput struct {
	ProjectID int64
	Page      int
	Size      int
}

// List returns a page of the project feed. Each revision shows only the
// entities and fields declared for its action type.
func (s *Service) List(ctx context.Context, input ListInput) (*Page, error) {
	if input.Page < 0 {
		return nil, domain.NewValidationError("page", "must be positive")
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeActivityView); err != nil {
		return nil, err
	}

	size := s.cfg.ClampPageSize(input.Size)
	revs, err := s.revisions.ListByProject(ctx, input.ProjectID, size, input.Page*size)
	if err != nil {
		return nil, fmt.Errorf("activity.List: %w", err)
	}
	total, err := s.revisions.CountByProject(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("activity.List count: %w", err)
	}

	return &Page{
		Items: s.assembler.AssembleAll(revs, true),
		Page:  input.Page,
		Size:  size,
		Total: total,
	}, nil
}

// Get returns one revision with every configured entity type and field.
func (s *Service) Get(ctx context.Context, projectID, revisionID int64) (*pipeline.Activity, error) {
	if err := s.access.CheckAccess(ctx, projectID, domain.ScopeActivityView); err != nil {
		return nil, err
	}
	rev, err := s.revisions.GetByID(ctx, projectID, revisionID)
	if err != nil {
		return nil, fmt.Errorf("activity.Get: %w", err)
	}
	result := s.assembler.Assemble(*rev, false)
	return &result, nil
}
