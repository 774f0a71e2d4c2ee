package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
)

// Create creates a project owned by the authenticated user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.projects.Create(txCtx, domain.Project{
			OwnerID:     userID,
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
		})
		if err != nil {
			return fmt.Errorf("create project: %w", err)
		}

		rev := domain.NewRevision(created.ID, &userID, domain.ActivityCreateProject)
		rev.Add(domain.ProjectChange(nil, created))
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("project.Create: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.Int64("user_id", userID),
		slog.Int64("project_id", created.ID),
	)
	return created, nil
}

// Get returns a project the caller has access to.
func (s *Service) Get(ctx context.Context, projectID int64) (*domain.Project, error) {
	if err := s.CheckAccess(ctx, projectID, ""); err != nil {
		return nil, err
	}
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("project.Get: %w", err)
	}
	return p, nil
}

// List returns the projects owned by the authenticated user.
func (s *Service) List(ctx context.Context) ([]domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	projects, err := s.projects.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("project.List: %w", err)
	}
	return projects, nil
}

// Update changes project settings. Only the owner may update a project.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Project, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ProjectUpdateParams{BaseLanguageID: input.BaseLanguageID}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		params.Description = &description
	}

	var updated *domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.ownedProject(txCtx, input.ProjectID)
		if err != nil {
			return err
		}

		if input.BaseLanguageID != nil {
			lang, err := s.languages.GetByID(txCtx, *input.BaseLanguageID)
			if err != nil {
				return fmt.Errorf("get base language: %w", err)
			}
			if lang.ProjectID != old.ID {
				return domain.NewValidationError("base_language_id", "language belongs to another project")
			}
		}

		updated, err = s.projects.Update(txCtx, old.ID, params)
		if err != nil {
			return fmt.Errorf("update project: %w", err)
		}

		rev := domain.NewRevision(old.ID, ctxutil.AuthorID(txCtx), domain.ActivityEditProject)
		rev.Add(domain.ProjectChange(old, updated))
		if rev.IsEmpty() {
			return nil
		}
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("project.Update: %w", err)
	}

	s.log.InfoContext(ctx, "project updated", slog.Int64("project_id", input.ProjectID))
	return updated, nil
}

// Delete removes a project and everything it owns. Only the owner may delete
// a project.
func (s *Service) Delete(ctx context.Context, projectID int64) error {
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.ownedProject(txCtx, projectID); err != nil {
			return err
		}
		if err := s.projects.Delete(txCtx, projectID); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("project.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted", slog.Int64("project_id", projectID))
	return nil
}
