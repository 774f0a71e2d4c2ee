package project

import (
	"context"
	"fmt"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
)

// CheckAccess verifies that the caller may use scope on the project.
// An API key is limited to its own project and scopes; a user must own the
// project. An empty scope only requires access to the project.
func (s *Service) CheckAccess(ctx context.Context, projectID int64, scope domain.Scope) error {
	if key, ok := ctxutil.APIKeyFromCtx(ctx); ok {
		if key.ProjectID != projectID {
			return domain.ErrForbidden
		}
		if scope != "" && !key.Allows(projectID, scope.String()) {
			return domain.ErrForbidden
		}
		return nil
	}

	_, err := s.ownedProject(ctx, projectID)
	return err
}

// CheckOwner verifies that the authenticated user owns the project.
// API keys never pass this check.
func (s *Service) CheckOwner(ctx context.Context, projectID int64) error {
	_, err := s.ownedProject(ctx, projectID)
	return err
}

// ownedProject loads a project and checks that the authenticated user owns it.
func (s *Service) ownedProject(ctx context.Context, projectID int64) (*domain.Project, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if _, isKey := ctxutil.APIKeyFromCtx(ctx); isKey {
		return nil, domain.ErrForbidden
	}

	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	if p.OwnerID != userID {
		return nil, domain.ErrForbidden
	}
	return p, nil
}
