package apikey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/localize-backend/internal/auth"
	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
)

// Create issues a new API key for a project. Only the project owner may
// issue keys; the key inherits the owner as its user.
func (s *Service) Create(ctx context.Context, input CreateInput) (*CreateResult, error) {
	if err := input.Validate(s.now()); err != nil {
		return nil, err
	}
	if err := s.owners.CheckOwner(ctx, input.ProjectID); err != nil {
		return nil, err
	}
	userID, _ := ctxutil.UserIDFromCtx(ctx)

	raw, hash, err := auth.GenerateAPIKey(s.prefix)
	if err != nil {
		return nil, fmt.Errorf("apikey.Create: %w", err)
	}

	scopes := slices.Clone(input.Scopes)
	slices.Sort(scopes)
	scopes = slices.Compact(scopes)

	key, err := s.keys.Create(ctx, domain.APIKey{
		ProjectID:   input.ProjectID,
		UserID:      userID,
		KeyHash:     hash,
		Description: strings.TrimSpace(input.Description),
		Scopes:      scopes,
		ExpiresAt:   input.ExpiresAt,
	})
	if err != nil {
		return nil, fmt.Errorf("apikey.Create: %w", err)
	}

	s.log.InfoContext(ctx, "api key created",
		slog.Int64("project_id", input.ProjectID),
		slog.Int64("api_key_id", key.ID),
	)
	return &CreateResult{Key: key, RawKey: raw}, nil
}

// List returns the API keys of a project without their secrets.
func (s *Service) List(ctx context.Context, projectID int64) ([]domain.APIKey, error) {
	if err := s.owners.CheckOwner(ctx, projectID); err != nil {
		return nil, err
	}
	keys, err := s.keys.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("apikey.List: %w", err)
	}
	return keys, nil
}

// Delete revokes an API key.
func (s *Service) Delete(ctx context.Context, projectID, keyID int64) error {
	if err := s.owners.CheckOwner(ctx, projectID); err != nil {
		return err
	}
	if err := s.keys.Delete(ctx, projectID, keyID); err != nil {
		return fmt.Errorf("apikey.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "api key deleted",
		slog.Int64("project_id", projectID),
		slog.Int64("api_key_id", keyID),
	)
	return nil
}

// Authenticate resolves a raw API key. Unknown and expired keys yield
// ErrUnauthorized.
func (s *Service) Authenticate(ctx context.Context, raw string) (*domain.APIKey, error) {
	if !strings.HasPrefix(raw, s.prefix) {
		return nil, domain.ErrUnauthorized
	}

	key, err := s.keys.GetByHash(ctx, auth.HashToken(raw))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("apikey.Authenticate: %w", err)
	}

	now := s.now()
	if key.IsExpired(now) {
		return nil, domain.ErrUnauthorized
	}

	if err := s.keys.TouchLastUsed(ctx, key.ID, now); err != nil {
		s.log.WarnContext(ctx, "touch api key failed",
			slog.Int64("api_key_id", key.ID),
			slog.String("error", err.Error()),
		)
	}
	return key, nil
}
