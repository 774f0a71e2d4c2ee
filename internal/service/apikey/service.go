package apikey

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg apikey . apiKeyRepo ownerChecker

type apiKeyRepo interface {
	Create(ctx context.Context, k domain.APIKey) (*domain.APIKey, error)
	GetByHash(ctx context.Context, hash string) (*domain.APIKey, error)
	ListByProject(ctx context.Context, projectID int64) ([]domain.APIKey, error)
	TouchLastUsed(ctx context.Context, id int64, at time.Time) error
	Delete(ctx context.Context, projectID, id int64) error
}

type ownerChecker interface {
	CheckOwner(ctx context.Context, projectID int64) error
}

// Service issues and verifies project API keys.
type Service struct {
	keys   apiKeyRepo
	owners ownerChecker
	prefix string
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new API key service. Raw keys start with prefix.
func NewService(log *slog.Logger, keys apiKeyRepo, owners ownerChecker, prefix string) *Service {
	return &Service{
		keys:   keys,
		owners: owners,
		prefix: prefix,
		now:    time.Now,
		log:    log.With("service", "apikey"),
	}
}

// CreateResult holds a new key. RawKey is returned only once.
type CreateResult struct {
	Key    *domain.APIKey
	RawKey string
}
