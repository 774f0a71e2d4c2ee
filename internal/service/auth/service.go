package auth

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/localize-backend/internal/config"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

//go:generate moq -out mocks_test.go -pkg auth . userRepo txManager jwtManager

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user domain.User) (*domain.User, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID int64) (string, error)
	ValidateAccessToken(token string) (int64, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	tx    txManager
	jwt   jwtManager
	cfg   config.AuthConfig
	now   func() time.Time

	// dummyHash is compared against on logins for unknown emails.
	dummyHash func() []byte
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		tx:    tx,
		jwt:   jwt,
		cfg:   cfg,
		now:   time.Now,
		dummyHash: sync.OnceValue(func() []byte {
			hash, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), cfg.BcryptCost)
			return hash
		}),
	}
}

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (int64, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}
	return userID, nil
}

// Me returns the user behind the current access token.
func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("auth.Me: %w", err)
	}
	return user, nil
}
