package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

// AuthResult is returned by Register and Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}

// Register creates a password user and signs them in. A taken email yields
// ErrAlreadyExists; uniqueness is enforced by the users_email_key constraint.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register hash password: %w", err)
	}

	var user *domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		user, err = s.users.Create(txCtx, domain.User{
			Email:        input.Email,
			Name:         input.Name,
			PasswordHash: string(hash),
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.Int64("user_id", user.ID))
	return result, nil
}

// Login checks an email and password. Unknown emails and wrong passwords
// both yield ErrUnauthorized after a bcrypt comparison of similar cost.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = normalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(s.dummyHash(), []byte(input.Password))
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.Int64("user_id", user.ID))
	return result, nil
}

func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	issuedAt := s.now()
	token, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{
		AccessToken: token,
		ExpiresAt:   issuedAt.Add(s.cfg.AccessTokenTTL),
		User:        user,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
