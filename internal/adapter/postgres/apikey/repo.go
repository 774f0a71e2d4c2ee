// Package apikey implements the project API key repository using PostgreSQL.
package apikey

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/localize-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

var columns = []string{"id", "project_id", "user_id", "key_hash", "description", "scopes", "expires_at", "last_used_at", "created_at"}

// Repo provides API key persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new API key repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create stores a new API key. Only the hash of the raw key is persisted.
func (r *Repo) Create(ctx context.Context, k domain.APIKey) (*domain.APIKey, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanAPIKey(postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("api_keys").
		Columns("project_id", "user_id", "key_hash", "description", "scopes", "expires_at").
		Values(k.ProjectID, k.UserID, k.KeyHash, k.Description, scopesToStrings(k.Scopes), k.ExpiresAt).
		Suffix("RETURNING "+postgres.JoinColumns(columns))))
	if err != nil {
		return nil, postgres.MapError(err, "api_key", 0)
	}
	return &created, nil
}

// GetByHash returns the key whose hash matches.
func (r *Repo) GetByHash(ctx context.Context, hash string) (*domain.APIKey, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	k, err := scanAPIKey(postgres.QueryRow(ctx, q, postgres.Builder().
		Select(columns...).From("api_keys").
		Where(squirrel.Eq{"key_hash": hash})))
	if err != nil {
		return nil, postgres.MapError(err, "api_key", 0)
	}
	return &k, nil
}

// ListByProject returns the API keys of a project, newest first.
func (r *Repo) ListByProject(ctx context.Context, projectID int64) ([]domain.APIKey, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select(columns...).From("api_keys").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("id DESC"))
	if err != nil {
		return nil, fmt.Errorf("list api_keys: %w", err)
	}
	defer rows.Close()

	keys := []domain.APIKey{}
	for rows.Next() {
		k, err := scanAPIKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list api_keys: %w", err)
	}
	return keys, nil
}

// TouchLastUsed records the time a key was last used.
func (r *Repo) TouchLastUsed(ctx context.Context, id int64, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := postgres.Exec(ctx, q, postgres.Builder().
		Update("api_keys").
		Set("last_used_at", at).
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "api_key", id)
	}
	return nil
}

// Delete removes an API key of a project.
func (r *Repo) Delete(ctx context.Context, projectID, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("api_keys").
		Where(squirrel.Eq{"id": id, "project_id": projectID}))
	if err != nil {
		return postgres.MapError(err, "api_key", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("api_key %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanAPIKey(row pgx.Row) (domain.APIKey, error) {
	var (
		k      domain.APIKey
		scopes []string
	)
	err := row.Scan(&k.ID, &k.ProjectID, &k.UserID, &k.KeyHash, &k.Description, &scopes, &k.ExpiresAt, &k.LastUsedAt, &k.CreatedAt)
	if err != nil {
		return domain.APIKey{}, fmt.Errorf("scan api_key: %w", err)
	}
	k.Scopes = make([]domain.Scope, len(scopes))
	for i, s := range scopes {
		k.Scopes[i] = domain.Scope(s)
	}
	return k, nil
}

func scopesToStrings(scopes []domain.Scope) []string {
	out := make([]string, len(scopes))
	for i, s := range scopes {
		out[i] = string(s)
	}
	return out
}
