// Package translation implements the Translation repository using PostgreSQL.
package translation

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/localize-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

var columns = []string{"id", "key_id", "language_id", "text", "state", "auto", "mt_provider", "updated_at"}

// Repo provides translation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new translation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert inserts the translation of a key in a language or replaces the
// existing one's text, state and machine-translation flags.
func (r *Repo) Upsert(ctx context.Context, t domain.Translation) (*domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	saved, err := scanTranslation(postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("translations").
		Columns("key_id", "language_id", "text", "state", "auto", "mt_provider").
		Values(t.KeyID, t.LanguageID, t.Text, string(t.State), t.Auto, t.MTProvider).
		Suffix(`ON CONFLICT (key_id, language_id) DO UPDATE SET
			text = EXCLUDED.text,
			state = EXCLUDED.state,
			auto = EXCLUDED.auto,
			mt_provider = EXCLUDED.mt_provider,
			updated_at = now()
			RETURNING `+postgres.JoinColumns(columns))))
	if err != nil {
		return nil, postgres.MapError(err, "translation of key", t.KeyID)
	}
	return &saved, nil
}

// Get returns the translation of a key in a language.
func (r *Repo) Get(ctx context.Context, keyID, languageID int64) (*domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTranslation(postgres.QueryRow(ctx, q, postgres.Builder().
		Select(columns...).From("translations").
		Where(squirrel.Eq{"key_id": keyID, "language_id": languageID})))
	if err != nil {
		return nil, postgres.MapError(err, "translation of key", keyID)
	}
	return &t, nil
}

// SetState changes the review state of a translation.
func (r *Repo) SetState(ctx context.Context, id int64, state domain.TranslationState) (*domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	t, err := scanTranslation(postgres.QueryRow(ctx, q, postgres.Builder().
		Update("translations").
		Set("state", string(state)).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING "+postgres.JoinColumns(columns))))
	if err != nil {
		return nil, postgres.MapError(err, "translation", id)
	}
	return &t, nil
}

// ListByKeys returns the translations of the given keys.
func (r *Repo) ListByKeys(ctx context.Context, keyIDs []int64) ([]domain.Translation, error) {
	if len(keyIDs) == 0 {
		return []domain.Translation{}, nil
	}
	return r.collect(ctx, squirrel.Eq{"key_id": keyIDs})
}

// ListByLanguage returns every translation in a language.
func (r *Repo) ListByLanguage(ctx context.Context, languageID int64) ([]domain.Translation, error) {
	return r.collect(ctx, squirrel.Eq{"language_id": languageID})
}

func (r *Repo) collect(ctx context.Context, where squirrel.Eq) ([]domain.Translation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select(columns...).From("translations").
		Where(where).
		OrderBy("key_id ASC", "language_id ASC"))
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	defer rows.Close()

	out := []domain.Translation{}
	for rows.Next() {
		t, err := scanTranslation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}
	return out, nil
}

func scanTranslation(row pgx.Row) (domain.Translation, error) {
	var (
		t     domain.Translation
		state string
	)
	if err := row.Scan(&t.ID, &t.KeyID, &t.LanguageID, &t.Text, &state, &t.Auto, &t.MTProvider, &t.UpdatedAt); err != nil {
		return domain.Translation{}, fmt.Errorf("scan translation: %w", err)
	}
	t.State = domain.TranslationState(state)
	return t, nil
}
