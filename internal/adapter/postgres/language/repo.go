// Package language implements the project Language repository using PostgreSQL.
package language

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/localize-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

var columns = []string{"id", "project_id", "tag", "name", "original_name", "flag_emoji"}

// Repo provides language persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new language repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a language. A duplicate tag within a project yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, l domain.Language) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanLanguage(postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("languages").
		Columns("project_id", "tag", "name", "original_name", "flag_emoji").
		Values(l.ProjectID, l.Tag, l.Name, l.OriginalName, l.FlagEmoji).
		Suffix("RETURNING "+postgres.JoinColumns(columns))))
	if err != nil {
		return nil, postgres.MapError(err, "language", 0)
	}
	return &created, nil
}

// GetByID returns a language by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLanguage(postgres.QueryRow(ctx, q, postgres.Builder().
		Select(columns...).From("languages").
		Where(squirrel.Eq{"id": id})))
	if err != nil {
		return nil, postgres.MapError(err, "language", id)
	}
	return &l, nil
}

// GetByTag returns the language of a project with the given canonical tag.
func (r *Repo) GetByTag(ctx context.Context, projectID int64, tag string) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLanguage(postgres.QueryRow(ctx, q, postgres.Builder().
		Select(columns...).From("languages").
		Where(squirrel.Eq{"project_id": projectID, "tag": tag})))
	if err != nil {
		return nil, postgres.MapError(err, "language "+tag+" of project", projectID)
	}
	return &l, nil
}

// ListByProject returns all languages of a project ordered by tag.
func (r *Repo) ListByProject(ctx context.Context, projectID int64) ([]domain.Language, error) {
	return r.list(ctx, squirrel.Eq{"project_id": projectID})
}

// ListByIDs returns the languages with the given ids in unspecified order.
// Missing ids are silently skipped.
func (r *Repo) ListByIDs(ctx context.Context, ids []int64) ([]domain.Language, error) {
	if len(ids) == 0 {
		return []domain.Language{}, nil
	}
	return r.list(ctx, squirrel.Eq{"id": ids})
}

func (r *Repo) list(ctx context.Context, where squirrel.Eq) ([]domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select(columns...).From("languages").
		Where(where).
		OrderBy("tag ASC"))
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	langs := []domain.Language{}
	for rows.Next() {
		l, err := scanLanguage(rows)
		if err != nil {
			return nil, err
		}
		langs = append(langs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return langs, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id int64, params domain.LanguageUpdateParams) (*domain.Language, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update("languages").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + postgres.JoinColumns(columns))
	set := 0
	if params.Name != nil {
		b, set = b.Set("name", *params.Name), set+1
	}
	if params.Tag != nil {
		b, set = b.Set("tag", *params.Tag), set+1
	}
	if params.OriginalName != nil {
		b, set = b.Set("original_name", *params.OriginalName), set+1
	}
	if params.FlagEmoji != nil {
		b, set = b.Set("flag_emoji", *params.FlagEmoji), set+1
	}
	if set == 0 {
		return r.GetByID(ctx, id)
	}

	l, err := scanLanguage(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "language", id)
	}
	return &l, nil
}

// Delete removes a language and its translations.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("languages").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "language", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("language %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanLanguage(row pgx.Row) (domain.Language, error) {
	var l domain.Language
	if err := row.Scan(&l.ID, &l.ProjectID, &l.Tag, &l.Name, &l.OriginalName, &l.FlagEmoji); err != nil {
		return domain.Language{}, fmt.Errorf("scan language: %w", err)
	}
	return l, nil
}
