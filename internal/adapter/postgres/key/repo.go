// Package key implements the translation Key repository using PostgreSQL.
package key

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/localize-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

var columns = []string{"id", "project_id", "name", "created_at"}

// Repo provides key persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new key repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a key. A duplicate name within a project yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, k domain.Key) (*domain.Key, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanKey(postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("keys").
		Columns("project_id", "name").
		Values(k.ProjectID, k.Name).
		Suffix("RETURNING "+postgres.JoinColumns(columns))))
	if err != nil {
		return nil, postgres.MapError(err, "key", 0)
	}
	return &created, nil
}

// GetByID returns a key by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Key, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	k, err := scanKey(postgres.QueryRow(ctx, q, postgres.Builder().
		Select(columns...).From("keys").
		Where(squirrel.Eq{"id": id})))
	if err != nil {
		return nil, postgres.MapError(err, "key", id)
	}
	return &k, nil
}

// List returns a page of a project's keys and the total number of matches.
func (r *Repo) List(ctx context.Context, projectID int64, kf domain.KeyFilter) ([]domain.Key, int, error) {
	f := Filter(kf)
	f.normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{squirrel.Eq{"project_id": projectID}}
	if f.hasSearch() {
		where = append(where, squirrel.ILike{"name": "%" + escapeLike(*f.Search) + "%"})
	}

	var total int
	if err := postgres.QueryRow(ctx, q, postgres.Builder().
		Select("count(*)").From("keys").Where(where)).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count keys: %w", err)
	}

	keys, err := r.collect(ctx, postgres.Builder().
		Select(columns...).From("keys").
		Where(where).
		OrderBy("name "+f.SortOrder, "id ASC").
		Limit(uint64(f.Limit)).
		Offset(uint64(f.Offset)))
	if err != nil {
		return nil, 0, err
	}
	return keys, total, nil
}

// ListByProject returns every key of a project ordered by name.
func (r *Repo) ListByProject(ctx context.Context, projectID int64) ([]domain.Key, error) {
	return r.collect(ctx, postgres.Builder().
		Select(columns...).From("keys").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("name ASC"))
}

// ListByNames returns the keys of a project with the given names.
func (r *Repo) ListByNames(ctx context.Context, projectID int64, names []string) ([]domain.Key, error) {
	if len(names) == 0 {
		return []domain.Key{}, nil
	}
	return r.collect(ctx, postgres.Builder().
		Select(columns...).From("keys").
		Where(squirrel.Eq{"project_id": projectID, "name": names}).
		OrderBy("name ASC"))
}

// Rename changes the name of a key.
func (r *Repo) Rename(ctx context.Context, id int64, name string) (*domain.Key, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	k, err := scanKey(postgres.QueryRow(ctx, q, postgres.Builder().
		Update("keys").
		Set("name", name).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING "+postgres.JoinColumns(columns))))
	if err != nil {
		return nil, postgres.MapError(err, "key", id)
	}
	return &k, nil
}

// Delete removes a key and its translations.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("keys").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "key", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("key %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) collect(ctx context.Context, b squirrel.SelectBuilder) ([]domain.Key, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	keys := []domain.Key{}
	for rows.Next() {
		k, err := scanKey(rows)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

func scanKey(row pgx.Row) (domain.Key, error) {
	var k domain.Key
	if err := row.Scan(&k.ID, &k.ProjectID, &k.Name, &k.CreatedAt); err != nil {
		return domain.Key{}, fmt.Errorf("scan key: %w", err)
	}
	return k, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
