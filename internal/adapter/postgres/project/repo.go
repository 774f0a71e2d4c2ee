// Package project implements the Project repository using PostgreSQL.
package project

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/localize-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

var columns = []string{"id", "owner_id", "name", "description", "base_language_id", "created_at", "updated_at"}

// Repo provides project persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a project and returns it with generated fields.
func (r *Repo) Create(ctx context.Context, p domain.Project) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanProject(postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("projects").
		Columns("owner_id", "name", "description").
		Values(p.OwnerID, p.Name, p.Description).
		Suffix("RETURNING "+postgres.JoinColumns(columns))))
	if err != nil {
		return nil, postgres.MapError(err, "project", 0)
	}
	return &created, nil
}

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	p, err := scanProject(postgres.QueryRow(ctx, q, postgres.Builder().
		Select(columns...).From("projects").
		Where(squirrel.Eq{"id": id})))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return &p, nil
}

// ListByOwner returns the projects owned by a user, oldest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select(columns...).From("projects").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("id ASC"))
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// Update applies the non-nil fields of params and returns the updated project.
func (r *Repo) Update(ctx context.Context, id int64, params domain.ProjectUpdateParams) (*domain.Project, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder().Update("projects").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + postgres.JoinColumns(columns))
	if params.Name != nil {
		b = b.Set("name", *params.Name)
	}
	if params.Description != nil {
		b = b.Set("description", *params.Description)
	}
	if params.BaseLanguageID != nil {
		b = b.Set("base_language_id", *params.BaseLanguageID)
	}

	p, err := scanProject(postgres.QueryRow(ctx, q, b))
	if err != nil {
		return nil, postgres.MapError(err, "project", id)
	}
	return &p, nil
}

// Delete removes a project and, through cascades, everything it owns.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := postgres.Exec(ctx, q, postgres.Builder().
		Delete("projects").
		Where(squirrel.Eq{"id": id}))
	if err != nil {
		return postgres.MapError(err, "project", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("project %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanProject(row pgx.Row) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Description, &p.BaseLanguageID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.Project{}, fmt.Errorf("scan project: %w", err)
	}
	return p, nil
}
