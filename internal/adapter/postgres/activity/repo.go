// Package activity implements persistence of activity revisions and their
// modified entities using PostgreSQL. Modifications, descriptions and
// describing relations are stored as JSONB.
package activity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/localize-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localize-backend/internal/domain"
)

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool

	// maxEntitiesPerClass bounds how many modified entities of one class are
	// loaded per revision in feed pages. Zero means no bound.
	maxEntitiesPerClass int
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool, maxEntitiesPerClass int) *Repo {
	return &Repo{pool: pool, maxEntitiesPerClass: maxEntitiesPerClass}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// CreateRevision stores a revision with all its modified entities and fills
// in the generated ID and timestamp. It runs on the transaction carried by
// ctx, so the revision commits or rolls back with the change it describes.
func (r *Repo) CreateRevision(ctx context.Context, rev *domain.ActivityRevision) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	err := postgres.QueryRow(ctx, q, postgres.Builder().
		Insert("activity_revisions").
		Columns("project_id", "author_id", "type").
		Values(rev.ProjectID, rev.AuthorID, string(rev.Type)).
		Suffix("RETURNING id, created_at")).
		Scan(&rev.ID, &rev.Timestamp)
	if err != nil {
		return postgres.MapError(err, "activity_revision of project", rev.ProjectID)
	}

	entities := rev.AllModifiedEntities()
	if len(entities) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, e := range entities {
		mods, desc, rels, err := encodeEntity(e)
		if err != nil {
			return fmt.Errorf("activity_revision %d: %w", rev.ID, err)
		}
		batch.Queue(
			`INSERT INTO activity_modified_entities
			   (revision_id, entity_class, entity_id, modifications, description, describing_relations, revision_type)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			rev.ID, string(e.EntityClass), e.EntityID, mods, desc, rels, string(e.RevisionType),
		)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for range batch.Len() {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "activity_revision", rev.ID)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByProject returns a page of a project's revisions, newest first. Each
// revision carries its modified entities grouped by class, at most
// maxEntitiesPerClass per class, and the full per-class counts.
func (r *Repo) ListByProject(ctx context.Context, projectID int64, limit, offset int) ([]domain.ActivityRevision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	revs, err := r.collectRevisions(ctx, q, postgres.Builder().
		Select("id", "project_id", "author_id", "type", "created_at").
		From("activity_revisions").
		Where(squirrel.Eq{"project_id": projectID}).
		OrderBy("id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)))
	if err != nil {
		return nil, err
	}
	if len(revs) == 0 {
		return revs, nil
	}

	if err := r.attachEntities(ctx, q, revs, r.maxEntitiesPerClass); err != nil {
		return nil, err
	}
	if err := r.attachCounts(ctx, q, revs); err != nil {
		return nil, err
	}
	return revs, nil
}

// GetByID returns one revision of a project with all its modified entities.
func (r *Repo) GetByID(ctx context.Context, projectID, revisionID int64) (*domain.ActivityRevision, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	revs, err := r.collectRevisions(ctx, q, postgres.Builder().
		Select("id", "project_id", "author_id", "type", "created_at").
		From("activity_revisions").
		Where(squirrel.Eq{"id": revisionID, "project_id": projectID}))
	if err != nil {
		return nil, err
	}
	if len(revs) == 0 {
		return nil, fmt.Errorf("activity_revision %d: %w", revisionID, domain.ErrNotFound)
	}

	if err := r.attachEntities(ctx, q, revs, 0); err != nil {
		return nil, err
	}
	if err := r.attachCounts(ctx, q, revs); err != nil {
		return nil, err
	}
	return &revs[0], nil
}

// CountByProject returns the number of revisions of a project.
func (r *Repo) CountByProject(ctx context.Context, projectID int64) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	err := postgres.QueryRow(ctx, q, postgres.Builder().
		Select("count(*)").From("activity_revisions").
		Where(squirrel.Eq{"project_id": projectID})).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count activity_revisions: %w", err)
	}
	return n, nil
}

func (r *Repo) collectRevisions(ctx context.Context, q postgres.Querier, b squirrel.SelectBuilder) ([]domain.ActivityRevision, error) {
	rows, err := postgres.Query(ctx, q, b)
	if err != nil {
		return nil, fmt.Errorf("list activity_revisions: %w", err)
	}
	defer rows.Close()

	revs := []domain.ActivityRevision{}
	for rows.Next() {
		var (
			rev domain.ActivityRevision
			typ string
		)
		if err := rows.Scan(&rev.ID, &rev.ProjectID, &rev.AuthorID, &typ, &rev.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity_revision: %w", err)
		}
		rev.Type = domain.ActivityType(typ)
		rev.ModifiedEntities = make(map[domain.EntityClass][]domain.ModifiedEntity)
		rev.Counts = make(map[domain.EntityClass]int)
		revs = append(revs, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list activity_revisions: %w", err)
	}
	return revs, nil
}

const entitiesQuery = `
SELECT revision_id, entity_class, entity_id, modifications, description, describing_relations, revision_type
FROM (
    SELECT e.*,
           row_number() OVER (PARTITION BY revision_id, entity_class ORDER BY entity_id) AS rn
    FROM activity_modified_entities e
    WHERE revision_id = ANY($1)
) ranked
WHERE $2 = 0 OR rn <= $2
ORDER BY revision_id, entity_class, entity_id`

func (r *Repo) attachEntities(ctx context.Context, q postgres.Querier, revs []domain.ActivityRevision, perClass int) error {
	index := revisionIndex(revs)

	rows, err := q.Query(ctx, entitiesQuery, revisionIDs(revs), perClass)
	if err != nil {
		return fmt.Errorf("list activity_modified_entities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			revisionID            int64
			class, revType        string
			e                     domain.ModifiedEntity
			mods, desc, relations []byte
		)
		if err := rows.Scan(&revisionID, &class, &e.EntityID, &mods, &desc, &relations, &revType); err != nil {
			return fmt.Errorf("scan activity_modified_entity: %w", err)
		}
		e.EntityClass = domain.EntityClass(class)
		e.RevisionType = domain.RevisionType(revType)
		if err := decodeEntity(&e, mods, desc, relations); err != nil {
			return fmt.Errorf("activity_revision %d: %w", revisionID, err)
		}

		rev := &revs[index[revisionID]]
		rev.ModifiedEntities[e.EntityClass] = append(rev.ModifiedEntities[e.EntityClass], e)
	}
	return rows.Err()
}

func (r *Repo) attachCounts(ctx context.Context, q postgres.Querier, revs []domain.ActivityRevision) error {
	index := revisionIndex(revs)

	rows, err := postgres.Query(ctx, q, postgres.Builder().
		Select("revision_id", "entity_class", "count(*)").
		From("activity_modified_entities").
		Where(squirrel.Eq{"revision_id": revisionIDs(revs)}).
		GroupBy("revision_id", "entity_class"))
	if err != nil {
		return fmt.Errorf("count activity_modified_entities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			revisionID int64
			class      string
			n          int
		)
		if err := rows.Scan(&revisionID, &class, &n); err != nil {
			return fmt.Errorf("scan activity count: %w", err)
		}
		revs[index[revisionID]].Counts[domain.EntityClass(class)] = n
	}
	return rows.Err()
}

// ---------------------------------------------------------------------------
// JSONB helpers
// ---------------------------------------------------------------------------

func encodeEntity(e domain.ModifiedEntity) (mods, desc, rels []byte, err error) {
	if e.Modifications == nil {
		mods = []byte("{}")
	} else if mods, err = json.Marshal(e.Modifications); err != nil {
		return nil, nil, nil, fmt.Errorf("marshal modifications: %w", err)
	}
	if e.Description != nil {
		if desc, err = json.Marshal(e.Description); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal description: %w", err)
		}
	}
	if e.DescribingRelations != nil {
		if rels, err = json.Marshal(e.DescribingRelations); err != nil {
			return nil, nil, nil, fmt.Errorf("marshal describing_relations: %w", err)
		}
	}
	return mods, desc, rels, nil
}

// decodeEntity unmarshals the JSONB columns. Numbers are kept as
// json.Number so that int64 ids survive the round trip.
func decodeEntity(e *domain.ModifiedEntity, mods, desc, rels []byte) error {
	if err := decodeJSON(mods, &e.Modifications); err != nil {
		return fmt.Errorf("unmarshal modifications: %w", err)
	}
	if err := decodeJSON(desc, &e.Description); err != nil {
		return fmt.Errorf("unmarshal description: %w", err)
	}
	if err := decodeJSON(rels, &e.DescribingRelations); err != nil {
		return fmt.Errorf("unmarshal describing_relations: %w", err)
	}
	return nil
}

func decodeJSON(data []byte, v any) error {
	if len(data) == 0 {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	return dec.Decode(v)
}

func revisionIDs(revs []domain.ActivityRevision) []int64 {
	ids := make([]int64, len(revs))
	for i, rev := range revs {
		ids[i] = rev.ID
	}
	return ids
}

func revisionIndex(revs []domain.ActivityRevision) map[int64]int {
	index := make(map[int64]int, len(revs))
	for i, rev := range revs {
		index[rev.ID] = i
	}
	return index
}
