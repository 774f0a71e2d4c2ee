package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	u := domain.User{
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$seed",
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Email, u.Name, u.PasswordHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedProject creates a project owned by ownerID.
func SeedProject(t *testing.T, pool *pgxpool.Pool, ownerID int64) domain.Project {
	t.Helper()
	ctx := context.Background()

	p := domain.Project{OwnerID: ownerID, Name: "Project " + uniqueSuffix()}

	err := pool.QueryRow(ctx,
		`INSERT INTO projects (owner_id, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		p.OwnerID, p.Name,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}

	return p
}

// SeedUserAndProject creates an owner and a project in one call.
func SeedUserAndProject(t *testing.T, pool *pgxpool.Pool) (domain.User, domain.Project) {
	t.Helper()
	u := SeedUser(t, pool)
	return u, SeedProject(t, pool, u.ID)
}

// SeedLanguage creates a language with the given tag in a project.
func SeedLanguage(t *testing.T, pool *pgxpool.Pool, projectID int64, tag string) domain.Language {
	t.Helper()
	ctx := context.Background()

	l := domain.Language{ProjectID: projectID, Tag: tag, Name: domain.LanguageDisplayName(tag)}

	err := pool.QueryRow(ctx,
		`INSERT INTO languages (project_id, tag, name)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		l.ProjectID, l.Tag, l.Name,
	).Scan(&l.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedLanguage: %v", err)
	}

	return l
}

// SeedKey creates a key in a project. An empty name generates a unique one.
func SeedKey(t *testing.T, pool *pgxpool.Pool, projectID int64, name string) domain.Key {
	t.Helper()
	ctx := context.Background()

	if name == "" {
		name = "key." + uniqueSuffix()
	}
	k := domain.Key{ProjectID: projectID, Name: name}

	err := pool.QueryRow(ctx,
		`INSERT INTO keys (project_id, name)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		k.ProjectID, k.Name,
	).Scan(&k.ID, &k.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedKey: %v", err)
	}

	return k
}

// SeedTranslation creates a TRANSLATED translation of a key.
func SeedTranslation(t *testing.T, pool *pgxpool.Pool, keyID, languageID int64, text string) domain.Translation {
	t.Helper()
	ctx := context.Background()

	tr := domain.Translation{
		KeyID:      keyID,
		LanguageID: languageID,
		Text:       &text,
		State:      domain.TranslationStateTranslated,
	}

	err := pool.QueryRow(ctx,
		`INSERT INTO translations (key_id, language_id, text, state)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, updated_at`,
		tr.KeyID, tr.LanguageID, tr.Text, string(tr.State),
	).Scan(&tr.ID, &tr.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTranslation: %v", err)
	}

	return tr
}
