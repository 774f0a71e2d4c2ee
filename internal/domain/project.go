package domain

import (
	"slices"
	"time"
)

// Project groups the languages, keys and translations of one localized product.
type Project struct {
	ID             int64
	OwnerID        int64
	Name           string
	Description    *string
	BaseLanguageID *int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProjectUpdateParams holds optional fields for a partial project update.
// nil means "don't change".
type ProjectUpdateParams struct {
	Name           *string
	Description    *string
	BaseLanguageID *int64
}

// Language is a target locale of a project.
type Language struct {
	ID           int64
	ProjectID    int64
	Tag          string
	Name         string
	OriginalName *string
	FlagEmoji    *string
}

// LanguageUpdateParams holds optional fields for a partial language update.
type LanguageUpdateParams struct {
	Name         *string
	Tag          *string
	OriginalName *string
	FlagEmoji    *string
}

// Key is a translatable message identifier, unique per project.
type Key struct {
	ID        int64
	ProjectID int64
	Name      string
	CreatedAt time.Time
}

// Translation is the text of one key in one language.
type Translation struct {
	ID         int64
	KeyID      int64
	LanguageID int64
	Text       *string
	State      TranslationState
	Auto       bool
	MTProvider *string
	UpdatedAt  time.Time
}

// KeyWithTranslations is a key together with its translations indexed by language tag.
type KeyWithTranslations struct {
	Key
	Translations map[string]Translation
}

// APIKey grants scoped programmatic access to a single project.
type APIKey struct {
	ID          int64
	ProjectID   int64
	UserID      int64
	KeyHash     string
	Description string
	Scopes      []Scope
	ExpiresAt   *time.Time
	LastUsedAt  *time.Time
	CreatedAt   time.Time
}

// HasScope reports whether the key was granted the given scope.
func (k *APIKey) HasScope(s Scope) bool {
	return slices.Contains(k.Scopes, s)
}

// IsExpired returns true if the key has an expiry in the past relative to now.
func (k *APIKey) IsExpired(now time.Time) bool {
	return k.ExpiresAt != nil && k.ExpiresAt.Before(now)
}
