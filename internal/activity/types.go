// Package activity turns persisted activity revisions into presentable
// "what changed" records for the project activity feed.
//
// The pipeline is pure: it reads an immutable domain.ActivityRevision and a
// read-only Registry and produces an Activity. It performs no I/O, keeps no
// state between calls and never fails. Missing configuration or values are
// handled by omission.
package activity

import (
	"github.com/heartmarshall/localize-backend/internal/domain"
)

// DiffValue is the before/after pair shown for one field.
type DiffValue struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// Field is one visible field of a built entity.
type Field struct {
	Name  string    `json:"name"`
	Label string    `json:"label,omitempty"`
	Value DiffValue `json:"value"`
}

// ReferenceType is the discriminator of a Reference.
type ReferenceType string

const (
	ReferenceKey      ReferenceType = "key"
	ReferenceLanguage ReferenceType = "language"
	ReferenceProject  ReferenceType = "project"
)

// LanguageRef is a language mentioned by a key reference.
type LanguageRef struct {
	ID        int64  `json:"id"`
	Tag       string `json:"tag,omitempty"`
	Name      string `json:"name,omitempty"`
	FlagEmoji string `json:"flagEmoji,omitempty"`
}

// Reference is a typed pointer from a changed entity to another domain
// object, rendered as a link in the feed. Two references with the same
// (Type, ID) denote the same object.
type Reference struct {
	Type      ReferenceType `json:"type"`
	ID        int64         `json:"id"`
	Name      string        `json:"name,omitempty"`
	Tag       string        `json:"tag,omitempty"`
	FlagEmoji string        `json:"flagEmoji,omitempty"`
	Languages []LanguageRef `json:"languages,omitempty"`
}

// identity returns the dedup key of a reference.
func (r Reference) identity() string {
	return string(r.Type) + ":" + formatID(r.ID)
}

// Entity is one changed entity with its visible fields and references.
type Entity struct {
	Type         domain.EntityClass  `json:"type"`
	ID           int64               `json:"id"`
	Label        string              `json:"label,omitempty"`
	RevisionType domain.RevisionType `json:"revisionType,omitempty"`
	Description  map[string]any      `json:"description,omitempty"`
	Fields       []Field             `json:"fields"`
	References   []Reference         `json:"references"`
}

// Activity is the presentable form of one activity revision.
type Activity struct {
	RevisionID int64                      `json:"revisionId"`
	AuthorID   *int64                     `json:"authorId,omitempty"`
	Timestamp  int64                      `json:"timestamp"`
	Label      string                     `json:"translationKey,omitempty"`
	Type       domain.ActivityType        `json:"type"`
	Entities   []Entity                   `json:"entities"`
	References []Reference                `json:"references"`
	Counts     map[domain.EntityClass]int `json:"counts"`
}
