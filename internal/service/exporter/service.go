package exporter

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/keytree"
)

//go:generate moq -out mocks_test.go -pkg exporter . languageRepo keyRepo translationRepo accessChecker

type languageRepo interface {
	GetByTag(ctx context.Context, projectID int64, tag string) (*domain.Language, error)
}

type keyRepo interface {
	ListByProject(ctx context.Context, projectID int64) ([]domain.Key, error)
}

type translationRepo interface {
	ListByLanguage(ctx context.Context, languageID int64) ([]domain.Translation, error)
}

type accessChecker interface {
	CheckAccess(ctx context.Context, projectID int64, scope domain.Scope) error
}

// Service renders project languages as translation documents.
type Service struct {
	languages    languageRepo
	keys         keyRepo
	translations translationRepo
	access       accessChecker
	separator    string
	log          *slog.Logger
}

// NewService creates a new export service. Nested documents split key
// names on separator.
func NewService(
	log *slog.Logger,
	languages languageRepo,
	keys keyRepo,
	translations translationRepo,
	access accessChecker,
	separator string,
) *Service {
	return &Service{
		languages:    languages,
		keys:         keys,
		translations: translations,
		access:       access,
		separator:    separator,
		log:          log.With("service", "exporter"),
	}
}

// Input selects the language and shape of an export.
type Input struct {
	ProjectID   int64
	LanguageTag string
	Format      keytree.Format
	Nested      bool
}

// Document is a rendered export.
type Document struct {
	LanguageTag string
	Format      keytree.Format
	Entries     int
	Data        []byte
}

// Export renders the translated texts of one language. Untranslated keys
// are left out.
func (s *Service) Export(ctx context.Context, input Input) (*Document, error) {
	if input.Format != keytree.FormatJSON && input.Format != keytree.FormatYAML {
		return nil, domain.NewValidationError("format", "must be json or yaml")
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeTranslationsView); err != nil {
		return nil, err
	}

	tag, err := domain.CanonicalLanguageTag(input.LanguageTag)
	if err != nil {
		return nil, domain.NewValidationError("language", "invalid language tag")
	}
	lang, err := s.languages.GetByTag(ctx, input.ProjectID, tag)
	if err != nil {
		return nil, fmt.Errorf("exporter.Export: %w", err)
	}

	var (
		keys         []domain.Key
		translations []domain.Translation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		keys, err = s.keys.ListByProject(gctx, input.ProjectID)
		if err != nil {
			return fmt.Errorf("list keys: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		translations, err = s.translations.ListByLanguage(gctx, lang.ID)
		if err != nil {
			return fmt.Errorf("list translations: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("exporter.Export: %w", err)
	}

	names := make(map[int64]string, len(keys))
	for _, k := range keys {
		names[k.ID] = k.Name
	}
	flat := make(map[string]string, len(translations))
	for _, t := range translations {
		name, ok := names[t.KeyID]
		if !ok || t.Text == nil {
			continue
		}
		flat[name] = *t.Text
	}

	var tree map[string]any
	if input.Nested {
		tree, err = keytree.Nest(flat, s.separator)
		if err != nil {
			return nil, domain.NewValidationError("nested", err.Error())
		}
	} else {
		tree = make(map[string]any, len(flat))
		for k, v := range flat {
			tree[k] = v
		}
	}

	data, err := keytree.Encode(tree, input.Format)
	if err != nil {
		return nil, fmt.Errorf("exporter.Export: %w", err)
	}

	s.log.InfoContext(ctx, "export rendered",
		slog.Int64("project_id", input.ProjectID),
		slog.String("language", lang.Tag),
		slog.Int("entries", len(flat)),
	)
	return &Document{LanguageTag: lang.Tag, Format: input.Format, Entries: len(flat), Data: data}, nil
}
