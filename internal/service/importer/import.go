package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
	"github.com/heartmarshall/localize-backend/pkg/keytree"
)

// Import upserts the texts of a document into one project language. The
// language and missing keys are created on the fly. The whole import runs in
// one transaction and is recorded as a single IMPORT revision.
func (s *Service) Import(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}
	for _, scope := range []domain.Scope{domain.ScopeTranslationsEdit, domain.ScopeKeysEdit} {
		if err := s.access.CheckAccess(ctx, input.ProjectID, scope); err != nil {
			return nil, err
		}
	}

	entries, err := s.parse(input)
	if err != nil {
		return nil, err
	}
	names := keytree.SortedKeys(entries)

	override := s.cfg.OverrideExisting
	if input.Override != nil {
		override = *input.Override
	}
	tag, _ := domain.CanonicalLanguageTag(input.LanguageTag)

	result := &Result{Entries: len(names)}
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		rev := domain.NewRevision(input.ProjectID, ctxutil.AuthorID(txCtx), domain.ActivityImport)

		lang, created, err := s.getOrCreateLanguage(txCtx, input.ProjectID, tag)
		if err != nil {
			return err
		}
		result.LanguageID = lang.ID
		result.LanguageCreated = created
		if created {
			rev.Add(domain.LanguageChange(nil, lang))
		}

		keys, err := s.ensureKeys(txCtx, input.ProjectID, names, rev)
		if err != nil {
			return err
		}
		result.KeysCreated = rev.Counts[domain.EntityClassKey]

		existing, err := s.translations.ListByLanguage(txCtx, lang.ID)
		if err != nil {
			return fmt.Errorf("list translations: %w", err)
		}
		byKey := make(map[int64]domain.Translation, len(existing))
		for _, t := range existing {
			byKey[t.KeyID] = t
		}

		for i, name := range names {
			key := keys[name]
			text := entries[name]

			var old *domain.Translation
			if t, ok := byKey[key.ID]; ok {
				old = &t
			}

			switch {
			case old != nil && old.Text != nil && *old.Text == text:
				result.Unchanged++
			case old != nil && old.Text != nil && !override:
				result.Skipped++
			default:
				next := domain.Translation{
					KeyID:      key.ID,
					LanguageID: lang.ID,
					Text:       &text,
					State:      domain.TranslationStateTranslated,
				}
				saved, err := s.translations.Upsert(txCtx, next)
				if err != nil {
					return fmt.Errorf("upsert translation %q: %w", name, err)
				}
				rev.Add(domain.TranslationChange(old, saved, key, *lang))
				result.Translated++
			}

			if input.Progress != nil {
				input.Progress(i+1, len(names))
			}
		}

		if rev.IsEmpty() {
			return nil
		}
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importer.Import: %w", err)
	}

	s.log.InfoContext(ctx, "import finished",
		slog.Int64("project_id", input.ProjectID),
		slog.String("language", tag),
		slog.Int("entries", result.Entries),
		slog.Int("keys_created", result.KeysCreated),
		slog.Int("translated", result.Translated),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

// parse decodes and flattens the document, dropping entries with blank
// names. Two names that normalize to the same key are rejected.
func (s *Service) parse(input Input) (map[string]string, error) {
	tree, err := keytree.Decode(input.Data, input.Format)
	if err != nil {
		return nil, domain.NewValidationError("file", err.Error())
	}

	flat := keytree.Flatten(tree, s.cfg.KeySeparator)
	entries := make(map[string]string, len(flat))
	source := make(map[string]string, len(flat))
	for _, raw := range keytree.SortedKeys(flat) {
		name := domain.NormalizeKeyName(raw)
		if name == "" {
			continue
		}
		if prev, dup := source[name]; dup {
			return nil, domain.NewValidationError("file",
				fmt.Sprintf("keys %q and %q both import as %q", prev, raw, name))
		}
		source[name] = raw
		entries[name] = flat[raw]
	}

	if len(entries) == 0 {
		return nil, domain.NewValidationError("file", "no entries")
	}
	if len(entries) > s.cfg.MaxEntries {
		return nil, domain.NewValidationError("file", fmt.Sprintf("too many entries (max %d)", s.cfg.MaxEntries))
	}
	return entries, nil
}

func (s *Service) getOrCreateLanguage(ctx context.Context, projectID int64, tag string) (*domain.Language, bool, error) {
	lang, err := s.languages.GetByTag(ctx, projectID, tag)
	if err == nil {
		return lang, false, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("get language: %w", err)
	}

	l := domain.Language{ProjectID: projectID, Tag: tag, Name: domain.LanguageDisplayName(tag)}
	if native := domain.LanguageNativeName(tag); native != "" {
		l.OriginalName = &native
	}
	lang, err = s.languages.Create(ctx, l)
	if err != nil {
		return nil, false, fmt.Errorf("create language: %w", err)
	}
	return lang, true, nil
}

// ensureKeys returns the project keys for names, creating the missing ones
// and adding them to rev.
func (s *Service) ensureKeys(ctx context.Context, projectID int64, names []string, rev *domain.ActivityRevision) (map[string]domain.Key, error) {
	existing, err := s.keys.ListByNames(ctx, projectID, names)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	keys := make(map[string]domain.Key, len(names))
	for _, k := range existing {
		keys[k.Name] = k
	}

	for _, name := range names {
		if _, ok := keys[name]; ok {
			continue
		}
		created, err := s.keys.Create(ctx, domain.Key{ProjectID: projectID, Name: name})
		if err != nil {
			return nil, fmt.Errorf("create key %q: %w", name, err)
		}
		keys[name] = *created
		rev.Add(domain.KeyChange(nil, created))
	}
	return keys, nil
}
