package key

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
)

// Create adds a key to a project together with its initial translations.
// Every translation tag must name an existing project language.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.KeyWithTranslations, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeKeysEdit); err != nil {
		return nil, err
	}

	result := &domain.KeyWithTranslations{Translations: make(map[string]domain.Translation)}
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		langs, err := s.languagesByTag(txCtx, input.ProjectID, input.Translations)
		if err != nil {
			return err
		}

		created, err := s.keys.Create(txCtx, domain.Key{
			ProjectID: input.ProjectID,
			Name:      domain.NormalizeKeyName(input.Name),
		})
		if err != nil {
			return fmt.Errorf("create key: %w", err)
		}
		result.Key = *created

		rev := domain.NewRevision(input.ProjectID, ctxutil.AuthorID(txCtx), domain.ActivityCreateKey)
		rev.Add(domain.KeyChange(nil, created))

		for _, tag := range sortedTags(input.Translations) {
			text := input.Translations[tag]
			lang := langs[tag]
			tr, err := s.translations.Upsert(txCtx, domain.Translation{
				KeyID:      created.ID,
				LanguageID: lang.ID,
				Text:       &text,
				State:      domain.TranslationStateTranslated,
			})
			if err != nil {
				return fmt.Errorf("upsert translation %s: %w", tag, err)
			}
			result.Translations[tag] = *tr
			rev.Add(domain.TranslationChange(nil, tr, *created, lang))
		}

		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("key.Create: %w", err)
	}

	s.log.InfoContext(ctx, "key created",
		slog.Int64("project_id", input.ProjectID),
		slog.Int64("key_id", result.ID),
		slog.Int("translations", len(result.Translations)),
	)
	return result, nil
}

// Rename changes the name of a key.
func (s *Service) Rename(ctx context.Context, input RenameInput) (*domain.Key, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeKeysEdit); err != nil {
		return nil, err
	}

	var renamed *domain.Key
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.projectKey(txCtx, input.ProjectID, input.KeyID)
		if err != nil {
			return err
		}

		renamed, err = s.keys.Rename(txCtx, old.ID, domain.NormalizeKeyName(input.Name))
		if err != nil {
			return fmt.Errorf("rename key: %w", err)
		}

		rev := domain.NewRevision(input.ProjectID, ctxutil.AuthorID(txCtx), domain.ActivityKeyNameEdit)
		rev.Add(domain.KeyChange(old, renamed))
		if rev.IsEmpty() {
			return nil
		}
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("key.Rename: %w", err)
	}

	s.log.InfoContext(ctx, "key renamed",
		slog.Int64("project_id", input.ProjectID),
		slog.Int64("key_id", input.KeyID),
	)
	return renamed, nil
}

// Delete removes a key and its translations.
func (s *Service) Delete(ctx context.Context, projectID, keyID int64) error {
	if err := s.access.CheckAccess(ctx, projectID, domain.ScopeKeysEdit); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.projectKey(txCtx, projectID, keyID)
		if err != nil {
			return err
		}
		if err := s.keys.Delete(txCtx, old.ID); err != nil {
			return fmt.Errorf("delete key: %w", err)
		}

		rev := domain.NewRevision(projectID, ctxutil.AuthorID(txCtx), domain.ActivityDeleteKey)
		rev.Add(domain.KeyChange(old, nil))
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("key.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "key deleted",
		slog.Int64("project_id", projectID),
		slog.Int64("key_id", keyID),
	)
	return nil
}

// List returns a page of keys with their translations indexed by language tag.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeTranslationsView); err != nil {
		return nil, err
	}

	keys, total, err := s.keys.List(ctx, input.ProjectID, domain.KeyFilter{
		Search:    input.Search,
		SortOrder: input.SortOrder,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("key.List: %w", err)
	}

	langs, err := s.languages.ListByProject(ctx, input.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("key.List languages: %w", err)
	}
	tagByID := make(map[int64]string, len(langs))
	for _, l := range langs {
		tagByID[l.ID] = l.Tag
	}

	ids := make([]int64, len(keys))
	for i, k := range keys {
		ids[i] = k.ID
	}
	translations, err := s.translations.ListByKeys(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("key.List translations: %w", err)
	}
	byKey := make(map[int64]map[string]domain.Translation, len(keys))
	for _, t := range translations {
		if byKey[t.KeyID] == nil {
			byKey[t.KeyID] = make(map[string]domain.Translation)
		}
		byKey[t.KeyID][tagByID[t.LanguageID]] = t
	}

	result := &ListResult{Keys: make([]domain.KeyWithTranslations, len(keys)), Total: total}
	for i, k := range keys {
		trs := byKey[k.ID]
		if trs == nil {
			trs = map[string]domain.Translation{}
		}
		result.Keys[i] = domain.KeyWithTranslations{Key: k, Translations: trs}
	}
	return result, nil
}

// projectKey loads a key and checks that it belongs to the project.
func (s *Service) projectKey(ctx context.Context, projectID, keyID int64) (*domain.Key, error) {
	k, err := s.keys.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("get key: %w", err)
	}
	if k.ProjectID != projectID {
		return nil, fmt.Errorf("key %d: %w", keyID, domain.ErrNotFound)
	}
	return k, nil
}

// languagesByTag resolves the requested tags to project languages.
func (s *Service) languagesByTag(ctx context.Context, projectID int64, texts map[string]string) (map[string]domain.Language, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	langs, err := s.languages.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	byTag := make(map[string]domain.Language, len(langs))
	for _, l := range langs {
		byTag[l.Tag] = l
	}

	var errs []domain.FieldError
	for _, tag := range sortedTags(texts) {
		if _, ok := byTag[tag]; !ok {
			errs = append(errs, domain.FieldError{Field: "translations." + tag, Message: "unknown language"})
		}
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}
	return byTag, nil
}

func sortedTags(texts map[string]string) []string {
	tags := make([]string, 0, len(texts))
	for tag := range texts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
