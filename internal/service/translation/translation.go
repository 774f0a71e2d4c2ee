package translation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
)

// Set upserts the texts of a key for the given languages. Unchanged texts
// are skipped; a manual edit clears the machine translation flag.
func (s *Service) Set(ctx context.Context, input SetInput) (map[string]domain.Translation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeTranslationsEdit); err != nil {
		return nil, err
	}

	result := make(map[string]domain.Translation, len(input.Texts))
	var changed int
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		key, err := s.projectKey(txCtx, input.ProjectID, input.KeyID)
		if err != nil {
			return err
		}
		langs, err := s.projectLanguages(txCtx, input.ProjectID, input.Texts)
		if err != nil {
			return err
		}

		rev := domain.NewRevision(input.ProjectID, ctxutil.AuthorID(txCtx), domain.ActivitySetTranslations)
		for _, tag := range sortedTags(input.Texts) {
			lang := langs[tag]
			old, err := s.current(txCtx, key.ID, lang.ID)
			if err != nil {
				return err
			}

			next := nextTranslation(old, key.ID, lang.ID, input.Texts[tag])
			if old != nil && sameContent(*old, next) {
				result[tag] = *old
				continue
			}

			saved, err := s.translations.Upsert(txCtx, next)
			if err != nil {
				return fmt.Errorf("upsert translation %s: %w", tag, err)
			}
			result[tag] = *saved
			rev.Add(domain.TranslationChange(old, saved, *key, lang))
			changed++
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
		return nil, fmt.Errorf("translation.Set: %w", err)
	}

	s.log.InfoContext(ctx, "translations set",
		slog.Int64("project_id", input.ProjectID),
		slog.Int64("key_id", input.KeyID),
		slog.Int("changed", changed),
	)
	return result, nil
}

// SetState changes the review state of one translation.
func (s *Service) SetState(ctx context.Context, input SetStateInput) (*domain.Translation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeTranslationsEdit); err != nil {
		return nil, err
	}

	var updated *domain.Translation
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		key, err := s.projectKey(txCtx, input.ProjectID, input.KeyID)
		if err != nil {
			return err
		}
		lang, err := s.languages.GetByTag(txCtx, input.ProjectID, input.LanguageTag)
		if err != nil {
			return fmt.Errorf("get language: %w", err)
		}
		old, err := s.translations.Get(txCtx, key.ID, lang.ID)
		if err != nil {
			return fmt.Errorf("get translation: %w", err)
		}
		if old.Text == nil && input.State != domain.TranslationStateUntranslated {
			return domain.NewValidationError("state", "translation has no text")
		}

		updated, err = s.translations.SetState(txCtx, old.ID, input.State)
		if err != nil {
			return fmt.Errorf("set state: %w", err)
		}

		rev := domain.NewRevision(input.ProjectID, ctxutil.AuthorID(txCtx), domain.ActivitySetTranslationState)
		rev.Add(domain.TranslationChange(old, updated, *key, *lang))
		if rev.IsEmpty() {
			return nil
		}
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("translation.SetState: %w", err)
	}

	s.log.InfoContext(ctx, "translation state set",
		slog.Int64("project_id", input.ProjectID),
		slog.Int64("translation_id", updated.ID),
		slog.String("state", updated.State.String()),
	)
	return updated, nil
}

// ListByLanguage returns every translation of a project language.
func (s *Service) ListByLanguage(ctx context.Context, projectID int64, tag string) ([]domain.Translation, error) {
	if err := s.access.CheckAccess(ctx, projectID, domain.ScopeTranslationsView); err != nil {
		return nil, err
	}
	lang, err := s.languages.GetByTag(ctx, projectID, tag)
	if err != nil {
		return nil, fmt.Errorf("translation.ListByLanguage: %w", err)
	}
	translations, err := s.translations.ListByLanguage(ctx, lang.ID)
	if err != nil {
		return nil, fmt.Errorf("translation.ListByLanguage: %w", err)
	}
	return translations, nil
}

func (s *Service) current(ctx context.Context, keyID, languageID int64) (*domain.Translation, error) {
	t, err := s.translations.Get(ctx, keyID, languageID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get translation: %w", err)
	}
	return t, nil
}

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

func (s *Service) projectLanguages(ctx context.Context, projectID int64, texts map[string]string) (map[string]domain.Language, error) {
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

// nextTranslation derives the stored translation for a manually entered text.
// A reviewed translation keeps its state while the text is unchanged.
func nextTranslation(old *domain.Translation, keyID, languageID int64, text string) domain.Translation {
	next := domain.Translation{KeyID: keyID, LanguageID: languageID, State: domain.TranslationStateTranslated}
	if old != nil {
		next.ID = old.ID
	}
	if text == "" {
		next.State = domain.TranslationStateUntranslated
		return next
	}
	next.Text = &text
	if old != nil && old.Text != nil && *old.Text == text && old.State == domain.TranslationStateReviewed {
		next.State = domain.TranslationStateReviewed
	}
	return next
}

func sameContent(a, b domain.Translation) bool {
	textA, textB := "", ""
	if a.Text != nil {
		textA = *a.Text
	}
	if b.Text != nil {
		textB = *b.Text
	}
	return textA == textB && (a.Text == nil) == (b.Text == nil) &&
		a.State == b.State && a.Auto == b.Auto
}

func sortedTags(texts map[string]string) []string {
	tags := make([]string, 0, len(texts))
	for tag := range texts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
