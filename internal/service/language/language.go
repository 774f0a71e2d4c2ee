package language

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/ctxutil"
)

// Create adds a language to a project. The tag is canonicalized and the
// display names default to the names known for the tag.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeLanguagesEdit); err != nil {
		return nil, err
	}

	tag, _ := domain.CanonicalLanguageTag(input.Tag)
	lang := domain.Language{
		ProjectID:    input.ProjectID,
		Tag:          tag,
		Name:         domain.LanguageDisplayName(tag),
		OriginalName: trimOrNil(input.OriginalName),
		FlagEmoji:    trimOrNil(input.FlagEmoji),
	}
	if name := trimOrNil(input.Name); name != nil {
		lang.Name = *name
	}
	if lang.OriginalName == nil {
		if native := domain.LanguageNativeName(tag); native != "" {
			lang.OriginalName = &native
		}
	}

	var created *domain.Language
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.languages.Create(txCtx, lang)
		if err != nil {
			return fmt.Errorf("create language: %w", err)
		}

		rev := domain.NewRevision(input.ProjectID, ctxutil.AuthorID(txCtx), domain.ActivityCreateLanguage)
		rev.Add(domain.LanguageChange(nil, created))
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("language.Create: %w", err)
	}

	s.log.InfoContext(ctx, "language created",
		slog.Int64("project_id", input.ProjectID),
		slog.Int64("language_id", created.ID),
		slog.String("tag", created.Tag),
	)
	return created, nil
}

// List returns the languages of a project ordered by tag.
func (s *Service) List(ctx context.Context, projectID int64) ([]domain.Language, error) {
	if err := s.access.CheckAccess(ctx, projectID, ""); err != nil {
		return nil, err
	}
	langs, err := s.languages.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("language.List: %w", err)
	}
	return langs, nil
}

// Update changes a language of a project.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Language, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if err := s.access.CheckAccess(ctx, input.ProjectID, domain.ScopeLanguagesEdit); err != nil {
		return nil, err
	}

	params := domain.LanguageUpdateParams{
		OriginalName: input.OriginalName,
		FlagEmoji:    input.FlagEmoji,
	}
	if input.Tag != nil {
		tag, _ := domain.CanonicalLanguageTag(*input.Tag)
		params.Tag = &tag
	}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		params.Name = &name
	}

	var updated *domain.Language
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.projectLanguage(txCtx, input.ProjectID, input.LanguageID)
		if err != nil {
			return err
		}

		updated, err = s.languages.Update(txCtx, old.ID, params)
		if err != nil {
			return fmt.Errorf("update language: %w", err)
		}

		rev := domain.NewRevision(input.ProjectID, ctxutil.AuthorID(txCtx), domain.ActivityEditLanguage)
		rev.Add(domain.LanguageChange(old, updated))
		if rev.IsEmpty() {
			return nil
		}
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("language.Update: %w", err)
	}

	s.log.InfoContext(ctx, "language updated",
		slog.Int64("project_id", input.ProjectID),
		slog.Int64("language_id", input.LanguageID),
	)
	return updated, nil
}

// Delete removes a language and its translations from a project.
func (s *Service) Delete(ctx context.Context, projectID, languageID int64) error {
	if err := s.access.CheckAccess(ctx, projectID, domain.ScopeLanguagesEdit); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		old, err := s.projectLanguage(txCtx, projectID, languageID)
		if err != nil {
			return err
		}
		if err := s.languages.Delete(txCtx, old.ID); err != nil {
			return fmt.Errorf("delete language: %w", err)
		}

		rev := domain.NewRevision(projectID, ctxutil.AuthorID(txCtx), domain.ActivityDeleteLanguage)
		rev.Add(domain.LanguageChange(old, nil))
		if err := s.activity.CreateRevision(txCtx, rev); err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("language.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "language deleted",
		slog.Int64("project_id", projectID),
		slog.Int64("language_id", languageID),
	)
	return nil
}

// projectLanguage loads a language and checks that it belongs to the project.
func (s *Service) projectLanguage(ctx context.Context, projectID, languageID int64) (*domain.Language, error) {
	lang, err := s.languages.GetByID(ctx, languageID)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	if lang.ProjectID != projectID {
		return nil, fmt.Errorf("language %d: %w", languageID, domain.ErrNotFound)
	}
	return lang, nil
}
