package language

import (
	"strings"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

const maxNameLength = 100

// CreateInput holds the parameters for adding a language to a project.
type CreateInput struct {
	ProjectID    int64
	Tag          string
	Name         *string // defaults to the English name of the tag
	OriginalName *string // defaults to the native name of the tag
	FlagEmoji    *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if strings.TrimSpace(i.Tag) == "" {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "required"})
	} else if _, err := domain.CanonicalLanguageTag(i.Tag); err != nil {
		errs = append(errs, domain.FieldError{Field: "tag", Message: "invalid language tag"})
	}
	errs = append(errs, validateOptionalName("name", i.Name)...)
	errs = append(errs, validateOptionalName("original_name", i.OriginalName)...)

	return domain.CollectValidation(errs)
}

// UpdateInput holds the parameters for a partial language update.
type UpdateInput struct {
	ProjectID    int64
	LanguageID   int64
	Tag          *string
	Name         *string
	OriginalName *string
	FlagEmoji    *string
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.LanguageID <= 0 {
		errs = append(errs, domain.FieldError{Field: "language_id", Message: "required"})
	}
	if i.Tag == nil && i.Name == nil && i.OriginalName == nil && i.FlagEmoji == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Tag != nil {
		if _, err := domain.CanonicalLanguageTag(*i.Tag); err != nil {
			errs = append(errs, domain.FieldError{Field: "tag", Message: "invalid language tag"})
		}
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	errs = append(errs, validateOptionalName("name", i.Name)...)
	errs = append(errs, validateOptionalName("original_name", i.OriginalName)...)

	return domain.CollectValidation(errs)
}

func validateOptionalName(field string, name *string) []domain.FieldError {
	if name != nil && len(strings.TrimSpace(*name)) > maxNameLength {
		return []domain.FieldError{{Field: field, Message: "max 100 characters"}}
	}
	return nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
