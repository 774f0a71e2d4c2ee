package translation

import (
	"github.com/heartmarshall/localize-backend/internal/domain"
)

const maxTextLength = 10000

// SetInput holds the texts of one key for several languages.
type SetInput struct {
	ProjectID int64
	KeyID     int64
	// Texts maps language tags to texts. An empty text clears the translation.
	Texts map[string]string
}

// Validate checks all fields and collects all errors.
func (i SetInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.KeyID <= 0 {
		errs = append(errs, domain.FieldError{Field: "key_id", Message: "required"})
	}
	if len(i.Texts) == 0 {
		errs = append(errs, domain.FieldError{Field: "translations", Message: "at least one translation must be provided"})
	}
	for tag, text := range i.Texts {
		if len(text) > maxTextLength {
			errs = append(errs, domain.FieldError{Field: "translations." + tag, Message: "max 10000 characters"})
		}
	}

	return domain.CollectValidation(errs)
}

// SetStateInput holds the new review state of one translation.
type SetStateInput struct {
	ProjectID   int64
	KeyID       int64
	LanguageTag string
	State       domain.TranslationState
}

// Validate checks all fields and collects all errors.
func (i SetStateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.KeyID <= 0 {
		errs = append(errs, domain.FieldError{Field: "key_id", Message: "required"})
	}
	if i.LanguageTag == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	}
	if !i.State.IsValid() {
		errs = append(errs, domain.FieldError{Field: "state", Message: "invalid value"})
	}

	return domain.CollectValidation(errs)
}
