package key

import (
	"github.com/heartmarshall/localize-backend/internal/domain"
)

const (
	maxKeyNameLength     = 2000
	maxTranslationLength = 10000
	maxSearchLength      = 200
)

// CreateInput holds the parameters for creating a key.
type CreateInput struct {
	ProjectID int64
	Name      string
	// Translations maps language tags to initial texts.
	Translations map[string]string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = append(errs, validateKeyName(i.Name)...)
	for tag, text := range i.Translations {
		if len(text) > maxTranslationLength {
			errs = append(errs, domain.FieldError{Field: "translations." + tag, Message: "max 10000 characters"})
		}
	}

	return domain.CollectValidation(errs)
}

// RenameInput holds the parameters for renaming a key.
type RenameInput struct {
	ProjectID int64
	KeyID     int64
	Name      string
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.KeyID <= 0 {
		errs = append(errs, domain.FieldError{Field: "key_id", Message: "required"})
	}
	errs = append(errs, validateKeyName(i.Name)...)

	return domain.CollectValidation(errs)
}

// ListInput holds the parameters for listing keys.
type ListInput struct {
	ProjectID int64
	Search    *string
	SortOrder string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Search != nil && len(*i.Search) > maxSearchLength {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 200 characters"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be positive"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be positive"})
	}

	return domain.CollectValidation(errs)
}

func validateKeyName(name string) []domain.FieldError {
	name = domain.NormalizeKeyName(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > maxKeyNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 2000 characters"}}
	}
	return nil
}
