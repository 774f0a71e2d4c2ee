package project

import (
	"strings"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

const (
	maxNameLength        = 200
	maxDescriptionLength = 2000
)

// CreateInput holds the parameters for creating a project.
type CreateInput struct {
	Name        string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	return domain.CollectValidation(errs)
}

// UpdateInput holds the parameters for a partial project update.
type UpdateInput struct {
	ProjectID      int64
	Name           *string
	Description    *string // ptr("") clears the description
	BaseLanguageID *int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.BaseLanguageID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}
	if i.Description != nil && len(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	if i.BaseLanguageID != nil && *i.BaseLanguageID <= 0 {
		errs = append(errs, domain.FieldError{Field: "base_language_id", Message: "invalid"})
	}

	return domain.CollectValidation(errs)
}

func validateName(name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(name) > maxNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 200 characters"}}
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
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
