package apikey

import (
	"time"

	"github.com/heartmarshall/localize-backend/internal/domain"
)

const maxDescriptionLength = 250

// CreateInput holds the parameters for issuing an API key.
type CreateInput struct {
	ProjectID   int64
	Description string
	Scopes      []domain.Scope
	ExpiresAt   *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate(now time.Time) error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 250 characters"})
	}
	if len(i.Scopes) == 0 {
		errs = append(errs, domain.FieldError{Field: "scopes", Message: "at least one scope must be provided"})
	}
	for _, s := range i.Scopes {
		if !s.IsValid() {
			errs = append(errs, domain.FieldError{Field: "scopes", Message: "unknown scope " + string(s)})
		}
	}
	if i.ExpiresAt != nil && !i.ExpiresAt.After(now) {
		errs = append(errs, domain.FieldError{Field: "expires_at", Message: "must be in the future"})
	}

	return domain.CollectValidation(errs)
}
