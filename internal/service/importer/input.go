package importer

import (
	"github.com/heartmarshall/localize-backend/internal/config"
	"github.com/heartmarshall/localize-backend/internal/domain"
	"github.com/heartmarshall/localize-backend/pkg/keytree"
)

// Input holds one translation document for one language.
type Input struct {
	ProjectID   int64
	LanguageTag string
	Format      keytree.Format
	Data        []byte
	// Override replaces existing texts. nil uses the configured default.
	Override *bool
	Progress ProgressFunc
}

// Validate checks all fields and collects all errors.
func (i Input) Validate(cfg config.ImportConfig) error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.LanguageTag == "" {
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	} else if _, err := domain.CanonicalLanguageTag(i.LanguageTag); err != nil {
		errs = append(errs, domain.FieldError{Field: "language", Message: "invalid language tag"})
	}
	if i.Format != keytree.FormatJSON && i.Format != keytree.FormatYAML {
		errs = append(errs, domain.FieldError{Field: "format", Message: "must be json or yaml"})
	}
	if len(i.Data) == 0 {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	} else if int64(len(i.Data)) > cfg.MaxFileBytes {
		errs = append(errs, domain.FieldError{Field: "file", Message: "file too large"})
	}

	return domain.CollectValidation(errs)
}
