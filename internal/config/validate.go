package config

import (
	"fmt"
	"slices"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if c.Server.AuthRateLimit <= 0 || c.Server.ImportRateLimit <= 0 {
		return fmt.Errorf("server rate limits must be > 0 (auth %d, import %d)", c.Server.AuthRateLimit, c.Server.ImportRateLimit)
	}

	if !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Log.Level) {
		return fmt.Errorf("log.level must be one of debug, info, warn, error (got %q)", c.Log.Level)
	}
	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := c.Activity.validate(); err != nil {
		return fmt.Errorf("activity: %w", err)
	}

	return nil
}

func (i *ImportConfig) validate() error {
	if i.MaxFileBytes <= 0 {
		return fmt.Errorf("max_file_bytes must be > 0 (got %d)", i.MaxFileBytes)
	}
	if i.MaxEntries <= 0 {
		return fmt.Errorf("max_entries must be > 0 (got %d)", i.MaxEntries)
	}
	if i.KeySeparator == "" {
		return fmt.Errorf("key_separator must not be empty")
	}
	return nil
}

func (a *ActivityConfig) validate() error {
	if a.MaxPageSize <= 0 {
		return fmt.Errorf("max_page_size must be > 0 (got %d)", a.MaxPageSize)
	}
	if a.DefaultPageSize <= 0 || a.DefaultPageSize > a.MaxPageSize {
		return fmt.Errorf("default_page_size must be in [1, %d] (got %d)", a.MaxPageSize, a.DefaultPageSize)
	}
	if a.MaxEntitiesPerClass < 0 {
		return fmt.Errorf("max_entities_per_class must be >= 0 (got %d)", a.MaxEntitiesPerClass)
	}
	return nil
}
