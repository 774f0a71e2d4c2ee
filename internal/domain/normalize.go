package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// NormalizeKeyName trims surrounding whitespace from a key name.
// Inner whitespace and case are significant and preserved.
func NormalizeKeyName(name string) string {
	return strings.TrimSpace(name)
}

// CanonicalLanguageTag parses a BCP-47 tag and returns its canonical form,
// e.g. "EN_us" -> "en-US".
func CanonicalLanguageTag(tag string) (string, error) {
	tag = strings.ReplaceAll(strings.TrimSpace(tag), "_", "-")
	if tag == "" {
		return "", fmt.Errorf("empty language tag")
	}
	parsed, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("parse language tag %q: %w", tag, err)
	}
	return parsed.String(), nil
}

// LanguageDisplayName returns the English name of a canonical tag ("de-AT" -> "Austrian German").
// Returns the tag itself when no name is known.
func LanguageDisplayName(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil {
		return tag
	}
	name := display.English.Tags().Name(parsed)
	if name == "" {
		return tag
	}
	return name
}

// LanguageNativeName returns the name of the language in itself ("de" -> "Deutsch").
func LanguageNativeName(tag string) string {
	parsed, err := language.Parse(tag)
	if err != nil {
		return ""
	}
	return display.Self.Name(parsed)
}
