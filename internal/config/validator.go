package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/StephanMalan/project-toml-parser/internal/manifest"
	"github.com/StephanMalan/project-toml-parser/internal/parser"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Manifest node").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validate checks every configured manifest kind and returns one result per
// problem found. A config without problems yields no results.
func Validate(cfg *Config) []ValidationResult {
	var results []ValidationResult
	if cfg == nil {
		return results
	}

	known := manifest.DefaultKinds()
	ids := make(map[string]bool)
	for _, k := range known {
		ids[k.ID] = true
	}

	fail := func(category, format string, args ...any) {
		results = append(results, ValidationResult{
			Category: category,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	for i, m := range cfg.Manifests {
		category := fmt.Sprintf("Manifest #%d", i+1)
		if m.ID != "" {
			category = fmt.Sprintf("Manifest %s", m.ID)
		}

		switch {
		case m.ID == "":
			fail(category, "id is required")
		case ids[m.ID]:
			fail(category, "id %q is already defined", m.ID)
		default:
			ids[m.ID] = true
		}

		switch {
		case m.Filename == "":
			fail(category, "filename is required")
		case filepath.Base(m.Filename) != m.Filename || strings.ContainsAny(m.Filename, `/\`):
			fail(category, "filename %q must be a base name", m.Filename)
		default:
			if other, ok := manifest.Lookup(known, m.Filename); ok {
				fail(category, "filename %q is already recognized by %q", m.Filename, other.ID)
			} else {
				known = append(known, m.Kind())
			}
		}

		if !parser.ParseFormat(strings.ToLower(m.Format)).IsValid() {
			fail(category, "format %q must be one of toml, yaml, json", m.Format)
		}
		if m.NameField == "" {
			fail(category, "name-field is required")
		}
		if m.VersionField == "" {
			fail(category, "version-field is required")
		}

		if m.Icon == "" && m.AltIcon == "" {
			results = append(results, ValidationResult{
				Category: category,
				Passed:   true,
				Warning:  true,
				Message:  "no icons set; formal and playful output will start with a space",
			})
		}
	}

	return results
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	return ErrorCount(results) > 0
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// Warnings returns the results flagged as warnings.
func Warnings(results []ValidationResult) []ValidationResult {
	var warnings []ValidationResult
	for _, r := range results {
		if r.Warning {
			warnings = append(warnings, r)
		}
	}
	return warnings
}

// ErrorMessages formats failed validations as "category: message".
func ErrorMessages(results []ValidationResult) []string {
	var msgs []string
	for _, r := range results {
		if !r.Passed && !r.Warning {
			msgs = append(msgs, r.Category+": "+r.Message)
		}
	}
	return msgs
}
