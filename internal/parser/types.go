package parser

import "errors"

// Format represents the supported document formats.
type Format string

const (
	// FormatTOML is for TOML files (Cargo.toml, pyproject.toml, etc.).
	FormatTOML Format = "toml"

	// FormatYAML is for YAML files (Chart.yaml, pubspec.yaml, etc.).
	FormatYAML Format = "yaml"

	// FormatJSON is for JSON files (package.json, composer.json, etc.).
	FormatJSON Format = "json"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known valid format.
func (f Format) IsValid() bool {
	switch f {
	case FormatTOML, FormatYAML, FormatJSON:
		return true
	default:
		return false
	}
}

// ParseFormat converts a string to a Format. Unknown names yield an invalid
// Format, which callers detect with IsValid.
func ParseFormat(s string) Format {
	return Format(s)
}

var (
	// ErrParse is returned when a document is not valid for its format.
	ErrParse = errors.New("document could not be parsed")

	// ErrFieldNotFound is returned when a dot-notation path does not resolve.
	ErrFieldNotFound = errors.New("field not found")

	// ErrNotString is returned when a field exists but holds a non-string value.
	ErrNotString = errors.New("field is not a string")
)
