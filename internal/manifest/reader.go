package manifest

import (
	"context"
	"errors"
	"fmt"

	"github.com/StephanMalan/project-toml-parser/internal/core"
	"github.com/StephanMalan/project-toml-parser/internal/parser"
)

var (
	// ErrUnreadable is returned when the manifest file cannot be read.
	ErrUnreadable = errors.New("manifest unreadable")

	// ErrMalformed is returned when the manifest is not a valid document.
	ErrMalformed = errors.New("manifest malformed")

	// ErrMissingField is returned when the name or version is absent, empty
	// or not a string.
	ErrMissingField = errors.New("manifest field missing")
)

// ProjectDetails is the project identity extracted from a manifest.
type ProjectDetails struct {
	Icon    string `json:"icon"`
	AltIcon string `json:"alt_icon"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Reader reads ProjectDetails from manifests.
type Reader struct {
	parser *parser.Reader
}

// NewReader creates a Reader that reads through fs.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{parser: parser.NewReader(fs)}
}

// Read decodes the manifest at path according to kind and returns its details.
// Every failure wraps one of ErrUnreadable, ErrMalformed or ErrMissingField.
func (r *Reader) Read(ctx context.Context, kind Kind, path string) (*ProjectDetails, error) {
	doc, err := r.parser.Read(ctx, path, kind.Format)
	if err != nil {
		if errors.Is(err, parser.ErrParse) {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	name, err := requireString(doc, kind.NameField)
	if err != nil {
		return nil, err
	}
	version, err := requireString(doc, kind.VersionField)
	if err != nil {
		return nil, err
	}

	return &ProjectDetails{
		Icon:    kind.Icon,
		AltIcon: kind.AltIcon,
		Name:    name,
		Version: version,
	}, nil
}

func requireString(doc *parser.Document, field string) (string, error) {
	value, err := doc.String(field)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMissingField, err)
	}
	if value == "" {
		return "", fmt.Errorf("%w: field %q in %q is empty", ErrMissingField, field, doc.Path())
	}
	return value, nil
}
