package parser

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/StephanMalan/project-toml-parser/internal/core"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

// Reader decodes documents through a core.FileSystem.
type Reader struct {
	fs core.FileSystem
}

// NewReader creates a new Reader with the given filesystem.
func NewReader(fs core.FileSystem) *Reader {
	return &Reader{fs: fs}
}

// Document is a decoded structured document.
type Document struct {
	path string
	root map[string]any
}

// Path returns the file the document was read from.
func (d *Document) Path() string {
	return d.path
}

// Read reads and decodes the file at path in the given format.
// I/O errors are returned as is; decoding failures wrap ErrParse.
func (r *Reader) Read(ctx context.Context, path string, format Format) (*Document, error) {
	if path == "" {
		return nil, fmt.Errorf("file path is required")
	}

	if !format.IsValid() {
		return nil, fmt.Errorf("invalid format: %q", format)
	}

	data, err := r.fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}

	root, err := decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s in %q: %w: %w", strings.ToUpper(format.String()), path, ErrParse, err)
	}

	return &Document{path: path, root: root}, nil
}

// String returns the string value stored at the dot-notation field path.
func (d *Document) String(field string) (string, error) {
	value, err := getNestedValue(d.root, field)
	if err != nil {
		return "", fmt.Errorf("in file %q: %w", d.path, err)
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q in %q: %w", field, d.path, ErrNotString)
	}

	return s, nil
}

// decode unmarshals data into a generic map according to format.
func decode(data []byte, format Format) (map[string]any, error) {
	var obj map[string]any
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &obj)
	case FormatYAML:
		err = yaml.Unmarshal(data, &obj)
	case FormatJSON:
		err = json.Unmarshal(data, &obj)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return nil, err
	}

	// An empty YAML document or a JSON "null" decodes to a nil map.
	if obj == nil {
		obj = map[string]any{}
	}
	return obj, nil
}

// getNestedValue retrieves a value from a nested map using dot notation.
// Example: "tool.poetry.version" accesses obj["tool"]["poetry"]["version"]
func getNestedValue(obj map[string]any, field string) (any, error) {
	if field == "" {
		return nil, fmt.Errorf("field path cannot be empty")
	}

	parts := strings.Split(field, ".")
	current := any(obj)

	for i, part := range parts {
		currentMap, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q is not an object at path %q: %w", strings.Join(parts[:i], "."), part, ErrFieldNotFound)
		}

		value, exists := currentMap[part]
		if !exists {
			return nil, fmt.Errorf("field %q: %w", field, ErrFieldNotFound)
		}

		current = value
	}

	return current, nil
}
