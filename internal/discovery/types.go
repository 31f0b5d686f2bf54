package discovery

import (
	"errors"

	"github.com/StephanMalan/project-toml-parser/internal/manifest"
)

// ErrNotFound is returned when no recognized manifest exists between the
// starting path and the filesystem root, or when a directory on the way up
// cannot be read.
var ErrNotFound = errors.New("no manifest found")

// Match is a located manifest.
type Match struct {
	// Kind is the manifest kind that matched.
	Kind manifest.Kind

	// Path is the absolute path to the manifest file.
	Path string

	// Dir is the directory containing the manifest.
	Dir string
}
