package manifest

import "github.com/StephanMalan/project-toml-parser/internal/parser"

// Kind describes one recognized manifest type: which file to look for, how to
// decode it, where the project identity lives and which glyphs represent it.
type Kind struct {
	// ID is a short stable identifier (e.g. "cargo").
	ID string

	// Filename is the exact, case-sensitive manifest base name.
	Filename string

	// Format is the document format of the manifest.
	Format parser.Format

	// NameField is the dot-notation path to the project name.
	NameField string

	// VersionField is the dot-notation path to the project version.
	VersionField string

	// Icon is the primary display glyph.
	Icon string

	// AltIcon is the secondary display glyph.
	AltIcon string
}

// Built-in kinds.
var (
	// Cargo is a Rust package manifest.
	Cargo = Kind{
		ID:           "cargo",
		Filename:     "Cargo.toml",
		Format:       parser.FormatTOML,
		NameField:    "package.name",
		VersionField: "package.version",
		Icon:         "\ue7a8",
		AltIcon:      "🦀",
	}

	// Poetry is a Python project managed by Poetry.
	Poetry = Kind{
		ID:           "poetry",
		Filename:     "pyproject.toml",
		Format:       parser.FormatTOML,
		NameField:    "tool.poetry.name",
		VersionField: "tool.poetry.version",
		Icon:         "\ue73c",
		AltIcon:      "🐍",
	}
)

// DefaultKinds returns the built-in kinds in priority order. When several
// manifests sit in the same directory, the earliest kind wins.
func DefaultKinds() []Kind {
	return []Kind{Cargo, Poetry}
}

// Lookup returns the first kind in kinds whose Filename equals name.
func Lookup(kinds []Kind, name string) (Kind, bool) {
	for _, k := range kinds {
		if k.Filename == name {
			return k, true
		}
	}
	return Kind{}, false
}
