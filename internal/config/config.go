// Package config loads the optional YAML file that declares additional
// manifest kinds on top of the built-in ones.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/StephanMalan/project-toml-parser/internal/core"
	"github.com/StephanMalan/project-toml-parser/internal/manifest"
	"github.com/StephanMalan/project-toml-parser/internal/parser"
	"github.com/goccy/go-yaml"
)

// ErrInvalidConfig is returned when the config file cannot be decoded or
// fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// ManifestConfig declares one additional manifest kind.
type ManifestConfig struct {
	ID           string `yaml:"id"`
	Filename     string `yaml:"filename"`
	Format       string `yaml:"format"`
	NameField    string `yaml:"name-field"`
	VersionField string `yaml:"version-field"`
	Icon         string `yaml:"icon,omitempty"`
	AltIcon      string `yaml:"alt-icon,omitempty"`
}

// Kind converts the declaration into a manifest.Kind.
func (m ManifestConfig) Kind() manifest.Kind {
	return manifest.Kind{
		ID:           m.ID,
		Filename:     m.Filename,
		Format:       parser.ParseFormat(strings.ToLower(m.Format)),
		NameField:    m.NameField,
		VersionField: m.VersionField,
		Icon:         m.Icon,
		AltIcon:      m.AltIcon,
	}
}

// Config is the top-level configuration structure.
type Config struct {
	Manifests []ManifestConfig `yaml:"manifests,omitempty"`

	// Warnings holds the non-fatal validation results from Load.
	Warnings []ValidationResult `yaml:"-"`
}

// Kinds returns the built-in kinds followed by the configured ones.
// A nil Config yields the built-ins only.
func (c *Config) Kinds() []manifest.Kind {
	kinds := manifest.DefaultKinds()
	if c == nil {
		return kinds
	}
	for _, m := range c.Manifests {
		kinds = append(kinds, m.Kind())
	}
	return kinds
}

// Load reads, decodes and validates the config file at path.
func Load(ctx context.Context, fs core.FileSystem, path string) (*Config, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	if err := decoder.Decode(&cfg); err != nil {
		// A file with no YAML document is an empty config.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidConfig, path, err)
	}

	results := Validate(&cfg)
	if HasErrors(results) {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidConfig, path, strings.Join(ErrorMessages(results), "; "))
	}
	cfg.Warnings = Warnings(results)

	return &cfg, nil
}
