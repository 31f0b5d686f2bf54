package discovery

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/StephanMalan/project-toml-parser/internal/core"
	"github.com/StephanMalan/project-toml-parser/internal/manifest"
)

// Service provides manifest lookup functionality.
type Service struct {
	fs    core.FileSystem
	kinds []manifest.Kind
}

// NewService creates a new discovery Service. Kinds are matched in the order
// given; a nil slice selects manifest.DefaultKinds.
func NewService(fs core.FileSystem, kinds []manifest.Kind) *Service {
	if kinds == nil {
		kinds = manifest.DefaultKinds()
	}
	return &Service{
		fs:    fs,
		kinds: kinds,
	}
}

// Locate walks from start toward the filesystem root and returns the first
// directory's manifest. start should be absolute and symlink-free; when it
// names a file the walk begins in the file's directory.
//
// Any unreadable directory ends the walk with ErrNotFound wrapping the cause.
func (s *Service) Locate(ctx context.Context, start string) (*Match, error) {
	dir := filepath.Clean(start)
	if info, err := s.fs.Stat(ctx, dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		match, err := s.matchInDir(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		if match != nil {
			return match, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, fmt.Errorf("%w above %q", ErrNotFound, start)
		}
		dir = parent
	}
}

// matchInDir returns the highest-priority manifest among dir's entries, or
// nil when dir holds none.
func (s *Service) matchInDir(ctx context.Context, dir string) (*Match, error) {
	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		return nil, err
	}

	present := make(map[string]bool, len(entries))
	for _, entry := range entries {
		present[entry.Name()] = true
	}

	for _, kind := range s.kinds {
		if present[kind.Filename] {
			return &Match{
				Kind: kind,
				Path: filepath.Join(dir, kind.Filename),
				Dir:  dir,
			}, nil
		}
	}

	return nil, nil
}

// Describe locates the nearest manifest above start and reads its project
// details. A located manifest that fails to read does not fall through to
// ancestor directories.
func (s *Service) Describe(ctx context.Context, start string) (*manifest.ProjectDetails, *Match, error) {
	match, err := s.Locate(ctx, start)
	if err != nil {
		return nil, nil, err
	}

	details, err := manifest.NewReader(s.fs).Read(ctx, match.Kind, match.Path)
	if err != nil {
		return nil, match, err
	}

	return details, match, nil
}
