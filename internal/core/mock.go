package core

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// MockFileSystem is an in-memory FileSystem for tests. Directories are
// implied by the files stored beneath them.
type MockFileSystem struct {
	mu         sync.RWMutex
	files      map[string][]byte
	dirs       map[string]bool
	unreadable map[string]bool
}

// NewMockFileSystem returns an empty MockFileSystem.
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		files:      make(map[string][]byte),
		dirs:       map[string]bool{string(filepath.Separator): true},
		unreadable: make(map[string]bool),
	}
}

// SetFile stores a file and registers all of its parent directories.
func (m *MockFileSystem) SetFile(path string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	path = filepath.Clean(path)
	m.files[path] = data
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if filepath.Dir(dir) == dir {
			break
		}
	}
}

// SetDir registers an empty directory and its parents.
func (m *MockFileSystem) SetDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for dir := filepath.Clean(path); ; dir = filepath.Dir(dir) {
		m.dirs[dir] = true
		if filepath.Dir(dir) == dir {
			break
		}
	}
}

// SetUnreadable makes ReadFile and ReadDir fail with fs.ErrPermission for path.
func (m *MockFileSystem) SetUnreadable(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unreadable[filepath.Clean(path)] = true
}

// ReadFile returns the stored content for path.
func (m *MockFileSystem) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if m.unreadable[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	data, ok := m.files[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

// ReadDir returns the direct children of path sorted by name, like os.ReadDir.
func (m *MockFileSystem) ReadDir(ctx context.Context, path string) ([]fs.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if m.unreadable[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrPermission}
	}
	if !m.dirs[path] {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	add := func(child string, isDir bool, size int) {
		if filepath.Dir(child) != path || child == path || seen[child] {
			return
		}
		seen[child] = true
		entries = append(entries, mockEntry{info: mockInfo{name: filepath.Base(child), dir: isDir, size: int64(size)}})
	}
	for p, data := range m.files {
		add(p, false, len(data))
	}
	for d := range m.dirs {
		add(d, true, 0)
	}

	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

// Stat reports whether path is a stored file or directory.
func (m *MockFileSystem) Stat(ctx context.Context, path string) (fs.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	path = filepath.Clean(path)
	if data, ok := m.files[path]; ok {
		return mockInfo{name: filepath.Base(path), size: int64(len(data))}, nil
	}
	if m.dirs[path] {
		return mockInfo{name: filepath.Base(path), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
}

type mockInfo struct {
	name string
	dir  bool
	size int64
}

func (i mockInfo) Name() string       { return i.name }
func (i mockInfo) Size() int64        { return i.size }
func (i mockInfo) ModTime() time.Time { return time.Time{} }
func (i mockInfo) IsDir() bool        { return i.dir }
func (i mockInfo) Sys() any           { return nil }

func (i mockInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}

type mockEntry struct {
	info mockInfo
}

func (e mockEntry) Name() string               { return e.info.name }
func (e mockEntry) IsDir() bool                { return e.info.dir }
func (e mockEntry) Type() fs.FileMode          { return e.info.Mode().Type() }
func (e mockEntry) Info() (fs.FileInfo, error) { return e.info, nil }
