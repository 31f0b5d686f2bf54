package core

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestMockFileSystem_ReadDir(t *testing.T) {
	m := NewMockFileSystem()
	m.SetFile("/project/Cargo.toml", []byte("[package]\n"))
	m.SetFile("/project/src/main.rs", []byte("fn main() {}\n"))
	m.SetDir("/project/empty")

	entries, err := m.ReadDir(context.Background(), "/project")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []struct {
		name  string
		isDir bool
	}{
		{"Cargo.toml", false},
		{"empty", true},
		{"src", true},
	}
	if len(entries) != len(want) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Name() != w.name || entries[i].IsDir() != w.isDir {
			t.Errorf("entries[%d] = (%q, dir=%v), want (%q, dir=%v)",
				i, entries[i].Name(), entries[i].IsDir(), w.name, w.isDir)
		}
	}
}

func TestMockFileSystem_ReadDirRoot(t *testing.T) {
	m := NewMockFileSystem()
	m.SetFile("/a/b/c.txt", []byte("x"))

	entries, err := m.ReadDir(context.Background(), "/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "a" {
		t.Errorf("ReadDir(/) = %v, want [a]", entries)
	}
}

func TestMockFileSystem_Errors(t *testing.T) {
	ctx := context.Background()
	m := NewMockFileSystem()
	m.SetFile("/locked/file.toml", []byte("x"))
	m.SetUnreadable("/locked")
	m.SetUnreadable("/locked/file.toml")

	if _, err := m.ReadDir(ctx, "/missing"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadDir(missing) error = %v, want ErrNotExist", err)
	}
	if _, err := m.ReadDir(ctx, "/locked"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("ReadDir(locked) error = %v, want ErrPermission", err)
	}
	if _, err := m.ReadFile(ctx, "/locked/file.toml"); !errors.Is(err, fs.ErrPermission) {
		t.Errorf("ReadFile(locked) error = %v, want ErrPermission", err)
	}
	if _, err := m.Stat(ctx, "/nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat(nope) error = %v, want ErrNotExist", err)
	}
}

func TestMockFileSystem_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMockFileSystem()
	m.SetFile("/f", []byte("x"))

	if _, err := m.ReadFile(ctx, "/f"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFile error = %v, want context.Canceled", err)
	}
	if _, err := m.ReadDir(ctx, "/"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadDir error = %v, want context.Canceled", err)
	}
}

func TestOSFileSystem(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	if err := os.WriteFile(path, []byte("[tool.poetry]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	fsys := NewOSFileSystem()

	data, err := fsys.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "[tool.poetry]\n" {
		t.Errorf("ReadFile = %q", data)
	}

	entries, err := fsys.ReadDir(ctx, dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "pyproject.toml" {
		t.Errorf("ReadDir = %v, want [pyproject.toml]", entries)
	}

	info, err := fsys.Stat(ctx, dir)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir).IsDir() = false, want true")
	}
}
