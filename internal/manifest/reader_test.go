package manifest

import (
	"context"
	"errors"
	"testing"

	"github.com/StephanMalan/project-toml-parser/internal/core"
	"github.com/StephanMalan/project-toml-parser/internal/parser"
)

func TestReader_Read(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		content string
		want    ProjectDetails
	}{
		{
			name:    "cargo",
			kind:    Cargo,
			content: "[package]\nname = \"foo\"\nversion = \"1.2.3\"\nedition = \"2021\"\n",
			want:    ProjectDetails{Icon: "\ue7a8", AltIcon: "🦀", Name: "foo", Version: "1.2.3"},
		},
		{
			name:    "poetry",
			kind:    Poetry,
			content: "[tool.poetry]\nname = \"bar\"\nversion = \"0.1.0\"\n\n[build-system]\nrequires = [\"poetry-core\"]\n",
			want:    ProjectDetails{Icon: "\ue73c", AltIcon: "🐍", Name: "bar", Version: "0.1.0"},
		},
		{
			name: "yaml kind",
			kind: Kind{
				ID: "helm", Filename: "Chart.yaml", Format: parser.FormatYAML,
				NameField: "name", VersionField: "version", Icon: "⎈", AltIcon: "⛵",
			},
			content: "apiVersion: v2\nname: chart\nversion: 0.4.0\n",
			want:    ProjectDetails{Icon: "⎈", AltIcon: "⛵", Name: "chart", Version: "0.4.0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			path := "/project/" + tt.kind.Filename
			fs.SetFile(path, []byte(tt.content))

			got, err := NewReader(fs).Read(context.Background(), tt.kind, path)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("Read() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestReader_Read_Failures(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		content *string
		wantErr error
	}{
		{
			name:    "missing file",
			kind:    Cargo,
			wantErr: ErrUnreadable,
		},
		{
			name:    "invalid syntax",
			kind:    Cargo,
			content: ptr("[package\nname = \"foo\""),
			wantErr: ErrMalformed,
		},
		{
			name:    "missing version",
			kind:    Cargo,
			content: ptr("[package]\nname = \"foo\"\n"),
			wantErr: ErrMissingField,
		},
		{
			name:    "empty name",
			kind:    Cargo,
			content: ptr("[package]\nname = \"\"\nversion = \"1.0.0\"\n"),
			wantErr: ErrMissingField,
		},
		{
			name:    "pep 621 pyproject without poetry table",
			kind:    Poetry,
			content: ptr("[project]\nname = \"bar\"\nversion = \"0.1.0\"\n"),
			wantErr: ErrMissingField,
		},
		{
			name:    "version wrong type",
			kind:    Poetry,
			content: ptr("[tool.poetry]\nname = \"bar\"\nversion = 1\n"),
			wantErr: ErrMissingField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			path := "/project/" + tt.kind.Filename
			if tt.content != nil {
				fs.SetFile(path, []byte(*tt.content))
			}

			got, err := NewReader(fs).Read(context.Background(), tt.kind, path)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("Read() = %+v, want nil", got)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	kinds := DefaultKinds()

	k, ok := Lookup(kinds, "pyproject.toml")
	if !ok || k.ID != "poetry" {
		t.Errorf("Lookup(pyproject.toml) = %v, %v", k.ID, ok)
	}

	if _, ok := Lookup(kinds, "cargo.toml"); ok {
		t.Error("Lookup must be case-sensitive")
	}
}

func TestDefaultKinds_Order(t *testing.T) {
	kinds := DefaultKinds()
	if len(kinds) != 2 || kinds[0].ID != "cargo" || kinds[1].ID != "poetry" {
		t.Errorf("DefaultKinds() = %v", kinds)
	}
}

func ptr(s string) *string { return &s }
