// Package output renders ProjectDetails for printing.
package output

import (
	"fmt"
	"strings"

	"github.com/StephanMalan/project-toml-parser/internal/manifest"
	"github.com/tidwall/sjson"
)

// Format selects one of the fixed output templates.
type Format string

const (
	// FormatBasic prints "{name}:{version}".
	FormatBasic Format = "basic"

	// FormatFormal prints "{icon} {name}:{version}".
	FormatFormal Format = "formal"

	// FormatPlayful prints "{alt_icon} {name}:{version}".
	FormatPlayful Format = "playful"
)

var templates = map[Format]string{
	FormatBasic:   "{name}:{version}",
	FormatFormal:  "{icon} {name}:{version}",
	FormatPlayful: "{alt_icon} {name}:{version}",
}

// Formats returns the valid format names in display order.
func Formats() []Format {
	return []Format{FormatBasic, FormatFormal, FormatPlayful}
}

// Names returns the valid format names as strings, in display order.
func Names() []string {
	formats := Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return names
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	if _, ok := templates[f]; !ok {
		return "", fmt.Errorf("unknown format %q (expected one of %s)", s, strings.Join(Names(), ", "))
	}
	return f, nil
}

// Template returns the placeholder template for f, falling back to basic.
func (f Format) Template() string {
	if tmpl, ok := templates[f]; ok {
		return tmpl
	}
	return templates[FormatBasic]
}

// Render substitutes the details into the template selected by f.
func Render(details manifest.ProjectDetails, f Format) string {
	r := strings.NewReplacer(
		"{name}", details.Name,
		"{version}", details.Version,
		"{icon}", details.Icon,
		"{alt_icon}", details.AltIcon,
	)
	return r.Replace(f.Template())
}

// RenderJSON renders the details as a single-line JSON object.
func RenderJSON(details manifest.ProjectDetails) (string, error) {
	out := "{}"
	fields := []struct {
		key   string
		value string
	}{
		{"name", details.Name},
		{"version", details.Version},
		{"icon", details.Icon},
		{"alt_icon", details.AltIcon},
	}

	var err error
	for _, f := range fields {
		out, err = sjson.Set(out, f.key, f.value)
		if err != nil {
			return "", fmt.Errorf("failed to set %q: %w", f.key, err)
		}
	}
	return out, nil
}
