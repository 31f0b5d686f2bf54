// Package parser decodes structured manifest documents (TOML, YAML and JSON)
// and extracts string fields from them using dot notation, e.g.
// "package.name" or "tool.poetry.version".
package parser
