// Package manifest describes the recognized project manifest kinds and reads
// the project identity (name, version and display glyphs) out of them.
package manifest
