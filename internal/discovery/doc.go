// Package discovery locates the nearest project manifest by walking upward
// from a starting path through its ancestor directories.
package discovery
