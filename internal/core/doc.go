// Package core holds the small set of abstractions shared by the rest of the
// module, most notably the FileSystem interface used to keep directory walks
// and manifest reads testable without touching the real disk.
package core
