// Package loader reads chip configuration sources into nested maps.
//
// Each source (a TOML file, the process environment) produces a
// map[string]any keyed by section and setting name. Sources are layered
// with DeepMerge, later sources overriding earlier ones.
package loader

import "os"

// Loader is implemented by every configuration source.
type Loader interface {
	// Load returns the source as a nested map.
	// A source that does not exist yields nil, nil.
	Load() (map[string]any, error)
}

// FileSystem is the file access a file-backed loader needs.
// Tests substitute an in-memory implementation.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
}

// OSFS reads from the real file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
