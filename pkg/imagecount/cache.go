package imagecount

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Cache persists a computed leaf-count mapping between runs.
type Cache interface {
	// Load returns the cached mapping and true, or false on a miss.
	Load(ctx context.Context) (map[string]int, bool, error)

	// Store persists the full mapping, replacing any previous content.
	Store(ctx context.Context, counts map[string]int) error
}

// FileCache stores the mapping as a single JSON object at a configurable
// path. Keys are written in stable (sorted) order for reproducibility, and
// an existing file is returned verbatim without rescanning.
type FileCache struct {
	Path string
}

// NewFileCache creates a file-backed count cache at path.
func NewFileCache(path string) *FileCache {
	return &FileCache{Path: path}
}

// Load reads and parses the cache file. A missing file is a miss.
func (c *FileCache) Load(ctx context.Context) (map[string]int, bool, error) {
	data, err := os.ReadFile(c.Path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var counts map[string]int
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, false, fmt.Errorf("parse count cache %s: %w", c.Path, err)
	}
	return counts, true, nil
}

// Store writes the mapping as indented JSON. Map keys marshal in sorted
// order, which keeps the file diffable across runs.
func (c *FileCache) Store(ctx context.Context, counts map[string]int) error {
	data, err := json.MarshalIndent(counts, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(c.Path, data, 0644)
}

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when caching should be disabled.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() *NullCache { return &NullCache{} }

// Load always returns a cache miss.
func (c *NullCache) Load(ctx context.Context) (map[string]int, bool, error) {
	return nil, false, nil
}

// Store does nothing.
func (c *NullCache) Store(ctx context.Context, counts map[string]int) error {
	return nil
}

// Ensure the backends implement Cache.
var (
	_ Cache = (*FileCache)(nil)
	_ Cache = (*NullCache)(nil)
)
