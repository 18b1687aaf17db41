package splitstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// FileStore is a file-based split store. Records are stored as one JSON
// file per record in a directory.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// NewFileStore creates a file-based split store rooted at baseDir.
// If baseDir is empty, defaults to ~/.config/taxsplit/splits/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".config", "taxsplit", "splits")
	}
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("create split store dir: %w", err)
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) recordPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

// Save writes the record as indented JSON.
func (s *FileStore) Save(ctx context.Context, rec *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal split record: %w", err)
	}
	if err := os.WriteFile(s.recordPath(rec.ID), data, 0644); err != nil {
		return fmt.Errorf("write split record: %w", err)
	}
	return nil
}

// Get reads a record by id.
func (s *FileStore) Get(ctx context.Context, id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.recordPath(id))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read split record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parse split record: %w", err)
	}
	return &rec, nil
}

// List returns all records, newest first.
func (s *FileStore) List(ctx context.Context) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, fmt.Errorf("list split records: %w", err)
	}

	var records []*Record
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name()))
		if err != nil {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}

	slices.SortFunc(records, func(a, b *Record) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return records, nil
}

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)
