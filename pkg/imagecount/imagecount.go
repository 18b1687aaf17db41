// Package imagecount derives the number of images available for each leaf
// class of the taxonomy, with a pluggable cache so the file-system scan runs
// at most once per dataset.
//
// The dataset root is expected to contain one directory per class, named by
// the class's WordNet id (e.g. n15075141) and holding that class's images.
// Counting is read-only and happens before any graph surgery, so a cache
// failure can never corrupt or partially mutate an in-memory graph.
package imagecount

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// imageSuffix is matched case-insensitively against file names.
const imageSuffix = "jpeg"

// Scanner counts per-class images under a dataset root.
type Scanner struct {
	// Root is the dataset root with one directory per class id.
	Root string

	// SkipFiles names files that must not be counted, e.g. images that
	// repeat in other datasets of the same benchmark.
	SkipFiles map[string]struct{}

	// Logger reports scan progress. Never nil after NewScanner.
	Logger *log.Logger
}

// NewScanner creates a Scanner. A nil logger falls back to log.Default().
func NewScanner(root string, skipFiles []string, logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.Default()
	}
	skip := make(map[string]struct{}, len(skipFiles))
	for _, f := range skipFiles {
		skip[f] = struct{}{}
	}
	return &Scanner{Root: root, SkipFiles: skip, Logger: logger}
}

// Counts returns a mapping from each leaf id to its number of images.
//
// If cache holds a previously computed mapping, that mapping is returned
// verbatim without touching the file system. Otherwise every class
// directory is scanned - counting files whose lowercased name ends in
// "jpeg", minus the skip set - and the full mapping is written back to the
// cache. Cache write failures are logged, not fatal: the computed counts
// are still returned.
func (s *Scanner) Counts(ctx context.Context, cache Cache, leafIDs []string) (map[string]int, error) {
	if cache == nil {
		cache = NewNullCache()
	}

	if counts, ok, err := cache.Load(ctx); err != nil {
		s.Logger.Warnf("reading leaf count cache: %v", err)
	} else if ok {
		s.Logger.Info("loaded leaf image counts from cache")
		return counts, nil
	}

	s.Logger.Info("deriving leaf image counts from the dataset root...")
	counts := make(map[string]int, len(leafIDs))
	for _, id := range slices.Sorted(slices.Values(leafIDs)) {
		n, skipped, err := s.countDir(filepath.Join(s.Root, id))
		if err != nil {
			return nil, fmt.Errorf("count images for %s: %w", id, err)
		}
		if skipped > 0 {
			s.Logger.Debugf("synset %s: skipped %d files", id, skipped)
		}
		counts[id] = n
	}

	if err := cache.Store(ctx, counts); err != nil {
		s.Logger.Warnf("writing leaf count cache: %v", err)
	}
	return counts, nil
}

func (s *Scanner) countDir(dir string) (counted, skipped int, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, 0, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if _, skip := s.SkipFiles[name]; skip || !strings.HasSuffix(strings.ToLower(name), imageSuffix) {
			skipped++
			continue
		}
		counted++
	}
	return counted, skipped, nil
}
