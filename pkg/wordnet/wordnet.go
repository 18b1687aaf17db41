// Package wordnet loads the WordNet noun hierarchy from its standard flat
// files into taxonomy records.
//
// Two files describe the hierarchy:
//
//   - words.txt: one synset per line, "wnid<TAB>description"
//   - is_a.txt: one edge per line, "parent-wnid child-wnid"
//
// The loader builds mutually consistent parent/child links and rejects
// cyclic input up front, since every downstream graph operation assumes a
// DAG.
package wordnet

import (
	"bufio"
	"cmp"
	"fmt"
	"os"
	"slices"
	"strings"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// LoadRecords parses words.txt and is_a.txt into flat taxonomy records,
// sorted by id. Edges referencing undeclared ids are an INVALID_INPUT
// error.
func LoadRecords(wordsPath, isAPath string) ([]taxonomy.Record, error) {
	byID, err := readWords(wordsPath)
	if err != nil {
		return nil, err
	}
	if err := readEdges(isAPath, byID); err != nil {
		return nil, err
	}

	records := make([]taxonomy.Record, 0, len(byID))
	for _, r := range byID {
		records = append(records, *r)
	}
	slices.SortFunc(records, func(a, b taxonomy.Record) int { return cmp.Compare(a.ID, b.ID) })
	return records, nil
}

// LoadGraph loads the records, builds the graph, and validates acyclicity
// and link symmetry.
func LoadGraph(wordsPath, isAPath string) (*taxonomy.Graph, error) {
	records, err := LoadRecords(wordsPath, isAPath)
	if err != nil {
		return nil, err
	}
	g, err := taxonomy.NewFromRecords(records)
	if err != nil {
		return nil, tserrors.Wrap(tserrors.ErrCodeInvalidInput, err, "build taxonomy graph")
	}
	if err := g.Validate(); err != nil {
		return nil, tserrors.Wrap(tserrors.ErrCodeInvalidInput, err, "validate taxonomy graph")
	}
	return g, nil
}

func readWords(path string) (map[string]*taxonomy.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open words file: %w", err)
	}
	defer f.Close()

	byID := make(map[string]*taxonomy.Record)
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimRight(scanner.Text(), "\r\n")
		if text == "" {
			continue
		}
		id, label, ok := strings.Cut(text, "\t")
		if !ok || id == "" {
			return nil, tserrors.New(tserrors.ErrCodeInvalidInput,
				"%s:%d: expected \"wnid<TAB>description\", got %q", path, line, text)
		}
		if _, exists := byID[id]; exists {
			return nil, tserrors.New(tserrors.ErrCodeInvalidInput,
				"%s:%d: duplicate synset id %s", path, line, id)
		}
		byID[id] = &taxonomy.Record{ID: id, Label: label}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read words file: %w", err)
	}
	return byID, nil
}

func readEdges(path string, byID map[string]*taxonomy.Record) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open is_a file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return tserrors.New(tserrors.ErrCodeInvalidInput,
				"%s:%d: expected \"parent child\", got %q", path, line, text)
		}
		parent, child := fields[0], fields[1]
		p, ok := byID[parent]
		if !ok {
			return tserrors.New(tserrors.ErrCodeInvalidInput,
				"%s:%d: edge references undeclared synset %s", path, line, parent)
		}
		c, ok := byID[child]
		if !ok {
			return tserrors.New(tserrors.ErrCodeInvalidInput,
				"%s:%d: edge references undeclared synset %s", path, line, child)
		}
		p.ChildIDs = append(p.ChildIDs, child)
		c.ParentIDs = append(c.ParentIDs, parent)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read is_a file: %w", err)
	}
	return nil
}
