package cli

import (
	"bufio"
	"fmt"
	"os"

	"github.com/matzehuels/taxsplit/pkg/split"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
	"github.com/matzehuels/taxsplit/pkg/wordnet"
)

// loadTaxonomy loads the WordNet graph and the benchmark class set. When no
// classes file is configured, every leaf of the taxonomy is a class.
func (c *CLI) loadTaxonomy(cfg *Config) (*taxonomy.Graph, taxonomy.Set, error) {
	if cfg.Words == "" || cfg.IsA == "" {
		return nil, nil, fmt.Errorf("words and is_a file paths are required (set them via flags or %s.toml)", appName)
	}

	p := newProgress(c.Logger)
	g, err := wordnet.LoadGraph(cfg.Words, cfg.IsA)
	if err != nil {
		return nil, nil, err
	}
	p.done(fmt.Sprintf("Loaded %d synsets and %d edges", g.NodeCount(), g.EdgeCount()))

	if cfg.Classes == "" {
		return g, g.LeavesOf(g.IDSet()), nil
	}

	leaves, err := loadClasses(cfg.Classes)
	if err != nil {
		return nil, nil, err
	}
	// Every configured class must resolve to a known synset.
	if _, err := g.NodesByIDs(leaves.SortedIDs()); err != nil {
		return nil, nil, err
	}
	c.Logger.Infof("using %d classes from %s", leaves.Len(), cfg.Classes)
	return g, leaves, nil
}

// loadClasses reads a class file with one wnid per line.
func loadClasses(path string) (taxonomy.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open classes file: %w", err)
	}
	defer f.Close()

	leaves := taxonomy.NewSet()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if id := scanner.Text(); id != "" {
			leaves.Add(id)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read classes file: %w", err)
	}
	return leaves, nil
}

// buildUniverse reduces the graph, in place, to the sampling universe over
// the class leaves and computes every node's spanned-leaf set.
func (c *CLI) buildUniverse(g *taxonomy.Graph, leaves taxonomy.Set) (taxonomy.Set, map[string]taxonomy.Set, error) {
	p := newProgress(c.Logger)
	universe, err := split.CreateSamplingGraph(g, leaves, "")
	if err != nil {
		return nil, nil, err
	}
	spanning := g.SpanningLeaves(universe)
	p.done(fmt.Sprintf("Built sampling universe with %d nodes", universe.Len()))
	return universe, spanning, nil
}

// splitOptions builds split options from config, letting flag values win
// when they differ from the defaults the flags were initialized with.
func splitOptions(cfg *Config, flags split.Options) split.Options {
	opts := split.DefaultOptions()
	if cfg.Margin != 0 {
		opts.Margin = cfg.Margin
	}
	if cfg.ValidClasses != 0 {
		opts.ValidClasses = cfg.ValidClasses
	}
	if cfg.TestClasses != 0 {
		opts.TestClasses = cfg.TestClasses
	}
	if flags.Margin != split.DefaultMargin {
		opts.Margin = flags.Margin
	}
	if flags.ValidClasses != split.DefaultValidClasses {
		opts.ValidClasses = flags.ValidClasses
	}
	if flags.TestClasses != split.DefaultTestClasses {
		opts.TestClasses = flags.TestClasses
	}
	return opts
}
