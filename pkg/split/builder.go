package split

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// Subgraph is a split's final sampling graph: an isolated-and-collapsed node
// set within its own cloned universe. Root is the clone-identity root id for
// valid/test and empty for train.
type Subgraph struct {
	Graph *taxonomy.Graph
	Nodes taxonomy.Set
	Root  string
}

// Result is the outcome of a full split construction.
type Result struct {
	// Graphs maps each split to its final subgraph.
	Graphs map[Name]*Subgraph

	// Classes maps each split to its assigned leaf class ids
	// (ids of the original sampling universe).
	Classes map[Name]taxonomy.Set

	// Roots are the chosen valid and test roots.
	Roots Roots
}

// Builder orchestrates split construction with shared options and logging.
type Builder struct {
	Logger *log.Logger
	Opts   Options
}

// NewBuilder creates a Builder. A nil logger falls back to log.Default().
func NewBuilder(logger *log.Logger, opts Options) *Builder {
	if logger == nil {
		logger = log.Default()
	}
	return &Builder{Logger: logger, Opts: opts.withDefaults()}
}

// CreateSamplingGraph reduces g, in place, to the DAG that contains exactly
// the given leaves and their ancestors: by construction the leaves of the
// result are all and only the members of leaves. If rootID is non-empty,
// ancestors that are neither the root nor a descendant of it are dropped,
// keeping the chosen root as the unique top of the subgraph. The node set is
// then isolated and collapsed, and the surviving set returned.
func CreateSamplingGraph(g *taxonomy.Graph, leaves taxonomy.Set, rootID string) (taxonomy.Set, error) {
	nodes := g.AncestorsOfSet(leaves)

	if rootID != "" {
		for _, id := range nodes.SortedIDs() {
			if id != rootID && !g.IsDescendant(id, rootID) {
				nodes.Delete(id)
			}
		}
	}

	nodes = nodes.Union(leaves)
	g.Isolate(nodes)
	return g.Collapse(nodes)
}

// BuildSplits converts a sampling universe into the three final split
// subgraphs. If roots is nil, roots are proposed from the spans.
//
// The graph g must be the full sampling universe the spans were computed on
// (already isolated and collapsed, see [CreateSamplingGraph]); g itself is
// never mutated, each split works on its own clone.
func (b *Builder) BuildSplits(g *taxonomy.Graph, spanning map[string]taxonomy.Set, roots *Roots) (*Result, error) {
	start := time.Now()

	classes, chosen, err := ClassSplits(g, spanning, roots, b.Opts, b.Logger)
	if err != nil {
		return nil, err
	}

	universes, err := cloneSplitUniverses(g, classes, spanning, chosen)
	if err != nil {
		return nil, err
	}

	graphs := make(map[Name]*Subgraph, len(universes))
	for _, name := range Names() {
		u := universes[name]
		nodes, err := CreateSamplingGraph(u.graph, u.leaves, u.root)
		if err != nil {
			return nil, err
		}
		graphs[name] = &Subgraph{Graph: u.graph, Nodes: nodes, Root: u.root}
		b.Logger.Infof("%s split: %d classes, %d graph nodes", name, u.leaves.Len(), nodes.Len())
	}

	b.Logger.Infof("built splits (%s)", time.Since(start).Round(time.Millisecond))
	return &Result{Graphs: graphs, Classes: classes, Roots: chosen}, nil
}
