package taxonomy

import (
	"strings"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
)

// LeavesOf returns the members of the set that have no children.
// In this domain a leaf is a dataset class.
func (g *Graph) LeavesOf(set Set) Set {
	leaves := NewSet()
	for id := range set {
		if g.children[id].Len() == 0 {
			leaves.Add(id)
		}
	}
	return leaves
}

// SpanningLeaves computes, for every node in the set, the set of leaves
// reachable from it via repeated child traversal. A leaf spans exactly one
// leaf: itself. The number of leaves a node spans estimates how "high" in
// the DAG the node sits.
//
// Each node is checked against every leaf with a descendant-reachability
// query, which is acceptable at taxonomy scale (hundreds to low thousands
// of nodes).
func (g *Graph) SpanningLeaves(set Set) map[string]Set {
	leaves := g.LeavesOf(set)
	spanning := make(map[string]Set, set.Len())
	for id := range set {
		span := NewSet()
		for leaf := range leaves {
			if leaf == id || g.IsDescendant(leaf, id) {
				span.Add(leaf)
			}
		}
		spanning[id] = span
	}
	return spanning
}

// SpanningCounts sums the external per-leaf counts (e.g. image counts) over
// each node's spanning-leaf set. Every spanned leaf must be present in
// leafCounts; absent leaves produce a MISSING_IDS error naming each one.
func SpanningCounts(spanning map[string]Set, leafCounts map[string]int) (map[string]int, error) {
	missing := NewSet()
	counts := make(map[string]int, len(spanning))
	for id, leaves := range spanning {
		total := 0
		for leaf := range leaves {
			n, ok := leafCounts[leaf]
			if !ok {
				missing.Add(leaf)
				continue
			}
			total += n
		}
		counts[id] = total
	}
	if missing.Len() > 0 {
		return nil, tserrors.New(tserrors.ErrCodeMissingIDs,
			"no leaf counts for ids: %s", strings.Join(missing.SortedIDs(), ", "))
	}
	return counts, nil
}
