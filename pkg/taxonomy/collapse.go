package taxonomy

import (
	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
)

// Collapse repeatedly removes nodes with exactly one child, attaching that
// child to the removed node's parents, until a full pass performs zero
// collapses. It returns the surviving node set.
//
// A single-child node carries no branching information useful for sampling
// classes into disjoint groups, so it is elided and its child promoted to
// its position. Edge insertion is idempotent, so a node whose parent is
// collapsed within the same pass is handled without duplicate edges.
//
// Every surviving node has either zero children (a leaf) or at least two.
// Re-running Collapse on its own output is a no-op.
//
// The set is assumed to be isolated (see [Graph.Isolate]). A bookkeeping
// mismatch between removed nodes and recorded collapses indicates a
// corrupted graph and is returned as an INTERNAL_ERROR rather than silently
// continued.
func (g *Graph) Collapse(set Set) (Set, error) {
	nodes, collapsed, err := g.collapseOnce(set)
	if err != nil {
		return nil, err
	}
	for collapsed > 0 {
		nodes, collapsed, err = g.collapseOnce(nodes)
		if err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// collapseOnce performs one full pass over the set in ascending id order.
func (g *Graph) collapseOnce(nodes Set) (Set, int, error) {
	collapsed := 0
	kept := NewSet()
	for _, id := range nodes.SortedIDs() {
		if g.children[id].Len() != 1 {
			kept.Add(id)
			continue
		}

		// Attach the only child to all of the node's parents.
		child := g.children[id].SortedIDs()[0]
		for p := range g.parents[id] {
			g.parents[child].Add(p)
			g.children[p].Add(child)
		}

		// Remove all connections to and from the node.
		g.Excise(id)
		collapsed++
	}

	if nodes.Len()-kept.Len() != collapsed {
		return nil, 0, tserrors.New(tserrors.ErrCodeInternal,
			"collapse bookkeeping mismatch: removed %d nodes but recorded %d collapses",
			nodes.Len()-kept.Len(), collapsed)
	}
	return kept, collapsed, nil
}
