package taxonomy

import (
	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
)

// CloneSet deep-copies the given node set into a fresh graph: one new
// [Synset] per id (preserving id and label) with every parent→child edge of
// the source re-created between the clone identities. Downstream mutation of
// the clone never perturbs the source.
//
// The set must already be isolated: every edge endpoint of a member lies
// within the set. An edge leaving the set is a precondition failure and is
// reported as an INTERNAL_ERROR.
//
// If targetID is non-empty, the clone with that id is also returned, or nil
// if the id is not in the set.
func (g *Graph) CloneSet(set Set, targetID string) (*Graph, *Synset, error) {
	clone := New()
	for _, id := range set.SortedIDs() {
		src, ok := g.nodes[id]
		if !ok {
			return nil, nil, tserrors.New(tserrors.ErrCodeInternal,
				"clone requested for id %q not present in the graph", id)
		}
		if err := clone.AddSynset(src.ID, src.Label); err != nil {
			return nil, nil, tserrors.Wrap(tserrors.ErrCodeInternal, err, "clone node %q", id)
		}
	}

	for _, id := range set.SortedIDs() {
		for _, child := range g.ChildIDs(id) {
			if !set.Has(child) {
				return nil, nil, tserrors.New(tserrors.ErrCodeInternal,
					"clone precondition violated: edge %s -> %s leaves the node set (set not isolated)", id, child)
			}
			if err := clone.AddEdge(id, child); err != nil {
				return nil, nil, tserrors.Wrap(tserrors.ErrCodeInternal, err, "clone edge %s -> %s", id, child)
			}
		}
	}

	var target *Synset
	if targetID != "" {
		target, _ = clone.Node(targetID)
	}
	return clone, target, nil
}
