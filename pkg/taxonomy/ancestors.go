package taxonomy

// Ancestors returns the set of all strict ancestors of the node, reachable
// via repeated parent traversal. The node itself is never included.
// Returns an empty set if the id is not in the graph.
//
// The frontier is expanded in ascending id order so that any logging or
// debugging output downstream is reproducible across runs. Termination is
// guaranteed by acyclicity.
func (g *Graph) Ancestors(id string) Set {
	ancestors := NewSet()
	visited := NewSet()
	queue := g.ParentIDs(id)
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited.Has(cur) {
			continue
		}
		visited.Add(cur)
		ancestors.Add(cur)
		queue = append(queue, g.ParentIDs(cur)...)
	}
	return ancestors
}

// AncestorsOfSet returns the union of [Graph.Ancestors] over every id in the
// set. Members of the set appear in the result only if they are a strict
// ancestor of another member.
func (g *Graph) AncestorsOfSet(ids Set) Set {
	all := NewSet()
	for _, id := range ids.SortedIDs() {
		for a := range g.Ancestors(id) {
			all.Add(a)
		}
	}
	return all
}
