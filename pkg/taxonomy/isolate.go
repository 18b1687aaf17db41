package taxonomy

// Isolate restricts the edges of every node in the set to endpoints within
// the set, cutting all links that leave it. After Isolate, following any
// child or parent pointer from a set member can only reach other members.
//
// Only nodes inside the set are rewritten; outside nodes may still hold
// links into the set, matching the semantics of a one-way cut.
func (g *Graph) Isolate(set Set) {
	for id := range set {
		if _, ok := g.nodes[id]; !ok {
			continue
		}
		g.children[id] = g.children[id].Intersect(set)
		g.parents[id] = g.parents[id].Intersect(set)
	}
}

// Excise fully detaches the node: it is removed from every parent's child
// set and every child's parent set, and its own link sets are cleared.
// The node record stays in the table so its id remains resolvable.
func (g *Graph) Excise(id string) {
	for p := range g.parents[id] {
		g.children[p].Delete(id)
	}
	for c := range g.children[id] {
		g.parents[c].Delete(id)
	}
	g.children[id] = NewSet()
	g.parents[id] = NewSet()
}
