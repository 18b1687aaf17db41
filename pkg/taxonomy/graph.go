package taxonomy

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidSynsetID is returned by [Graph.AddSynset] when the id is
	// empty. All synsets must have non-empty identifiers.
	ErrInvalidSynsetID = errors.New("synset ID must not be empty")

	// ErrDuplicateSynsetID is returned by [Graph.AddSynset] and
	// [NewFromRecords] when a synset with the same id already exists.
	ErrDuplicateSynsetID = errors.New("duplicate synset ID")

	// ErrUnknownSynset is returned by [Graph.AddEdge] and [NewFromRecords]
	// when an edge endpoint does not exist in the graph.
	ErrUnknownSynset = errors.New("unknown synset")

	// ErrAsymmetricEdge is returned by [Graph.Validate] when a parent link
	// has no matching child link or vice versa. This indicates graph
	// corruption, since every mutating operation maintains both directions.
	ErrAsymmetricEdge = errors.New("parent/child links are not symmetric")

	// ErrGraphHasCycle is returned by [Graph.Validate] when a directed cycle
	// is detected through child edges. The taxonomy must be a DAG.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Synset is a taxonomic concept node: a WordNet sense with a stable id and a
// human-readable label. Edges are owned by the [Graph], not the node.
type Synset struct {
	ID    string // WordNet id (e.g. "n02084071"), unique within a graph
	Label string // word description, informational only
}

// Record is the flat form of a synset as supplied by a taxonomy loader.
// Parent and child ids may overlap with the other direction's declarations;
// edge insertion is idempotent.
type Record struct {
	ID        string
	Label     string
	ParentIDs []string
	ChildIDs  []string
}

// Graph owns synset records and their taxonomic edges, indexed by id.
// Children and parents are stored as id sets, kept mutually consistent by
// every mutating operation.
//
// The zero value is not usable - use [New] or [NewFromRecords].
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	nodes    map[string]*Synset
	children map[string]Set
	parents  map[string]Set
}

// New creates an empty taxonomy graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Synset),
		children: make(map[string]Set),
		parents:  make(map[string]Set),
	}
}

// NewFromRecords builds a graph from a flat record set, inserting every
// declared parent and child link in both directions. It returns
// [ErrDuplicateSynsetID] for repeated ids and [ErrUnknownSynset] when a
// record references an id that no record defines.
//
// The records are assumed to describe a DAG; call [Graph.Validate] to check.
func NewFromRecords(records []Record) (*Graph, error) {
	g := New()
	for _, r := range records {
		if err := g.AddSynset(r.ID, r.Label); err != nil {
			return nil, fmt.Errorf("record %q: %w", r.ID, err)
		}
	}
	for _, r := range records {
		for _, p := range r.ParentIDs {
			if err := g.AddEdge(p, r.ID); err != nil {
				return nil, fmt.Errorf("record %q parent %q: %w", r.ID, p, err)
			}
		}
		for _, c := range r.ChildIDs {
			if err := g.AddEdge(r.ID, c); err != nil {
				return nil, fmt.Errorf("record %q child %q: %w", r.ID, c, err)
			}
		}
	}
	return g, nil
}

// AddSynset adds a node with the given id and label.
// Returns ErrInvalidSynsetID if id is empty, or ErrDuplicateSynsetID if a
// node with the same id already exists.
func (g *Graph) AddSynset(id, label string) error {
	if id == "" {
		return ErrInvalidSynsetID
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateSynsetID, id)
	}
	g.nodes[id] = &Synset{ID: id, Label: label}
	g.children[id] = NewSet()
	g.parents[id] = NewSet()
	return nil
}

// AddEdge adds a directed parent→child edge between two existing nodes,
// maintaining both link directions. Inserting an existing edge is a no-op.
// Returns ErrUnknownSynset if either endpoint does not exist.
func (g *Graph) AddEdge(parentID, childID string) error {
	if _, ok := g.nodes[parentID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSynset, parentID)
	}
	if _, ok := g.nodes[childID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSynset, childID)
	}
	g.children[parentID].Add(childID)
	g.parents[childID].Add(parentID)
	return nil
}

// RemoveEdge removes the parent→child edge if it exists, in both directions.
func (g *Graph) RemoveEdge(parentID, childID string) {
	if s, ok := g.children[parentID]; ok {
		s.Delete(childID)
	}
	if s, ok := g.parents[childID]; ok {
		s.Delete(parentID)
	}
}

// Node returns the synset with the given id and true, or nil and false if
// the id is not in the graph.
func (g *Graph) Node(id string) (*Synset, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all synsets sorted by id.
func (g *Graph) Nodes() []*Synset {
	nodes := make([]*Synset, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b *Synset) int { return cmp.Compare(a.ID, b.ID) })
	return nodes
}

// NodeCount returns the number of synsets in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of parent→child edges in the graph.
func (g *Graph) EdgeCount() int {
	count := 0
	for _, ch := range g.children {
		count += ch.Len()
	}
	return count
}

// IDSet returns the set of every synset id in the graph.
func (g *Graph) IDSet() Set {
	s := make(Set, len(g.nodes))
	for id := range g.nodes {
		s.Add(id)
	}
	return s
}

// Children returns the live child-id set of the node.
// Treat the result as a read-only view; mutate edges through the graph.
func (g *Graph) Children(id string) Set { return g.children[id] }

// Parents returns the live parent-id set of the node.
// Treat the result as a read-only view; mutate edges through the graph.
func (g *Graph) Parents(id string) Set { return g.parents[id] }

// ChildIDs returns the node's child ids in ascending order.
func (g *Graph) ChildIDs(id string) []string { return g.children[id].SortedIDs() }

// ParentIDs returns the node's parent ids in ascending order.
func (g *Graph) ParentIDs(id string) []string { return g.parents[id].SortedIDs() }

// Validate checks graph integrity and returns nil if valid.
// It verifies that every edge references existing nodes in both directions
// (link symmetry) and that no directed cycle exists through child edges.
//
// Cycle detection runs in O(N+E) time using depth-first search with
// white/gray/black coloring.
func (g *Graph) Validate() error {
	if err := g.validateSymmetry(); err != nil {
		return err
	}
	return g.detectCycles()
}

func (g *Graph) validateSymmetry() error {
	for id, ch := range g.children {
		for c := range ch {
			ps, ok := g.parents[c]
			if !ok || !ps.Has(id) {
				return fmt.Errorf("%w: %s -> %s", ErrAsymmetricEdge, id, c)
			}
		}
	}
	for id, ps := range g.parents {
		for p := range ps {
			cs, ok := g.children[p]
			if !ok || !cs.Has(id) {
				return fmt.Errorf("%w: %s <- %s", ErrAsymmetricEdge, id, p)
			}
		}
	}
	return nil
}

func (g *Graph) detectCycles() error {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.nodes))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for child := range g.children[id] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				hasCycle = true
				return
			}
		}
		color[id] = black
	}

	for id := range g.nodes {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return ErrGraphHasCycle
			}
		}
	}
	return nil
}
