package taxonomy

import (
	"errors"
	"testing"
)

// buildGraph constructs a graph from parent→child edge pairs, creating every
// referenced node with an empty label.
func buildGraph(t *testing.T, edges [][2]string) *Graph {
	t.Helper()
	g := New()
	for _, e := range edges {
		for _, id := range e {
			if _, ok := g.Node(id); !ok {
				if err := g.AddSynset(id, ""); err != nil {
					t.Fatalf("AddSynset(%q): %v", id, err)
				}
			}
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%q, %q): %v", e[0], e[1], err)
		}
	}
	return g
}

func TestAddSynset(t *testing.T) {
	g := New()
	if err := g.AddSynset("n01", "entity"); err != nil {
		t.Fatalf("AddSynset() error: %v", err)
	}
	if err := g.AddSynset("n01", "again"); !errors.Is(err, ErrDuplicateSynsetID) {
		t.Errorf("duplicate AddSynset() = %v, want ErrDuplicateSynsetID", err)
	}
	if err := g.AddSynset("", "anon"); !errors.Is(err, ErrInvalidSynsetID) {
		t.Errorf("empty-id AddSynset() = %v, want ErrInvalidSynsetID", err)
	}

	n, ok := g.Node("n01")
	if !ok || n.Label != "entity" {
		t.Errorf("Node(n01) = %+v, %v", n, ok)
	}
}

func TestAddEdge(t *testing.T) {
	g := New()
	g.AddSynset("a", "")
	g.AddSynset("b", "")

	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("AddEdge() error: %v", err)
	}
	if err := g.AddEdge("a", "missing"); !errors.Is(err, ErrUnknownSynset) {
		t.Errorf("AddEdge to missing node = %v, want ErrUnknownSynset", err)
	}

	// Idempotent insertion: adding an existing edge is a no-op.
	if err := g.AddEdge("a", "b"); err != nil {
		t.Fatalf("repeated AddEdge() error: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}

	if !g.Children("a").Has("b") || !g.Parents("b").Has("a") {
		t.Error("edge should be recorded in both directions")
	}
}

func TestRemoveEdge(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a", "b"}})
	g.RemoveEdge("a", "b")
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	if g.Parents("b").Len() != 0 {
		t.Error("RemoveEdge should clear the reverse link")
	}
}

func TestValidateAcyclic(t *testing.T) {
	// Diamond: a→b, a→c, b→d, c→d. Multi-parent but acyclic.
	g := buildGraph(t, [][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}})
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidateCycle(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a", "b"}, {"b", "c"}, {"c", "a"}})
	if err := g.Validate(); !errors.Is(err, ErrGraphHasCycle) {
		t.Errorf("Validate() = %v, want ErrGraphHasCycle", err)
	}
}

func TestValidateAsymmetry(t *testing.T) {
	g := buildGraph(t, [][2]string{{"a", "b"}})
	// Corrupt the reverse link directly.
	g.parents["b"].Delete("a")
	if err := g.Validate(); !errors.Is(err, ErrAsymmetricEdge) {
		t.Errorf("Validate() = %v, want ErrAsymmetricEdge", err)
	}
}

func TestNewFromRecords(t *testing.T) {
	records := []Record{
		{ID: "n01", Label: "entity", ChildIDs: []string{"n02"}},
		{ID: "n02", Label: "animal", ParentIDs: []string{"n01"}, ChildIDs: []string{"n03"}},
		{ID: "n03", Label: "dog"},
	}
	g, err := NewFromRecords(records)
	if err != nil {
		t.Fatalf("NewFromRecords() error: %v", err)
	}
	if g.NodeCount() != 3 {
		t.Errorf("NodeCount() = %d, want 3", g.NodeCount())
	}
	// The n01→n02 edge is declared from both sides; it must exist once.
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount() = %d, want 2", g.EdgeCount())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestNewFromRecordsUnknownReference(t *testing.T) {
	records := []Record{{ID: "n01", ParentIDs: []string{"ghost"}}}
	if _, err := NewFromRecords(records); !errors.Is(err, ErrUnknownSynset) {
		t.Errorf("NewFromRecords() = %v, want ErrUnknownSynset", err)
	}
}

func TestNodesSorted(t *testing.T) {
	g := buildGraph(t, [][2]string{{"c", "a"}, {"c", "b"}})
	nodes := g.Nodes()
	want := []string{"a", "b", "c"}
	for i, n := range nodes {
		if n.ID != want[i] {
			t.Errorf("Nodes()[%d] = %s, want %s", i, n.ID, want[i])
		}
	}
}
