package split

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

func testLogger() *log.Logger { return log.New(io.Discard) }

// benchGraph is the shared fixture: a root n000 over two candidate subtrees
// that share one leaf, plus four direct training leaves.
//
//	n000 → n100, n200, n301..n304
//	n100 → n101, n102, n103, n150
//	n200 → n201, n202, n203, n150
func benchGraph(t *testing.T) *taxonomy.Graph {
	t.Helper()
	g := taxonomy.New()
	edges := [][2]string{
		{"n000", "n100"}, {"n000", "n200"},
		{"n000", "n301"}, {"n000", "n302"}, {"n000", "n303"}, {"n000", "n304"},
		{"n100", "n101"}, {"n100", "n102"}, {"n100", "n103"}, {"n100", "n150"},
		{"n200", "n201"}, {"n200", "n202"}, {"n200", "n203"}, {"n200", "n150"},
	}
	for _, e := range edges {
		for _, id := range e {
			if _, ok := g.Node(id); !ok {
				if err := g.AddSynset(id, ""); err != nil {
					t.Fatalf("AddSynset(%q): %v", id, err)
				}
			}
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

func TestProposeRoots(t *testing.T) {
	g := benchGraph(t)
	spanning := g.SpanningLeaves(g.IDSet())

	// Both n100 and n200 span 4 leaves; within (1, 5) they are the only
	// candidates and the id tie-break puts n100 first.
	roots, err := ProposeRoots(g, spanning, Options{Margin: 2, ValidClasses: 3, TestClasses: 3}, testLogger())
	if err != nil {
		t.Fatalf("ProposeRoots() error: %v", err)
	}
	if roots.Valid != "n100" || roots.Test != "n200" {
		t.Errorf("ProposeRoots() = %+v, want valid n100, test n200", roots)
	}
}

func TestProposeRootsNoCandidate(t *testing.T) {
	g := benchGraph(t)
	spanning := g.SpanningLeaves(g.IDSet())

	// The window (2, 4) is open on both sides, so the span-4 subtrees
	// fall outside it.
	_, err := ProposeRoots(g, spanning, Options{Margin: 1, ValidClasses: 3, TestClasses: 3}, testLogger())
	if !tserrors.Is(err, tserrors.ErrCodeNoCandidate) {
		t.Errorf("ProposeRoots() = %v, want NO_CANDIDATE", err)
	}
}

func TestProposeRootsNoDistinctTestRoot(t *testing.T) {
	// Only one node qualifies for both windows: A spans 3 leaves, the root
	// spans 6 and every leaf spans 1.
	g := taxonomy.New()
	edges := [][2]string{
		{"r", "A"}, {"r", "x1"}, {"r", "x2"}, {"r", "x3"},
		{"A", "a1"}, {"A", "a2"}, {"A", "a3"},
	}
	for _, e := range edges {
		for _, id := range e {
			if _, ok := g.Node(id); !ok {
				g.AddSynset(id, "")
			}
		}
		g.AddEdge(e[0], e[1])
	}
	spanning := g.SpanningLeaves(g.IDSet())

	_, err := ProposeRoots(g, spanning, Options{Margin: 2, ValidClasses: 3, TestClasses: 3}, testLogger())
	if !tserrors.Is(err, tserrors.ErrCodeNoDistinctTestRoot) {
		t.Errorf("ProposeRoots() = %v, want NO_DISTINCT_TEST_ROOT", err)
	}
}

func TestCandidates(t *testing.T) {
	g := benchGraph(t)
	spanning := g.SpanningLeaves(g.IDSet())

	got := Candidates(g, spanning, 3, 2)
	if len(got) != 2 {
		t.Fatalf("Candidates() returned %d entries, want 2: %v", len(got), got)
	}
	if got[0].ID != "n100" || got[1].ID != "n200" {
		t.Errorf("Candidates() order = [%s %s], want [n100 n200]", got[0].ID, got[1].ID)
	}
	if got[0].Span != 4 || got[1].Span != 4 {
		t.Errorf("Candidates() spans = [%d %d], want [4 4]", got[0].Span, got[1].Span)
	}

	// The window is open on both sides.
	if got := Candidates(g, spanning, 3, 1); len(got) != 0 {
		t.Errorf("Candidates() with window (2, 4) = %v, want none", got)
	}
}

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	if opts.Margin != DefaultMargin || opts.ValidClasses != DefaultValidClasses || opts.TestClasses != DefaultTestClasses {
		t.Errorf("withDefaults() = %+v", opts)
	}

	// Explicit values survive.
	opts = Options{Margin: 7, ValidClasses: 10, TestClasses: 20}.withDefaults()
	if opts.Margin != 7 || opts.ValidClasses != 10 || opts.TestClasses != 20 {
		t.Errorf("withDefaults() overwrote explicit values: %+v", opts)
	}
}
