package taxonomy

import (
	"fmt"
	"testing"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
)

func TestUpwardPaths(t *testing.T) {
	// Diamond: r→a, r→b, a→x, b→x.
	g := buildGraph(t, [][2]string{{"r", "a"}, {"r", "b"}, {"a", "x"}, {"b", "x"}})

	got := g.UpwardPaths("x", "")
	want := [][]string{{"x", "a", "r"}, {"x", "b", "r"}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("UpwardPaths(x, \"\") = %v, want %v", got, want)
	}

	// With an explicit end the paths stop there.
	got = g.UpwardPaths("x", "a")
	want = [][]string{{"x", "a"}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("UpwardPaths(x, a) = %v, want %v", got, want)
	}

	// A root yields the trivial path when no end is requested.
	got = g.UpwardPaths("r", "")
	want = [][]string{{"r"}}
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("UpwardPaths(r, \"\") = %v, want %v", got, want)
	}

	// A parentless start with an explicit end is unreachable by definition.
	if got := g.UpwardPaths("r", "x"); got != nil {
		t.Errorf("UpwardPaths(r, x) = %v, want nil", got)
	}

	// An end that is not an ancestor yields no paths.
	if got := g.UpwardPaths("a", "b"); got != nil {
		t.Errorf("UpwardPaths(a, b) = %v, want nil", got)
	}
}

func TestIsDescendant(t *testing.T) {
	g := buildGraph(t, [][2]string{{"r", "a"}, {"r", "b"}, {"a", "x"}, {"b", "x"}})

	tests := []struct {
		desc, anc string
		want      bool
	}{
		{"x", "r", true},
		{"x", "a", true},
		{"a", "r", true},
		{"r", "x", false},
		{"a", "b", false},
		{"x", "x", false}, // never its own descendant
	}
	for _, tt := range tests {
		if got := g.IsDescendant(tt.desc, tt.anc); got != tt.want {
			t.Errorf("IsDescendant(%s, %s) = %v, want %v", tt.desc, tt.anc, got, tt.want)
		}
	}
}

func TestLowestCommonInPaths(t *testing.T) {
	// Two leaves under a shared parent p1 below root.
	lca, height, err := LowestCommonInPaths(
		[]string{"l1", "p1", "root"},
		[]string{"l2", "p1", "root"},
	)
	if err != nil {
		t.Fatalf("LowestCommonInPaths() error: %v", err)
	}
	if lca != "p1" || height != 1 {
		t.Errorf("LowestCommonInPaths() = (%s, %d), want (p1, 1)", lca, height)
	}
}

func TestLowestCommonInPathsTie(t *testing.T) {
	// x and y both have height 2; the earlier occurrence in pathA wins.
	lca, height, err := LowestCommonInPaths(
		[]string{"a", "x", "y", "r"},
		[]string{"b", "y", "x", "r"},
	)
	if err != nil {
		t.Fatalf("LowestCommonInPaths() error: %v", err)
	}
	if lca != "x" || height != 2 {
		t.Errorf("LowestCommonInPaths() = (%s, %d), want (x, 2)", lca, height)
	}
}

func TestLowestCommonInPathsNoCommon(t *testing.T) {
	_, _, err := LowestCommonInPaths([]string{"a", "r"}, []string{"b", "s"})
	if !tserrors.Is(err, tserrors.ErrCodeNoCommonNode) {
		t.Errorf("LowestCommonInPaths() = %v, want NO_COMMON_NODE", err)
	}
}

func TestLowestCommonInPathsLeafHeight(t *testing.T) {
	// Identical leading leaves would put the LCA at height zero, which is
	// impossible for distinct classes and must be flagged.
	_, _, err := LowestCommonInPaths([]string{"a", "r"}, []string{"a", "s"})
	if !tserrors.Is(err, tserrors.ErrCodeInternal) {
		t.Errorf("LowestCommonInPaths() = %v, want INTERNAL_ERROR", err)
	}
}

// lcaGraph gives leaf u two upward routes: a short one through c shared
// with v, and a long one through k and k2. The mode decides which wins.
func lcaGraph(t *testing.T) *Graph {
	t.Helper()
	return buildGraph(t, [][2]string{
		{"r", "c"}, {"r", "k2"},
		{"c", "u"}, {"c", "v"},
		{"k2", "k"}, {"k", "u"},
	})
}

func TestLowestCommonAncestorLongest(t *testing.T) {
	g := lcaGraph(t)
	lca, height, err := g.LowestCommonAncestor("u", "v", PathLongest)
	if err != nil {
		t.Fatalf("LowestCommonAncestor() error: %v", err)
	}
	if lca != "r" || height != 3 {
		t.Errorf("LowestCommonAncestor(longest) = (%s, %d), want (r, 3)", lca, height)
	}
}

func TestLowestCommonAncestorAll(t *testing.T) {
	g := lcaGraph(t)
	lca, height, err := g.LowestCommonAncestor("u", "v", PathAll)
	if err != nil {
		t.Fatalf("LowestCommonAncestor() error: %v", err)
	}
	if lca != "c" || height != 1 {
		t.Errorf("LowestCommonAncestor(all) = (%s, %d), want (c, 1)", lca, height)
	}
}

func TestLowestCommonAncestorInvalidMode(t *testing.T) {
	g := lcaGraph(t)
	_, _, err := g.LowestCommonAncestor("u", "v", PathMode("shortest"))
	if !tserrors.Is(err, tserrors.ErrCodeInvalidMode) {
		t.Errorf("LowestCommonAncestor() = %v, want INVALID_MODE", err)
	}
}
