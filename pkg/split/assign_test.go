package split

import (
	"fmt"
	"testing"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

func TestClassSplits(t *testing.T) {
	g := benchGraph(t)
	spanning := g.SpanningLeaves(g.IDSet())

	roots := &Roots{Valid: "n100", Test: "n200"}
	classes, chosen, err := ClassSplits(g, spanning, roots, Options{}, testLogger())
	if err != nil {
		t.Fatalf("ClassSplits() error: %v", err)
	}
	if chosen != *roots {
		t.Errorf("ClassSplits() roots = %+v, want %+v", chosen, *roots)
	}

	// The shared leaf n150 is the first (and only) overlap entry, so it
	// goes to valid and leaves the test span.
	want := map[Name][]string{
		Train: {"n301", "n302", "n303", "n304"},
		Valid: {"n101", "n102", "n103", "n150"},
		Test:  {"n201", "n202", "n203"},
	}
	for name, ids := range want {
		if got := classes[name].SortedIDs(); fmt.Sprint(got) != fmt.Sprint(ids) {
			t.Errorf("classes[%s] = %v, want %v", name, got, ids)
		}
	}
}

func TestClassSplitsOverlapAlternation(t *testing.T) {
	// Three shared leaves alternate valid, test, valid in ascending order.
	g := taxonomy.New()
	edges := [][2]string{
		{"r", "V"}, {"r", "T"},
		{"V", "o1"}, {"V", "o2"}, {"V", "o3"}, {"V", "v1"},
		{"T", "o1"}, {"T", "o2"}, {"T", "o3"}, {"T", "t1"},
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

	classes, _, err := ClassSplits(g, spanning, &Roots{Valid: "V", Test: "T"}, Options{}, testLogger())
	if err != nil {
		t.Fatalf("ClassSplits() error: %v", err)
	}

	want := map[Name][]string{
		Train: nil,
		Valid: {"o1", "o3", "v1"},
		Test:  {"o2", "t1"},
	}
	for name, ids := range want {
		if got := classes[name].SortedIDs(); fmt.Sprint(got) != fmt.Sprint(ids) {
			t.Errorf("classes[%s] = %v, want %v", name, got, ids)
		}
	}
}

func TestClassSplitsPartition(t *testing.T) {
	g := benchGraph(t)
	domain := g.IDSet()
	spanning := g.SpanningLeaves(domain)

	classes, _, err := ClassSplits(g, spanning, nil, Options{Margin: 2, ValidClasses: 3, TestClasses: 3}, testLogger())
	if err != nil {
		t.Fatalf("ClassSplits() error: %v", err)
	}

	// Every leaf lands in exactly one split.
	seen := taxonomy.NewSet()
	for _, name := range Names() {
		for id := range classes[name] {
			if seen.Has(id) {
				t.Errorf("leaf %s assigned to more than one split", id)
			}
			seen.Add(id)
		}
	}
	leaves := g.LeavesOf(domain)
	if fmt.Sprint(seen.SortedIDs()) != fmt.Sprint(leaves.SortedIDs()) {
		t.Errorf("assigned leaves %v, want all leaves %v", seen.SortedIDs(), leaves.SortedIDs())
	}
}

func TestClassSplitsInvalidRoot(t *testing.T) {
	g := benchGraph(t)
	spanning := g.SpanningLeaves(g.IDSet())

	tests := []struct {
		name  string
		roots Roots
	}{
		{"empty valid root", Roots{Valid: "", Test: "n200"}},
		{"unknown test root", Roots{Valid: "n100", Test: "ghost"}},
	}
	for _, tt := range tests {
		_, _, err := ClassSplits(g, spanning, &tt.roots, Options{}, testLogger())
		if !tserrors.Is(err, tserrors.ErrCodeInvalidRoot) {
			t.Errorf("%s: ClassSplits() = %v, want INVALID_ROOT", tt.name, err)
		}
	}
}
