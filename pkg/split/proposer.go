package split

import (
	"cmp"
	"slices"

	"github.com/charmbracelet/log"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// Default split-sizing parameters. ILSVRC 2012 has 1000 classes; aiming for
// roughly 70% / 15% / 15% train/valid/test gives 150 classes per held-out
// split.
const (
	DefaultMargin       = 50
	DefaultValidClasses = 150
	DefaultTestClasses  = 150
)

// Options configures root proposal and class splitting.
type Options struct {
	// Margin widens the acceptance window around each desired split size.
	// There may be no node spanning exactly the desired number of classes,
	// so a root qualifies when its span count lies strictly within
	// (desired-Margin, desired+Margin).
	Margin int

	// ValidClasses is the desired number of validation classes.
	ValidClasses int

	// TestClasses is the desired number of test classes.
	TestClasses int
}

// DefaultOptions returns the standard ILSVRC 2012 sizing.
func DefaultOptions() Options {
	return Options{
		Margin:       DefaultMargin,
		ValidClasses: DefaultValidClasses,
		TestClasses:  DefaultTestClasses,
	}
}

// withDefaults fills zero fields with the package defaults.
func (o Options) withDefaults() Options {
	if o.Margin == 0 {
		o.Margin = DefaultMargin
	}
	if o.ValidClasses == 0 {
		o.ValidClasses = DefaultValidClasses
	}
	if o.TestClasses == 0 {
		o.TestClasses = DefaultTestClasses
	}
	return o
}

// Roots holds the chosen subgraph roots for the held-out splits.
// The ids refer to nodes of the graph the spans were computed on.
type Roots struct {
	Valid string
	Test  string
}

// Candidate is a node whose spanned-leaf count qualifies it as a potential
// split root.
type Candidate struct {
	ID    string
	Label string
	Span  int
}

// Candidates returns every node whose span count lies strictly within
// (desired-margin, desired+margin), ranked by span descending with ties
// broken by id ascending.
func Candidates(g *taxonomy.Graph, spanning map[string]taxonomy.Set, desired, margin int) []Candidate {
	candidates := make([]Candidate, 0)
	for id, leaves := range spanning {
		span := leaves.Len()
		if desired-margin < span && span < desired+margin {
			candidates = append(candidates, Candidate{ID: id, Label: labelOf(g, id), Span: span})
		}
	}
	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Span, a.Span); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return candidates
}

// ProposeRoots proposes roots for the validation and test sub-graphs.
//
// The highest-ranked valid candidate is chosen (see [Candidates]), then the
// highest-ranked test candidate that differs from it, skipping coinciding
// candidates in rank order.
//
// Returns a NO_CANDIDATE error when either candidate list is empty and a
// NO_DISTINCT_TEST_ROOT error when every test candidate equals the chosen
// valid root. The remedy for both is a different margin.
func ProposeRoots(g *taxonomy.Graph, spanning map[string]taxonomy.Set, opts Options, logger *log.Logger) (Roots, error) {
	if logger == nil {
		logger = log.Default()
	}
	opts = opts.withDefaults()

	validCandidates := Candidates(g, spanning, opts.ValidClasses, opts.Margin)
	testCandidates := Candidates(g, spanning, opts.TestClasses, opts.Margin)
	for _, c := range validCandidates {
		logger.Debugf("valid-root candidate %s (%s) spans %d leaves", c.ID, c.Label, c.Span)
	}

	if len(validCandidates) == 0 || len(testCandidates) == 0 {
		return Roots{}, tserrors.New(tserrors.ErrCodeNoCandidate,
			"found no root candidates within margin %d; try a different margin", opts.Margin)
	}

	validRoot := validCandidates[0].ID

	// Make sure not to choose the same root for testing as for validation.
	testRoot := ""
	for _, cand := range testCandidates {
		if cand.ID != validRoot {
			testRoot = cand.ID
			break
		}
	}
	if testRoot == "" {
		return Roots{}, tserrors.New(tserrors.ErrCodeNoDistinctTestRoot,
			"every test-root candidate coincides with the valid root %s; try a different margin", validRoot)
	}

	logger.Infof("proposed valid root %s (%s) and test root %s (%s)",
		validRoot, labelOf(g, validRoot), testRoot, labelOf(g, testRoot))
	return Roots{Valid: validRoot, Test: testRoot}, nil
}

func labelOf(g *taxonomy.Graph, id string) string {
	if n, ok := g.Node(id); ok {
		return n.Label
	}
	return ""
}
