package split

import (
	"github.com/charmbracelet/log"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// Name identifies one of the three benchmark splits.
type Name string

// The three split names, in canonical order.
const (
	Train Name = "train"
	Valid Name = "valid"
	Test  Name = "test"
)

// Names returns the split names in canonical order.
func Names() []Name { return []Name{Train, Valid, Test} }

// ClassSplits assigns every leaf class to exactly one split.
//
// If roots is nil, roots are proposed via [ProposeRoots]. Leaves spanned by
// the valid root form the validation classes and leaves spanned by the test
// root the test classes. Leaves spanned by both are assigned alternately to
// valid and test - starting with valid, in ascending id order - so each
// overlap leaf lands in exactly one split and the two assignments differ in
// size by at most one. All remaining leaves train.
//
// Caller-supplied roots must be non-empty and present in spanning; anything
// else is an INVALID_ROOT error.
func ClassSplits(g *taxonomy.Graph, spanning map[string]taxonomy.Set, roots *Roots, opts Options, logger *log.Logger) (map[Name]taxonomy.Set, Roots, error) {
	if logger == nil {
		logger = log.Default()
	}

	if roots != nil {
		for _, id := range []string{roots.Valid, roots.Test} {
			if id == "" {
				return nil, Roots{}, tserrors.New(tserrors.ErrCodeInvalidRoot, "a split root cannot be empty")
			}
			if _, ok := spanning[id]; !ok {
				return nil, Roots{}, tserrors.New(tserrors.ErrCodeInvalidRoot,
					"split root %s is not a node of the sampling graph", id)
			}
		}
	}

	if roots == nil {
		proposed, err := ProposeRoots(g, spanning, opts, logger)
		if err != nil {
			return nil, Roots{}, err
		}
		roots = &proposed
	}

	validIDs := spanning[roots.Valid].Clone()
	testIDs := spanning[roots.Test].Clone()

	// Leaves spanned by both roots would otherwise end up in two splits.
	overlap := validIDs.Intersect(testIDs)
	logger.Infof("overlap between valid and test spans: %d leaves", overlap.Len())

	assignToValid := true
	for _, id := range overlap.SortedIDs() {
		if assignToValid {
			testIDs.Delete(id)
		} else {
			validIDs.Delete(id)
		}
		assignToValid = !assignToValid
	}

	// Training classes are all the remaining leaves.
	domain := taxonomy.NewSet()
	for id := range spanning {
		domain.Add(id)
	}
	trainIDs := taxonomy.NewSet()
	for id := range g.LeavesOf(domain) {
		if !validIDs.Has(id) && !testIDs.Has(id) {
			trainIDs.Add(id)
		}
	}

	classes := map[Name]taxonomy.Set{
		Train: trainIDs,
		Valid: validIDs,
		Test:  testIDs,
	}
	return classes, *roots, nil
}

// universe is one split's independent copy of the sampling graph: the clone
// graph itself, the clone-identity leaf classes assigned to the split, and
// for valid/test the clone-identity root id.
type universe struct {
	graph  *taxonomy.Graph
	leaves taxonomy.Set
	root   string
}

// cloneSplitUniverses produces three independent clones of the sampling
// universe, one per split, so each split's subsequent isolation and collapse
// mutates only its own copy. The universe (the domain of spanning) must be
// isolated, which holds for any graph produced by [CreateSamplingGraph].
func cloneSplitUniverses(g *taxonomy.Graph, classes map[Name]taxonomy.Set, spanning map[string]taxonomy.Set, roots Roots) (map[Name]*universe, error) {
	domain := taxonomy.NewSet()
	for id := range spanning {
		domain.Add(id)
	}

	universes := make(map[Name]*universe, len(classes))
	for _, name := range Names() {
		rootID := ""
		switch name {
		case Valid:
			rootID = roots.Valid
		case Test:
			rootID = roots.Test
		}

		clone, rootNode, err := g.CloneSet(domain, rootID)
		if err != nil {
			return nil, err
		}
		if rootID != "" && rootNode == nil {
			return nil, tserrors.New(tserrors.ErrCodeInternal,
				"%s root %s is missing from the cloned universe", name, rootID)
		}

		universes[name] = &universe{
			graph:  clone,
			leaves: classes[name].Clone(),
			root:   rootID,
		}
	}
	return universes, nil
}
