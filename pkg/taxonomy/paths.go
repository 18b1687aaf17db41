package taxonomy

import (
	"strings"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
)

// PathMode selects which upward paths participate in a lowest-common-
// ancestor computation.
type PathMode string

const (
	// PathLongest uses, for each leaf, the single upward path of maximal
	// length (ties broken by first-found order).
	PathLongest PathMode = "longest"

	// PathAll considers every pair of upward paths from the two leaves and
	// returns the LCA of globally minimum height.
	PathAll PathMode = "all"
)

// UpwardPaths enumerates all maximal paths from startID upward via parent
// edges. Each path is an ordered id sequence beginning at startID and ending
// either at endID (if non-empty) or at a parentless node. Multiple paths can
// exist because a node may have multiple parents.
//
// If endID is given and startID has no parents, the result is empty: the
// end, if not startID itself, is unreachable.
//
// Enumeration is depth-first over an explicit stack (taxonomy depth is
// shallow, but recursion depth is not trusted on pathological inputs), with
// parents visited in ascending id order.
func (g *Graph) UpwardPaths(startID, endID string) [][]string {
	isEnd := func(id string) bool {
		if endID != "" {
			return id == endID
		}
		return g.parents[id].Len() == 0
	}

	if endID != "" && g.parents[startID].Len() == 0 {
		return nil
	}

	type frame struct {
		id   string
		path []string
	}

	var paths [][]string
	stack := []frame{{startID, []string{startID}}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if isEnd(f.id) {
			paths = append(paths, f.path)
			continue
		}

		// Push parents in reverse so the smallest id is explored first.
		parents := g.ParentIDs(f.id)
		for i := len(parents) - 1; i >= 0; i-- {
			p := parents[i]
			path := make([]string, len(f.path), len(f.path)+1)
			copy(path, f.path)
			stack = append(stack, frame{p, append(path, p)})
		}
	}
	return paths
}

// IsDescendant reports whether descendantID is a strict descendant of
// ancestorID: some non-trivial upward path (length >= 2) exists between
// them. A node is never its own descendant.
func (g *Graph) IsDescendant(descendantID, ancestorID string) bool {
	paths := g.UpwardPaths(descendantID, ancestorID)
	return len(paths) > 0 && !(len(paths) == 1 && len(paths[0]) == 1)
}

// LowestCommonInPaths finds the node of smallest height common to both path
// sequences. The height of a common node is the maximum of its 0-based
// index in each sequence; ties are broken by earliest occurrence in pathA.
//
// Returns a NO_COMMON_NODE error when the sequences share no node, which
// indicates disconnected or malformed input. A result height of zero is
// impossible for two distinct leaves (their LCA cannot be a leaf) and is
// reported as an INTERNAL_ERROR.
func LowestCommonInPaths(pathA, pathB []string) (string, int, error) {
	posB := make(map[string]int, len(pathB))
	for i, id := range pathB {
		if _, ok := posB[id]; !ok {
			posB[id] = i
		}
	}

	lowest, minHeight := "", -1
	for i, id := range pathA {
		j, ok := posB[id]
		if !ok {
			continue
		}
		height := max(i, j)
		if minHeight == -1 || height < minHeight {
			lowest, minHeight = id, height
		}
	}

	if minHeight == -1 {
		return "", 0, tserrors.New(tserrors.ErrCodeNoCommonNode,
			"no common nodes in paths [%s] and [%s]",
			strings.Join(pathA, " "), strings.Join(pathB, " "))
	}
	if minHeight <= 0 {
		return "", 0, tserrors.New(tserrors.ErrCodeInternal,
			"the lowest common ancestor of two distinct leaves cannot be a leaf (got %q at height %d)",
			lowest, minHeight)
	}
	return lowest, minHeight, nil
}

// LowestCommonAncestor finds the lowest common ancestor of two leaves and
// its height.
//
// With [PathLongest], the single longest upward path of each leaf is
// selected (first-found on ties) and the LCA is computed along exactly those
// two paths. With [PathAll], the LCA is computed across every pair of paths
// and the globally lowest result wins. Any other mode yields an
// INVALID_MODE error.
func (g *Graph) LowestCommonAncestor(leafA, leafB string, mode PathMode) (string, int, error) {
	switch mode {
	case PathLongest, PathAll:
	default:
		return "", 0, tserrors.New(tserrors.ErrCodeInvalidMode,
			"invalid path mode %q: must be %q or %q", mode, PathLongest, PathAll)
	}

	pathsA := g.UpwardPaths(leafA, "")
	pathsB := g.UpwardPaths(leafB, "")

	if mode == PathLongest {
		return LowestCommonInPaths(longestPath(pathsA), longestPath(pathsB))
	}

	// Search for the LCA across all pairs of paths from the given leaves.
	lca, best := "", -1
	for _, pa := range pathsA {
		for _, pb := range pathsB {
			id, height, err := LowestCommonInPaths(pa, pb)
			if err != nil {
				return "", 0, err
			}
			if best == -1 || height < best {
				lca, best = id, height
			}
		}
	}
	return lca, best, nil
}

// longestPath returns the first path of maximal length.
func longestPath(paths [][]string) []string {
	var longest []string
	for _, p := range paths {
		if len(p) > len(longest) {
			longest = p
		}
	}
	return longest
}
