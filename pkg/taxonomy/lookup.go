package taxonomy

import (
	"strings"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
)

// NodesByIDs resolves a batch of ids to their synsets. If any requested id
// is absent from the graph, a MISSING_IDS error naming every missing id is
// returned and no partial result is produced.
func (g *Graph) NodesByIDs(ids []string) (map[string]*Synset, error) {
	found := make(map[string]*Synset, len(ids))
	missing := NewSet()
	for _, id := range ids {
		n, ok := g.nodes[id]
		if !ok {
			missing.Add(id)
			continue
		}
		found[id] = n
	}
	if missing.Len() > 0 {
		return nil, tserrors.New(tserrors.ErrCodeMissingIDs,
			"did not find synsets for ids: %s", strings.Join(missing.SortedIDs(), ", "))
	}
	return found, nil
}
