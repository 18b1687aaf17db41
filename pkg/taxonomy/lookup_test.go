package taxonomy

import (
	"strings"
	"testing"

	tserrors "github.com/matzehuels/taxsplit/pkg/errors"
)

func TestNodesByIDs(t *testing.T) {
	g := buildGraph(t, [][2]string{{"r", "a"}, {"r", "b"}})

	nodes, err := g.NodesByIDs([]string{"a", "b"})
	if err != nil {
		t.Fatalf("NodesByIDs() error: %v", err)
	}
	if len(nodes) != 2 || nodes["a"] == nil || nodes["b"] == nil {
		t.Errorf("NodesByIDs() = %v, want entries for a and b", nodes)
	}
}

func TestNodesByIDsMissing(t *testing.T) {
	g := buildGraph(t, [][2]string{{"r", "a"}})

	_, err := g.NodesByIDs([]string{"a", "ghost", "phantom"})
	if !tserrors.Is(err, tserrors.ErrCodeMissingIDs) {
		t.Fatalf("NodesByIDs() = %v, want MISSING_IDS", err)
	}
	if msg := err.Error(); !strings.Contains(msg, "ghost") || !strings.Contains(msg, "phantom") {
		t.Errorf("error %q should name every missing id", msg)
	}
}
