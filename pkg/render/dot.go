// Package render converts split subgraphs to Graphviz DOT and renders them
// to SVG for visual inspection of a proposed class split.
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// Options configures DOT generation.
type Options struct {
	// Labels includes the synset description under each id.
	Labels bool

	// RootID highlights the split root, if set.
	RootID string
}

// ToDOT converts the given node set of a graph to Graphviz DOT format.
// Leaves (dataset classes) are filled grey, the root - if given - is drawn
// bold. Nodes and edges are emitted in ascending id order so output is
// stable across runs.
func ToDOT(g *taxonomy.Graph, nodes taxonomy.Set, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph taxonomy {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	ids := nodes.SortedIDs()
	for _, id := range ids {
		label := id
		if opts.Labels {
			if n, ok := g.Node(id); ok && n.Label != "" {
				label = id + "\n" + n.Label
			}
		}
		attrs := []string{fmt.Sprintf("label=%q", label)}
		if g.Children(id).Len() == 0 {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		if id == opts.RootID {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, id := range ids {
		for _, child := range g.ChildIDs(id) {
			if nodes.Has(child) {
				fmt.Fprintf(&buf, "  %q -> %q;\n", id, child)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// ToSVG renders a DOT graph to SVG using Graphviz.
func ToSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
