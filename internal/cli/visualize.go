package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taxsplit/pkg/render"
	"github.com/matzehuels/taxsplit/pkg/split"
)

// visualizeCommand creates the visualize command for rendering split subgraphs.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		flags     = split.DefaultOptions()
		validRoot string
		testRoot  string
		format    string
		output    string
		labels    bool
	)

	cmd := &cobra.Command{
		Use:   "visualize [train|valid|test]",
		Short: "Render a split's subgraph as DOT or SVG",
		Long: `Render a split's final sampling subgraph.

The splits are computed exactly as by 'split'; the chosen split's isolated
and collapsed subgraph is then emitted as Graphviz DOT or rendered to SVG.
Leaves (the split's classes) are filled grey and the split root is drawn
bold.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(split.Train), string(split.Valid), string(split.Test)},
		RunE: func(cmd *cobra.Command, args []string) error {
			name := split.Valid
			if len(args) == 1 {
				name = split.Name(args[0])
			}
			switch name {
			case split.Train, split.Valid, split.Test:
			default:
				return fmt.Errorf("unknown split %q: must be train, valid or test", name)
			}
			if format != "dot" && format != "svg" {
				return fmt.Errorf("unknown format %q: must be dot or svg", format)
			}
			if output == "" {
				output = fmt.Sprintf("%s.%s", name, format)
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			g, leaves, err := c.loadTaxonomy(cfg)
			if err != nil {
				return err
			}
			_, spanning, err := c.buildUniverse(g, leaves)
			if err != nil {
				return err
			}

			var roots *split.Roots
			if validRoot != "" && testRoot != "" {
				roots = &split.Roots{Valid: validRoot, Test: testRoot}
			}
			result, err := split.NewBuilder(c.Logger, splitOptions(cfg, flags)).BuildSplits(g, spanning, roots)
			if err != nil {
				return err
			}

			sub := result.Graphs[name]
			dot := render.ToDOT(sub.Graph, sub.Nodes, render.Options{Labels: labels, RootID: sub.Root})

			data := []byte(dot)
			if format == "svg" {
				p := newProgress(c.Logger)
				if data, err = render.ToSVG(cmd.Context(), dot); err != nil {
					return err
				}
				p.done(fmt.Sprintf("Rendered %s split (%d nodes)", name, sub.Nodes.Len()))
			}

			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("rendered %s split", StyleHighlight.Render(string(name)))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.Margin, "margin", flags.Margin, "acceptance window half-width around the desired split sizes")
	cmd.Flags().IntVar(&flags.ValidClasses, "valid-classes", flags.ValidClasses, "desired number of validation classes")
	cmd.Flags().IntVar(&flags.TestClasses, "test-classes", flags.TestClasses, "desired number of test classes")
	cmd.Flags().StringVar(&validRoot, "valid-root", "", "explicit validation root wnid")
	cmd.Flags().StringVar(&testRoot, "test-root", "", "explicit test root wnid")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to <split>.<format>)")
	cmd.Flags().BoolVar(&labels, "labels", false, "include synset descriptions in node labels")

	return cmd
}
