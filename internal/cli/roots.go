package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taxsplit/pkg/split"
	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// rootsCommand creates the roots command for inspecting root candidates.
func (c *CLI) rootsCommand() *cobra.Command {
	var (
		flags       = split.DefaultOptions()
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Rank and propose roots for the held-out splits",
		Long: `Rank and propose roots for the validation and test splits.

Every node of the sampling universe is ranked by the number of leaf classes
it spans. Nodes whose span lies strictly within (desired ± margin) are
candidates; the proposal picks the highest-ranked valid candidate and the
highest-ranked distinct test candidate.

With --interactive, browse the candidate lists and pick both roots yourself.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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
			opts := splitOptions(cfg, flags)

			if interactive {
				roots, err := pickRoots(g, spanning, opts)
				if err != nil {
					return err
				}
				printRoots(g, *roots)
				return nil
			}

			validCandidates := split.Candidates(g, spanning, opts.ValidClasses, opts.Margin)
			testCandidates := split.Candidates(g, spanning, opts.TestClasses, opts.Margin)
			printCandidates("Validation candidates", validCandidates)
			if opts.TestClasses != opts.ValidClasses {
				printCandidates("Test candidates", testCandidates)
			}

			roots, err := split.ProposeRoots(g, spanning, opts, c.Logger)
			if err != nil {
				return err
			}
			printRoots(g, roots)
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.Margin, "margin", flags.Margin, "acceptance window half-width around the desired split sizes")
	cmd.Flags().IntVar(&flags.ValidClasses, "valid-classes", flags.ValidClasses, "desired number of validation classes")
	cmd.Flags().IntVar(&flags.TestClasses, "test-classes", flags.TestClasses, "desired number of test classes")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the roots interactively")

	return cmd
}

// printCandidates prints one ranked candidate list.
func printCandidates(title string, candidates []split.Candidate) {
	fmt.Println()
	fmt.Println(StyleTitle.Render(title))
	if len(candidates) == 0 {
		printDetail("none within the margin")
		return
	}
	for _, cand := range candidates {
		printDetail("%-12s %4d leaves  %s", cand.ID, cand.Span, cand.Label)
	}
}

// printRoots prints the chosen roots with their labels.
func printRoots(g *taxonomy.Graph, roots split.Roots) {
	fmt.Println()
	printKeyValue("valid root", roots.Valid+labelSuffix(g, roots.Valid))
	printKeyValue("test root", roots.Test+labelSuffix(g, roots.Test))
}

// labelSuffix formats a node's label for display, if it has one.
func labelSuffix(g *taxonomy.Graph, id string) string {
	if n, ok := g.Node(id); ok && n.Label != "" {
		return " (" + n.Label + ")"
	}
	return ""
}
