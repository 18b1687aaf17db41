package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taxsplit/pkg/taxonomy"
)

// lcaCommand creates the lca command for lowest-common-ancestor queries.
func (c *CLI) lcaCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "lca <wnid> <wnid>",
		Short: "Find the lowest common ancestor of two synsets",
		Long: `Find the lowest common ancestor of two synsets.

The height of a common ancestor is its maximum distance from either synset
along the compared upward paths. With mode "longest" the single longest
upward path of each synset is compared; with mode "all" every pair of paths
is considered and the globally lowest ancestor wins.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			g, _, err := c.loadTaxonomy(cfg)
			if err != nil {
				return err
			}
			if _, err := g.NodesByIDs(args); err != nil {
				return err
			}

			lca, height, err := g.LowestCommonAncestor(args[0], args[1], taxonomy.PathMode(mode))
			if err != nil {
				return err
			}

			fmt.Println()
			printKeyValue("lca", lca+labelSuffix(g, lca))
			printKeyValue("height", fmt.Sprintf("%d", height))
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(taxonomy.PathLongest), "path mode: longest (default), all")

	return cmd
}
