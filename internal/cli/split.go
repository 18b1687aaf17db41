package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taxsplit/pkg/split"
	"github.com/matzehuels/taxsplit/pkg/splitstore"
)

// splitCommand creates the split command for computing class splits.
func (c *CLI) splitCommand() *cobra.Command {
	var (
		flags       = split.DefaultOptions()
		validRoot   string
		testRoot    string
		interactive bool
		save        bool
		output      string
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Compute train/valid/test class splits",
		Long: `Compute train/valid/test class splits over the taxonomy.

The taxonomy is reduced to the sampling universe over the benchmark classes,
roots for the held-out splits are proposed by spanned-leaf count (or given
explicitly), and every class is assigned to exactly one split. Classes
spanned by both roots alternate between valid and test.

Each split's final subgraph is isolated and collapsed within its own clone,
so the three graphs are fully independent.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (validRoot == "") != (testRoot == "") {
				return fmt.Errorf("--valid-root and --test-root must be given together")
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
			opts := splitOptions(cfg, flags)

			var roots *split.Roots
			switch {
			case interactive:
				if roots, err = pickRoots(g, spanning, opts); err != nil {
					return err
				}
			case validRoot != "":
				roots = &split.Roots{Valid: validRoot, Test: testRoot}
			}

			result, err := split.NewBuilder(c.Logger, opts).BuildSplits(g, spanning, roots)
			if err != nil {
				return err
			}

			printSplitSummary(result)

			if !save && output == "" {
				return nil
			}
			rec := splitstore.NewRecord(cfg.Dataset, result)
			if save {
				store, closeStore, err := c.newSplitStore(cmd.Context(), cfg)
				if err != nil {
					return fmt.Errorf("initialize split store: %w", err)
				}
				defer closeStore()
				if err := store.Save(cmd.Context(), rec); err != nil {
					return err
				}
				printSuccess("saved split record %s", StyleHighlight.Render(rec.ID))
			}
			if output != "" {
				if err := writeRecordFile(rec, output); err != nil {
					return err
				}
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&flags.Margin, "margin", flags.Margin, "acceptance window half-width around the desired split sizes")
	cmd.Flags().IntVar(&flags.ValidClasses, "valid-classes", flags.ValidClasses, "desired number of validation classes")
	cmd.Flags().IntVar(&flags.TestClasses, "test-classes", flags.TestClasses, "desired number of test classes")
	cmd.Flags().StringVar(&validRoot, "valid-root", "", "explicit validation root wnid (skips proposal)")
	cmd.Flags().StringVar(&testRoot, "test-root", "", "explicit test root wnid (skips proposal)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the roots interactively from the ranked candidates")
	cmd.Flags().BoolVar(&save, "save", false, "persist the computed split as a record")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the split record as JSON to a file")

	return cmd
}

// printSplitSummary prints roots and per-split statistics.
func printSplitSummary(result *split.Result) {
	fmt.Println()
	printKeyValue("valid root", result.Roots.Valid)
	printKeyValue("test root", result.Roots.Test)
	fmt.Println()
	for _, name := range split.Names() {
		printSplitStats(string(name), result.Classes[name].Len(), result.Graphs[name].Nodes.Len())
	}
	fmt.Println()
}

// writeRecordFile writes the record as indented JSON.
func writeRecordFile(rec *splitstore.Record, path string) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal split record: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write split record: %w", err)
	}
	return nil
}
