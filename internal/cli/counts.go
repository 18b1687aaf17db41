package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/taxsplit/pkg/imagecount"
)

// countsCommand creates the counts command for deriving per-class image counts.
func (c *CLI) countsCommand() *cobra.Command {
	var (
		noCache bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "counts",
		Short: "Derive per-class image counts from the dataset root",
		Long: `Derive per-class image counts from the dataset root.

Each class directory under the dataset root is scanned for files whose
lowercased name ends in "jpeg", minus the configured skip set. The full
mapping is cached so the scan runs at most once per dataset; pass --no-cache
to force a rescan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cfg.DataRoot == "" {
				return fmt.Errorf("data_root is required (set it via %s.toml)", appName)
			}
			_, leaves, err := c.loadTaxonomy(cfg)
			if err != nil {
				return err
			}

			cache, err := newCountCache(cfg, noCache)
			if err != nil {
				return err
			}

			scanner := imagecount.NewScanner(cfg.DataRoot, cfg.SkipFiles, c.Logger)
			counts, err := scanner.Counts(cmd.Context(), cache, leaves.SortedIDs())
			if err != nil {
				return err
			}

			printCountSummary(counts)

			if output != "" {
				data, err := json.MarshalIndent(counts, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal counts: %w", err)
				}
				if err := os.WriteFile(output, data, 0644); err != nil {
					return fmt.Errorf("write counts: %w", err)
				}
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "ignore the count cache and rescan")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the count mapping as JSON to a file")

	return cmd
}

// printCountSummary prints aggregate statistics over the count mapping.
func printCountSummary(counts map[string]int) {
	total, empty := 0, 0
	minCount, maxCount := -1, 0
	for _, n := range counts {
		total += n
		if n == 0 {
			empty++
		}
		if minCount == -1 || n < minCount {
			minCount = n
		}
		if n > maxCount {
			maxCount = n
		}
	}
	if minCount == -1 {
		minCount = 0
	}

	fmt.Println()
	printKeyValue("classes", fmt.Sprintf("%d", len(counts)))
	printKeyValue("images", fmt.Sprintf("%d", total))
	printKeyValue("per class", fmt.Sprintf("min %d, max %d", minCount, maxCount))
	if empty > 0 {
		printDetail("%d classes have no images", empty)
	}
}
