// Package cli implements the taxsplit command-line interface.
//
// This package provides commands for computing train/validation/test class
// splits over a WordNet taxonomy, proposing and inspecting split roots,
// deriving per-class image counts, and rendering split subgraphs. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - split: Compute the three class splits and optionally persist them
//   - roots: Rank and propose roots for the held-out splits
//   - counts: Derive per-class image counts from the dataset root
//   - lca: Find the lowest common ancestor of two synsets
//   - visualize: Render a split's subgraph as DOT or SVG
//   - serve: Expose computed splits over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/taxsplit/pkg/buildinfo"
	"github.com/matzehuels/taxsplit/pkg/imagecount"
	"github.com/matzehuels/taxsplit/pkg/splitstore"
)

// appName is the application name used for directories and display.
const appName = "taxsplit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Taxsplit partitions a WordNet taxonomy into benchmark splits",
		Long: `Taxsplit carves a WordNet synset DAG into disjoint train, validation and
test class sets for few-shot learning benchmarks. The held-out splits are
rooted at semantically coherent subtrees, proposed by spanned-leaf count or
chosen explicitly.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "",
		"path to the config file (defaults to ./"+appName+".toml)")

	// Register all subcommands
	root.AddCommand(c.splitCommand())
	root.AddCommand(c.rootsCommand())
	root.AddCommand(c.countsCommand())
	root.AddCommand(c.lcaCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newCountCache selects the image-count cache backend from config.
func newCountCache(cfg *Config, noCache bool) (imagecount.Cache, error) {
	if noCache || cfg.Cache.Backend == "none" {
		return imagecount.NewNullCache(), nil
	}
	if cfg.Cache.Backend == "redis" {
		return imagecount.NewRedisCache(cfg.Cache.RedisAddr, cfg.Cache.RedisKey), nil
	}

	path := cfg.Cache.Path
	if path == "" {
		dir, err := cacheDir()
		if err != nil {
			return imagecount.NewNullCache(), nil
		}
		path = filepath.Join(dir, "counts.json")
	}
	return imagecount.NewFileCache(path), nil
}

// newSplitStore selects the split-record store backend from config. The
// returned closer releases backend connections and must always be called.
func (c *CLI) newSplitStore(ctx context.Context, cfg *Config) (splitstore.Store, func(), error) {
	if cfg.Store.Backend == "mongo" {
		store, err := splitstore.NewMongoStore(ctx, cfg.Store.MongoURI, cfg.Store.MongoDatabase, cfg.Store.MongoCollection)
		if err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := store.Close(context.Background()); err != nil {
				c.Logger.Warnf("closing mongo store: %v", err)
			}
		}
		return store, closer, nil
	}

	store, err := splitstore.NewFileStore(cfg.Store.Dir)
	if err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/taxsplit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
