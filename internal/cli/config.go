package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration (taxsplit.toml). Command-line flags
// override config values.
type Config struct {
	// Dataset names the benchmark, used for persisted split records.
	Dataset string `toml:"dataset"`

	// Words is the path to words.txt ("wnid<TAB>description" lines).
	Words string `toml:"words"`

	// IsA is the path to is_a.txt ("parent child" edge lines).
	IsA string `toml:"is_a"`

	// Classes optionally names a file with one leaf wnid per line. When
	// empty, every leaf of the loaded taxonomy is a class.
	Classes string `toml:"classes"`

	// DataRoot is the image dataset root with one directory per class id.
	DataRoot string `toml:"data_root"`

	// Split sizing; zero values fall back to the ILSVRC 2012 defaults.
	Margin       int `toml:"margin"`
	ValidClasses int `toml:"valid_classes"`
	TestClasses  int `toml:"test_classes"`

	// SkipFiles are image file names excluded from counting, e.g. images
	// duplicated in other datasets of the same benchmark.
	SkipFiles []string `toml:"skip_files"`

	Cache CacheConfig `toml:"cache"`
	Store StoreConfig `toml:"store"`
}

// CacheConfig selects the image-count cache backend.
type CacheConfig struct {
	// Backend is "file" (default), "redis" or "none".
	Backend string `toml:"backend"`

	// Path is the cache file location for the file backend.
	// Defaults to ~/.cache/taxsplit/counts.json.
	Path string `toml:"path"`

	RedisAddr string `toml:"redis_addr"`
	RedisKey  string `toml:"redis_key"`
}

// StoreConfig selects the split-record store backend.
type StoreConfig struct {
	// Backend is "file" (default) or "mongo".
	Backend string `toml:"backend"`

	// Dir is the record directory for the file backend.
	// Defaults to ~/.config/taxsplit/splits.
	Dir string `toml:"dir"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// loadConfig reads the TOML config file. Without --config, a missing
// ./taxsplit.toml is not an error and yields the defaults; an explicitly
// given path must exist.
func (c *CLI) loadConfig() (*Config, error) {
	cfg := &Config{
		Dataset: "ilsvrc_2012",
		Cache: CacheConfig{
			RedisAddr: "localhost:6379",
			RedisKey:  appName + ":counts",
		},
		Store: StoreConfig{
			MongoURI:        "mongodb://localhost:27017",
			MongoDatabase:   appName,
			MongoCollection: "splits",
		},
	}

	path := c.configPath
	explicit := path != ""
	if !explicit {
		path = appName + ".toml"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.Logger.Debugf("loaded config from %s", path)
	return cfg, nil
}
