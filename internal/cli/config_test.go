package cli

import (
	"io"
	"os"
	"path/filepath"
	"testing"
)

func testCLI() *CLI { return New(io.Discard, LogInfo) }

func TestLoadConfig(t *testing.T) {
	content := `
dataset = "mini_imagenet"
words = "/data/words.txt"
is_a = "/data/is_a.txt"
data_root = "/data/images"
margin = 10
valid_classes = 20
test_classes = 30
skip_files = ["dup.jpeg"]

[cache]
backend = "redis"
redis_addr = "cache:6379"

[store]
backend = "mongo"
mongo_uri = "mongodb://db:27017"
`
	path := filepath.Join(t.TempDir(), "taxsplit.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	c := testCLI()
	c.configPath = path
	cfg, err := c.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}

	if cfg.Dataset != "mini_imagenet" {
		t.Errorf("Dataset = %q", cfg.Dataset)
	}
	if cfg.Words != "/data/words.txt" || cfg.IsA != "/data/is_a.txt" {
		t.Errorf("paths = %q, %q", cfg.Words, cfg.IsA)
	}
	if cfg.Margin != 10 || cfg.ValidClasses != 20 || cfg.TestClasses != 30 {
		t.Errorf("sizing = %d/%d/%d", cfg.Margin, cfg.ValidClasses, cfg.TestClasses)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "cache:6379" {
		t.Errorf("cache config = %+v", cfg.Cache)
	}
	// Untouched sections keep their defaults.
	if cfg.Cache.RedisKey != "taxsplit:counts" {
		t.Errorf("Cache.RedisKey = %q, want default", cfg.Cache.RedisKey)
	}
	if cfg.Store.Backend != "mongo" || cfg.Store.MongoDatabase != "taxsplit" {
		t.Errorf("store config = %+v", cfg.Store)
	}
	if len(cfg.SkipFiles) != 1 || cfg.SkipFiles[0] != "dup.jpeg" {
		t.Errorf("SkipFiles = %v", cfg.SkipFiles)
	}
}

func TestLoadConfigMissingDefault(t *testing.T) {
	// Without --config a missing ./taxsplit.toml yields the defaults.
	c := testCLI()
	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	os.Chdir(t.TempDir())

	cfg, err := c.loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Dataset != "ilsvrc_2012" {
		t.Errorf("Dataset = %q, want the default", cfg.Dataset)
	}
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	c := testCLI()
	c.configPath = filepath.Join(t.TempDir(), "absent.toml")
	if _, err := c.loadConfig(); err == nil {
		t.Error("loadConfig() = nil error for an explicit missing path")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taxsplit.toml")
	if err := os.WriteFile(path, []byte("dataset = [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	c := testCLI()
	c.configPath = path
	if _, err := c.loadConfig(); err == nil {
		t.Error("loadConfig() = nil error for invalid TOML")
	}
}
