// Package config loads the workbench configuration from annobench.toml at
// the workbench root, with ANNOBENCH_* environment overrides (a .env file is
// honored too).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/mlaforge/annobench/internal/persist"
)

// FileName is the config file marking a workbench root.
const FileName = "annobench.toml"

// Environment override variables.
const (
	EnvDataDir  = "ANNOBENCH_DATA_DIR"
	EnvEncoding = "ANNOBENCH_ENCODING"
	EnvLogLevel = "ANNOBENCH_LOG_LEVEL"
)

// Config is the on-disk configuration.
type Config struct {
	// DataDir holds the four resource files, relative to the workbench
	// root unless absolute.
	DataDir string `toml:"data_dir"`

	// Encoding is "utf-8" (default) or "latin1" for data directories
	// written by the legacy tool with the platform default encoding.
	Encoding string `toml:"encoding"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `toml:"log_level"`

	Files Files `toml:"files"`
}

// Files overrides the per-resource file names inside DataDir.
type Files struct {
	Users       string `toml:"users"`
	Texts       string `toml:"texts"`
	Annotations string `toml:"annotations"`
	Collections string `toml:"collections"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		DataDir:  "data",
		Encoding: "utf-8",
		LogLevel: "info",
		Files: Files{
			Users:       persist.UsersFile,
			Texts:       persist.TextsFile,
			Annotations: persist.AnnotationsFile,
			Collections: persist.CollectionsFile,
		},
	}
}

// Load reads the config at root, fills defaults for anything unset, and
// applies environment overrides. A missing file yields the defaults.
func Load(root string) (Config, error) {
	cfg := Default()

	path := filepath.Join(root, FileName)
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.fillDefaults()

	_ = godotenv.Load()
	cfg.DataDir = getenv(EnvDataDir, cfg.DataDir)
	cfg.Encoding = getenv(EnvEncoding, cfg.Encoding)
	cfg.LogLevel = getenv(EnvLogLevel, cfg.LogLevel)

	if !strings.EqualFold(cfg.Encoding, "utf-8") && !strings.EqualFold(cfg.Encoding, "latin1") {
		return Config{}, fmt.Errorf("unsupported encoding %q", cfg.Encoding)
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	def := Default()
	if c.DataDir == "" {
		c.DataDir = def.DataDir
	}
	if c.Encoding == "" {
		c.Encoding = def.Encoding
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Files.Users == "" {
		c.Files.Users = def.Files.Users
	}
	if c.Files.Texts == "" {
		c.Files.Texts = def.Files.Texts
	}
	if c.Files.Annotations == "" {
		c.Files.Annotations = def.Files.Annotations
	}
	if c.Files.Collections == "" {
		c.Files.Collections = def.Files.Collections
	}
}

// Latin1 reports whether the legacy single-byte encoding is selected.
func (c Config) Latin1() bool {
	return strings.EqualFold(c.Encoding, "latin1")
}

// ResolveDataDir returns the absolute data directory for a workbench root.
func (c Config) ResolveDataDir(root string) string {
	if filepath.IsAbs(c.DataDir) {
		return c.DataDir
	}
	return filepath.Join(root, c.DataDir)
}

// Paths returns the four resource paths for a workbench root.
func (c Config) Paths(root string) persist.Paths {
	dir := c.ResolveDataDir(root)
	return persist.Paths{
		Users:       filepath.Join(dir, c.Files.Users),
		Texts:       filepath.Join(dir, c.Files.Texts),
		Annotations: filepath.Join(dir, c.Files.Annotations),
		Collections: filepath.Join(dir, c.Files.Collections),
	}
}

// Write saves cfg as the workbench config under root.
func Write(root string, cfg Config) error {
	f, err := os.Create(filepath.Join(root, FileName))
	if err != nil {
		return fmt.Errorf("creating config: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
