// Package workspace locates the workbench root: the nearest ancestor
// directory containing annobench.toml.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mlaforge/annobench/internal/config"
)

// ErrNotFound indicates no workbench root was found above the start
// directory.
var ErrNotFound = errors.New("not inside an annobench workbench")

// Find walks upward from start looking for the config file and returns the
// directory containing it.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (looked for %s upward from %s)", ErrNotFound, config.FileName, start)
		}
		dir = parent
	}
}

// FindFromCwd locates the workbench root from the current directory.
func FindFromCwd() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return Find(cwd)
}

// Init creates a workbench at root: the config file plus an empty data
// directory. An existing workbench is rejected.
func Init(root string) error {
	if _, err := os.Stat(filepath.Join(root, config.FileName)); err == nil {
		return fmt.Errorf("workbench already initialized at %s", root)
	}

	cfg := config.Default()
	if err := os.MkdirAll(cfg.ResolveDataDir(root), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	return config.Write(root, cfg)
}
