// Package configloader discovers, loads, and merges md-fixup's YAML
// configuration file.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// configFileNames are the config file names searched for, in order of
// preference, within the XDG config directory.
//
//nolint:gochecknoglobals // read-only lookup table
var configFileNames = []string{"config.yaml", "config.yml"}

// DiscoverPath returns the first existing md-fixup config file under
// $XDG_CONFIG_HOME/md-fixup or ~/.config/md-fixup, or "" if none exists.
func DiscoverPath(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}
	return findConfigInDir(configDir())
}

// configDir resolves the directory md-fixup's config file lives in.
func configDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "md-fixup")
}

// DefaultConfigPath is where --init-config writes the default template:
// the first candidate name in the discovery list, created if absent.
func DefaultConfigPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func findConfigInDir(dir string) (string, error) {
	if dir == "" {
		return "", nil
	}
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if fileExists(path) {
			return path, nil
		}
	}
	return "", nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
