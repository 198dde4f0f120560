package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/ttscoff/md-fixup/pkg/config"
)

// LoadOptions controls config discovery and loading.
type LoadOptions struct {
	// ExplicitPath is a config path provided via a CLI flag; it takes
	// priority over discovery.
	ExplicitPath string

	// Overrides carries CLI flag values to layer on top of the file
	// config.
	Overrides config.Overrides
}

// Result is the outcome of loading and merging configuration.
type Result struct {
	Config     *config.Config
	LoadedFrom string
}

// Load discovers (or uses the explicit path to) a config file, parses it,
// and merges CLI overrides on top. A missing config file is not an error
// — the documented defaults apply.
func Load(ctx context.Context, opts LoadOptions) (*Result, error) {
	path := opts.ExplicitPath
	if path == "" {
		discovered, err := DiscoverPath(ctx)
		if err != nil {
			return nil, err
		}
		path = discovered
	}

	base := config.Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		base, err = config.FromYAML(data)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	merged := config.Merge(base, opts.Overrides)
	return &Result{Config: merged, LoadedFrom: path}, nil
}
