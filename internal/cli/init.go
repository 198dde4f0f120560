package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ttscoff/md-fixup/internal/configloader"
	"github.com/ttscoff/md-fixup/internal/logging"
	"github.com/ttscoff/md-fixup/pkg/config"
)

// configFilePermissions is the file mode for a freshly generated config file.
const configFilePermissions = 0o644

// runInitConfig implements --init-config: write a default config file to
// the discovered user config path and exit.
func runInitConfig() error {
	path := configloader.DefaultConfigPath()
	if path == "" {
		return wrapIO(fmt.Errorf("resolve default config path: no home directory"))
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return wrapIO(fmt.Errorf("create config directory: %w", err))
	}

	content, err := config.GenerateTemplate()
	if err != nil {
		return fmt.Errorf("generate config template: %w", err)
	}

	if err := os.WriteFile(path, content, configFilePermissions); err != nil {
		return wrapIO(fmt.Errorf("write config file %s: %w", path, err))
	}

	logging.Default().Info("wrote default configuration", logging.FieldPath, path)
	return nil
}
