package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ttscoff/md-fixup/internal/configloader"
	"github.com/ttscoff/md-fixup/internal/logging"
	"github.com/ttscoff/md-fixup/pkg/config"
	"github.com/ttscoff/md-fixup/pkg/fsutil"
	"github.com/ttscoff/md-fixup/pkg/pipeline"
	"github.com/ttscoff/md-fixup/pkg/replacements"
	"github.com/ttscoff/md-fixup/pkg/rules"
)

// fixupFlags holds the root command's formatting flags.
type fixupFlags struct {
	overwrite        bool
	width            int
	skip             []string
	initConfig       bool
	replacements     bool
	noReplacements   bool
	replacementsFile string
	continueOnError  bool
}

func addFixupFlags(cmd *cobra.Command) *fixupFlags {
	flags := &fixupFlags{}
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", false,
		"write the result back to each input file atomically")
	cmd.Flags().IntVar(&flags.width, "width", 60,
		"wrap width for rule 14 (0 disables wrapping)")
	cmd.Flags().StringSliceVar(&flags.skip, "skip", nil,
		"comma-separated rule IDs and/or keywords (including group aliases) to skip")
	cmd.Flags().BoolVar(&flags.initConfig, "init-config", false,
		"write a default config file to the user config path and exit")
	cmd.Flags().BoolVar(&flags.replacements, "replacements", false, "force enable user replacements")
	cmd.Flags().BoolVar(&flags.noReplacements, "no-replacements", false, "force disable user replacements")
	cmd.Flags().StringVar(&flags.replacementsFile, "replacements-file", "",
		"explicit replacements YAML file")
	cmd.Flags().BoolVar(&flags.continueOnError, "continue-on-error", false,
		"exit 0 even if a user replacement fails to compile")
	return flags
}

// runFixup is the root command's RunE: it loads config, resolves the skip
// set and inputs, and drives the pipeline over each resolved file.
func runFixup(cmd *cobra.Command, args []string, configPath string, flags *fixupFlags, registry *rules.Registry) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()

	if flags.initConfig {
		return runInitConfig()
	}

	overrides := config.Overrides{
		OverwriteSet: cmd.Flags().Changed("overwrite"),
		Overwrite:    flags.overwrite,
		Skip:         flags.skip,
	}
	if cmd.Flags().Changed("width") {
		overrides.WidthSet = true
		overrides.Width = flags.width
	}
	if flags.replacements {
		overrides.ReplacementsSet = true
		overrides.Replacements = true
	}
	if flags.noReplacements {
		overrides.ReplacementsSet = true
		overrides.Replacements = false
	}
	if flags.replacementsFile != "" {
		overrides.ReplacementsFile = flags.replacementsFile
		// Naming a file is itself opting in; only an explicit
		// --no-replacements outranks it.
		if !flags.noReplacements {
			overrides.ReplacementsSet = true
			overrides.Replacements = true
		}
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{ExplicitPath: configPath, Overrides: overrides})
	if err != nil {
		return fmt.Errorf("%w: %w", rules.ErrInvalidRule, err)
	}
	cfg := loaded.Config

	skip, err := rules.Resolve(registry, cfg.Rules.Skip, cfg.Rules.Include, nil)
	if err != nil {
		return err
	}

	var repls []*replacements.Replacement
	if cfg.Replacements && cfg.ReplacementsFile != "" {
		data, readErr := os.ReadFile(cfg.ReplacementsFile)
		if readErr != nil {
			return wrapIO(fmt.Errorf("read replacements file %s: %w", cfg.ReplacementsFile, readErr))
		}
		var loadErrs []error
		repls, loadErrs = replacements.Load(data)
		for _, e := range loadErrs {
			logger.Warn("replacement skipped", logging.FieldError, e)
		}
		if len(loadErrs) > 0 && !flags.continueOnError {
			err = errors.Join(loadErrs...)
		}
	}

	inputs, resolveErr := ResolveInputs(args, os.Stdin, IsTTY(os.Stdin.Fd()))
	if resolveErr != nil {
		return wrapIO(resolveErr)
	}

	driver := pipeline.NewDriver(registry, repls)
	opts := rules.Options{
		Width:                      cfg.Width,
		ListReset:                  cfg.ListReset,
		TypographyDisableEmDash:    skip.DisableEmDash(),
		TypographyDisableGuillemet: skip.DisableGuillemet(),
	}

	var ioFailure error
	for _, path := range inputs {
		if runErr := processFile(ctx, cmd, driver, skip, opts, path, cfg.Overwrite); runErr != nil {
			logger.Error("failed processing file", logging.FieldPath, path, logging.FieldError, runErr)
			ioFailure = wrapIO(runErr)
		}
	}
	if ioFailure != nil {
		return ioFailure
	}
	return err
}

// processFile reads, runs the pipeline over, and emits one document,
// either to stdout or back to path via an atomic overwrite.
func processFile(
	ctx context.Context,
	cmd *cobra.Command,
	driver *pipeline.Driver,
	skip *rules.SkipSet,
	opts rules.Options,
	path string,
	overwrite bool,
) error {
	content, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return err
	}

	result, err := driver.Run(string(content), skip, opts)
	if err != nil {
		return fmt.Errorf("run pipeline on %s: %w", path, err)
	}
	for _, e := range result.Errors {
		logging.Default().Warn("replacement runtime error", logging.FieldPath, path, logging.FieldError, e)
	}

	out := result.Doc.String()
	if overwrite {
		info, statErr := os.Stat(path)
		mode := fsutil.DefaultFileMode
		if statErr == nil {
			mode = info.Mode()
		}
		return fsutil.WriteAtomic(ctx, path, []byte(out), mode)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
