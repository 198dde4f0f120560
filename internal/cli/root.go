// Package cli provides the Cobra command structure for md-fixup.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ttscoff/md-fixup/internal/logging"
	"github.com/ttscoff/md-fixup/pkg/rules"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root md-fixup command with its flags and
// subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	registry := rules.NewDefaultRegistry()

	rootCmd := &cobra.Command{
		Use:   "md-fixup [files...]",
		Short: "A Markdown linter and formatter",
		Long: `md-fixup normalizes a Markdown document by applying a fixed, ordered
pipeline of transformation rules plus optional user-defined regex
replacements. By default the result is written to stdout;
use --overwrite to rewrite each input file in place.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	flags := addFixupFlags(rootCmd)
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runFixup(cmd, args, configPath, flags, registry)
	}

	rootCmd.AddCommand(newRulesCommand(registry))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
