package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ttscoff/md-fixup/internal/ui/pretty"
	"github.com/ttscoff/md-fixup/pkg/rules"
)

// newRulesCommand lists the 33 built-in rules and their keywords, for
// discovering --skip tokens.
func newRulesCommand(registry *rules.Registry) *cobra.Command {
	var color string

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rules and their keywords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			colorEnabled := pretty.IsColorEnabled(color, out)
			styles := pretty.NewStyles(colorEnabled)
			table := pretty.FormatRulesTable(registry, styles, pretty.TerminalWidth(out))
			_, err := fmt.Fprint(out, table)
			return err
		},
	}

	cmd.Flags().StringVar(&color, "color", "auto", "colorize output: auto, always, never")
	return cmd
}
