// Package pretty provides Lipgloss-based styled terminal output for the
// CLI's rules listing.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles holds the renderers the rules table uses.
type Styles struct {
	Header    lipgloss.Style
	Separator lipgloss.Style
	RuleID    lipgloss.Style
	Keyword   lipgloss.Style
	Dim       lipgloss.Style
}

// NewStyles builds styles for the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &Styles{Header: plain, Separator: plain, RuleID: plain, Keyword: plain, Dim: plain}
	}
	return &Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		RuleID:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Keyword:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// IsColorEnabled resolves the --color auto/always/never flag: auto enables
// color only when the writer is a TTY and NO_COLOR is unset.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
