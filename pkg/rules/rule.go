// Package rules implements the Rule Engine and the 33 built-in
// transformation rules.
package rules

import "github.com/ttscoff/md-fixup/pkg/document"

// Options carries the per-run knobs a handful of rules need. Everything
// else is derived structurally from the document via pkg/region.
type Options struct {
	// Width is rule 14's wrap width; 0 disables wrapping.
	Width int

	// ListReset controls rule 27: true forces every ordered list to start
	// at 1, false preserves each list's original starting number.
	ListReset bool

	// TypographyDisableEmDash disables rule 24's em-dash substitution only
	// (the "em-dash" typography sub-skip keyword), keeping the rest of the
	// rule active.
	TypographyDisableEmDash bool

	// TypographyDisableGuillemet disables rule 24's guillemet substitution
	// only (the "guillemet" typography sub-skip keyword).
	TypographyDisableGuillemet bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Width: 60, ListReset: true}
}

// ApplyFunc is a pure transformation from Document to Document. A rule that
// finds nothing to change returns its input doc unmodified (or an
// equivalent clone) and a nil error: a rule that cannot find applicable
// structure is a no-op, never a failure.
type ApplyFunc func(doc *document.Document, opts Options) (*document.Document, error)

// Rule is one of the 33 contractual transformation steps.
type Rule struct {
	// ID is the rule's fixed 1..33 identifier; pipeline ordering is by ID.
	ID int

	// Keyword is the rule's stable CLI/config alias, e.g. "wrap".
	Keyword string

	// Apply performs the transformation.
	Apply ApplyFunc
}
