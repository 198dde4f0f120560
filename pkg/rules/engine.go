package rules

import (
	"fmt"

	"github.com/ttscoff/md-fixup/pkg/document"
)

// Engine owns the ordered list of rules and consults a resolved skip set
// (see Resolve), executing rules in order 1..33, each receiving the full
// document text produced by the previous rule.
type Engine struct {
	Registry *Registry
}

// NewEngine creates an Engine over the given registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// Run executes every non-skipped rule, in ID order, against doc.
func (e *Engine) Run(doc *document.Document, skip *SkipSet, opts Options) (*document.Document, error) {
	opts.TypographyDisableEmDash = opts.TypographyDisableEmDash || skip.DisableEmDash()
	opts.TypographyDisableGuillemet = opts.TypographyDisableGuillemet || skip.DisableGuillemet()

	current := doc
	for _, rule := range e.Registry.Ordered() {
		if skip.Skipped(rule.ID) {
			continue
		}
		next, err := rule.Apply(current, opts)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%s): %w", rule.ID, rule.Keyword, err)
		}
		if next == nil {
			return nil, fmt.Errorf("rule %d (%s): returned nil document", rule.ID, rule.Keyword)
		}
		current = next
	}
	return current, nil
}
