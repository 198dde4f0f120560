// Package pipeline drives one document through the full fixup sequence:
// before-replacements, the 33-rule engine, after-replacements, and a
// final terminator normalization pass.
package pipeline

import (
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/replacements"
	"github.com/ttscoff/md-fixup/pkg/rules"
)

// Driver bundles everything one run of the pipeline needs.
type Driver struct {
	Engine       *rules.Engine
	Replacements []*replacements.Replacement
}

// NewDriver builds a Driver over the given rule registry.
func NewDriver(registry *rules.Registry, repls []*replacements.Replacement) *Driver {
	return &Driver{
		Engine:       rules.NewEngine(registry),
		Replacements: repls,
	}
}

// Result carries the fixed-up document alongside any non-fatal issues
// encountered along the way (skipped-replacement compile errors surface
// earlier, at load time; runtime replacement errors surface here).
type Result struct {
	Doc    *document.Document
	Errors []error
}

// Run applies before-replacements, the rule engine (honoring skip), and
// after-replacements, then trims any trailing blank lines so the output
// always ends in exactly one newline.
func (d *Driver) Run(text string, skip *rules.SkipSet, opts rules.Options) (*Result, error) {
	doc := document.Parse(text)

	before := replacements.ForTiming(d.Replacements, replacements.TimingBefore)
	doc, errsBefore := replacements.Apply(doc, before)

	doc, err := d.Engine.Run(doc, skip, opts)
	if err != nil {
		return nil, err
	}

	after := replacements.ForTiming(d.Replacements, replacements.TimingAfter)
	doc, errsAfter := replacements.Apply(doc, after)

	doc = trimTrailingBlank(doc)

	var errs []error
	errs = append(errs, errsBefore...)
	errs = append(errs, errsAfter...)
	return &Result{Doc: doc, Errors: errs}, nil
}

// trimTrailingBlank drops trailing blank lines so Document.String's
// single appended "\n" is the document's only end-of-file terminator,
// regardless of which rule last touched the tail.
func trimTrailingBlank(doc *document.Document) *document.Document {
	end := len(doc.Lines)
	for end > 0 && strings.TrimSpace(doc.Lines[end-1]) == "" {
		end--
	}
	return &document.Document{Lines: append([]string{}, doc.Lines[:end]...)}
}
