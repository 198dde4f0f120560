package rules

import (
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerHRRules(r *Registry) {
	r.Register(&Rule{ID: 10, Keyword: "rule-before", Apply: ruleRuleBefore})
	r.Register(&Rule{ID: 11, Keyword: "rule-after", Apply: ruleRuleAfter})
}

// ruleRuleBefore ensures a blank line precedes every horizontal rule.
func ruleRuleBefore(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var out []string

	for i, line := range doc.Lines {
		if rmap.Lines[i].Kind == region.HorizontalRule && i > 0 && strings.TrimSpace(doc.Lines[i-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return &document.Document{Lines: out}, nil
}

// ruleRuleAfter ensures a blank line follows every horizontal rule.
func ruleRuleAfter(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var out []string

	n := doc.Len()
	for i, line := range doc.Lines {
		out = append(out, line)
		if rmap.Lines[i].Kind == region.HorizontalRule && i+1 < n && strings.TrimSpace(doc.Lines[i+1]) != "" {
			out = append(out, "")
		}
	}
	return &document.Document{Lines: out}, nil
}
