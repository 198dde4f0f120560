package rules

import (
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerCodeBlockRules(r *Registry) {
	r.Register(&Rule{ID: 6, Keyword: "code-before", Apply: ruleCodeBefore})
	r.Register(&Rule{ID: 7, Keyword: "code-after", Apply: ruleCodeAfter})
	r.Register(&Rule{ID: 17, Keyword: "code-lang-spacing", Apply: ruleCodeLangSpacing})
}

// fenceLine matches a fenced-code delimiter and captures its run of fence
// characters and, for an opening fence, the language identifier.
var fenceLine = regexp.MustCompile("^([ ]{0,3})(```+|~~~+)[ ]*([A-Za-z0-9_+-]*)[ ]*$")

// ruleCodeBefore ensures a blank line precedes each fenced code block.
func ruleCodeBefore(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var out []string

	for i, line := range doc.Lines {
		isOpen := rmap.Lines[i].Kind == region.FencedCode && (i == 0 || rmap.Lines[i-1].Kind != region.FencedCode)
		if isOpen && i > 0 && strings.TrimSpace(doc.Lines[i-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return &document.Document{Lines: out}, nil
}

// ruleCodeAfter ensures a blank line follows each fenced code block.
func ruleCodeAfter(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var out []string

	n := doc.Len()
	for i, line := range doc.Lines {
		out = append(out, line)
		isClose := rmap.Lines[i].Kind == region.FencedCode && (i+1 >= n || rmap.Lines[i+1].Kind != region.FencedCode)
		if isClose && i+1 < n && strings.TrimSpace(doc.Lines[i+1]) != "" {
			out = append(out, "")
		}
	}
	return &document.Document{Lines: out}, nil
}

// ruleCodeLangSpacing collapses the whitespace between a fence and its
// language identifier and resolves known aliases to their canonical name
// via go-enry.
func ruleCodeLangSpacing(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		isOpen := rmap.Lines[i].Kind == region.FencedCode && (i == 0 || rmap.Lines[i-1].Kind != region.FencedCode)
		if !isOpen {
			continue
		}
		m := fenceLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		indent, fence, lang := m[1], m[2], m[3]
		if lang == "" {
			out.Lines[i] = indent + fence
			continue
		}
		out.Lines[i] = indent + fence + normalizeLang(lang)
	}
	return out, nil
}

// normalizeLang resolves a fence language identifier to its canonical
// go-enry name when recognized, otherwise lowercases it as-is.
func normalizeLang(lang string) string {
	lower := strings.ToLower(lang)
	if canonical, ok := enry.GetLanguageByAlias(lower); ok {
		return strings.ToLower(canonical)
	}
	return lower
}
