package rules

import (
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerBlockquoteRules(r *Registry) {
	r.Register(&Rule{ID: 20, Keyword: "blockquote-spacing", Apply: ruleBlockquoteSpacing})
	r.Register(&Rule{ID: 32, Keyword: "blockquote-markers", Apply: ruleBlockquoteMarkers})
}

var blockquoteMarkerRunRe = regexp.MustCompile(`^(\s*)((?:>\s*)+)(.*)$`)

// ruleBlockquoteSpacing ensures exactly one space after each leading '>'
// and gives a continuation line lacking '>' one, so it still joins the
// blockquote.
func ruleBlockquoteSpacing(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		kind := rmap.Lines[i].Kind
		if kind == region.Blockquote {
			out.Lines[i] = spaceBlockquoteMarkers(line)
			continue
		}
		if strings.TrimSpace(line) == "" || kind.IsInert() {
			continue
		}
		if i > 0 && rmap.Lines[i-1].Kind == region.Blockquote && !strings.HasPrefix(strings.TrimLeft(line, " \t"), ">") {
			out.Lines[i] = "> " + line
		}
	}
	return out, nil
}

// spaceBlockquoteMarkers gives each leading '>' exactly one trailing
// space, so a chained "> > >text" becomes "> > > text". Rule 32 later
// collapses the inter-marker spaces this introduces, so the two rules
// stay independently observable.
func spaceBlockquoteMarkers(line string) string {
	m := blockquoteMarkerRunRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	indent, markers, rest := m[1], m[2], m[3]
	depth := strings.Count(markers, ">")
	return indent + strings.Repeat("> ", depth) + rest
}

// compactBlockquoteMarkers removes the spaces between consecutive leading
// '>' markers, preserving the single space before the content.
func compactBlockquoteMarkers(line string) string {
	m := blockquoteMarkerRunRe.FindStringSubmatch(line)
	if m == nil {
		return line
	}
	indent, markers, rest := m[1], m[2], m[3]
	depth := strings.Count(markers, ">")
	return indent + strings.Repeat(">", depth) + " " + rest
}

// ruleBlockquoteMarkers removes the spaces between consecutive leading
// '>' markers, preserving the single space before the content.
func ruleBlockquoteMarkers(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind != region.Blockquote {
			continue
		}
		out.Lines[i] = compactBlockquoteMarkers(line)
	}
	return out, nil
}
