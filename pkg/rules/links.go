package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerLinkRules(r *Registry) {
	r.Register(&Rule{ID: 18, Keyword: "ref-link-spacing", Apply: ruleRefLinkSpacing})
	r.Register(&Rule{ID: 28, Keyword: "reference-links", Apply: ruleReferenceLinks})
	r.Register(&Rule{ID: 29, Keyword: "links-at-end", Apply: ruleLinksAtEnd})
	r.Register(&Rule{ID: 30, Keyword: "inline-links", Apply: ruleInlineLinks})
}

var refLinkSpacingRe = regexp.MustCompile(`^(\s*\[[^\]]+\])\s*:\s*(.*)$`)

// ruleRefLinkSpacing normalizes the colon after a reference link's label.
func ruleRefLinkSpacing(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind.IsInert() {
			continue
		}
		m := refLinkSpacingRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out.Lines[i] = m[1] + ": " + m[2]
	}
	return out, nil
}

var inlineLinkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)\s]+)(?:\s+"([^"]*)")?\)`)
var referenceLinkRe = regexp.MustCompile(`\[([^\]]*)\]\[(\d+)\]`)
var refDefRe = regexp.MustCompile(`^\s*\[(\d+)\]:\s*(\S+)(?:\s+"([^"]*)")?\s*$`)

// linkDef is a collected reference-link definition awaiting placement.
type linkDef struct {
	N     int
	URL   string
	Title string
}

// ruleReferenceLinks replaces inline links outside inert regions and
// inline code spans with numeric reference links and collects their
// definitions. Definitions are appended at the top of the document; rule
// 29 relocates them to the end when both rules are active.
func ruleReferenceLinks(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var defs []linkDef
	next := 1

	out := doc.Clone()
	for i, line := range out.Lines {
		if rmap.Lines[i].Kind.IsInert() {
			continue
		}
		out.Lines[i] = applyOutsideCodeSpans(line, rmap.Lines[i].CodeSpans, func(s string) string {
			return inlineLinkRe.ReplaceAllStringFunc(s, func(m string) string {
				sub := inlineLinkRe.FindStringSubmatch(m)
				text, url, title := sub[1], sub[2], sub[3]
				n := next
				next++
				defs = append(defs, linkDef{N: n, URL: url, Title: title})
				return fmt.Sprintf("[%s][%d]", text, n)
			})
		})
	}
	if len(defs) == 0 {
		return out, nil
	}

	var defLines []string
	for _, d := range defs {
		defLines = append(defLines, formatLinkDef(d))
	}
	result := append(append([]string{}, defLines...), "")
	result = append(result, out.Lines...)
	return &document.Document{Lines: result}, nil
}

func formatLinkDef(d linkDef) string {
	if d.Title != "" {
		return fmt.Sprintf("[%d]: %s \"%s\"", d.N, d.URL, d.Title)
	}
	return fmt.Sprintf("[%d]: %s", d.N, d.URL)
}

// ruleLinksAtEnd relocates reference-link definitions collected by rule
// 28 to the end of the document, preceded by a blank line. It is a no-op
// if there are no definition lines to move.
func ruleLinksAtEnd(doc *document.Document, _ Options) (*document.Document, error) {
	var defs []string
	var body []string
	seenBody := false

	for _, line := range doc.Lines {
		if !seenBody && refDefRe.MatchString(line) {
			defs = append(defs, line)
			continue
		}
		if !seenBody && strings.TrimSpace(line) == "" && len(defs) > 0 {
			continue
		}
		seenBody = true
		body = append(body, line)
	}
	if len(defs) == 0 {
		return doc, nil
	}

	for len(body) > 0 && strings.TrimSpace(body[len(body)-1]) == "" {
		body = body[:len(body)-1]
	}
	result := append(append([]string{}, body...), "")
	result = append(result, defs...)
	return &document.Document{Lines: result}, nil
}

// ruleInlineLinks converts reference-style links outside inert regions and
// inline code spans back to inline form using their definitions and
// removes the consumed definitions. It overrides rule 28 when both are
// active.
func ruleInlineLinks(doc *document.Document, _ Options) (*document.Document, error) {
	defs := map[int]linkDef{}
	var defLineIdx []int
	for i, line := range doc.Lines {
		m := refDefRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		var n int
		fmt.Sscanf(m[1], "%d", &n)
		defs[n] = linkDef{N: n, URL: m[2], Title: m[3]}
		defLineIdx = append(defLineIdx, i)
	}
	if len(defs) == 0 {
		return doc, nil
	}

	rmap := region.Classify(doc)
	used := map[int]bool{}
	out := doc.Clone()
	for i, line := range out.Lines {
		if rmap.Lines[i].Kind.IsInert() {
			continue
		}
		out.Lines[i] = applyOutsideCodeSpans(line, rmap.Lines[i].CodeSpans, func(s string) string {
			return referenceLinkRe.ReplaceAllStringFunc(s, func(m string) string {
				sub := referenceLinkRe.FindStringSubmatch(m)
				var n int
				fmt.Sscanf(sub[2], "%d", &n)
				def, ok := defs[n]
				if !ok {
					return m
				}
				used[n] = true
				if def.Title != "" {
					return fmt.Sprintf("[%s](%s \"%s\")", sub[1], def.URL, def.Title)
				}
				return fmt.Sprintf("[%s](%s)", sub[1], def.URL)
			})
		})
	}

	drop := make(map[int]bool, len(defLineIdx))
	for _, idx := range defLineIdx {
		m := refDefRe.FindStringSubmatch(doc.Lines[idx])
		var n int
		fmt.Sscanf(m[1], "%d", &n)
		if used[n] {
			drop[idx] = true
		}
	}

	var result []string
	for i, line := range out.Lines {
		if drop[i] {
			continue
		}
		result = append(result, line)
	}
	return &document.Document{Lines: result}, nil
}
