package rules

import (
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerMetadataRules(r *Registry) {
	r.Register(&Rule{ID: 16, Keyword: "ial-spacing", Apply: ruleIALSpacing})
	r.Register(&Rule{ID: 21, Keyword: "math-spacing", Apply: ruleMathSpacing})
}

var ialRe = regexp.MustCompile(`\{:?\s*([^{}]*?)\s*\}`)
var ialAttrSplit = regexp.MustCompile(`\s+`)

// ruleIALSpacing normalizes Kramdown (`{: .class #id }`) and Pandoc
// (`{ .class }`) inline attribute lists to a single internal space
// between attributes and no space inside the braces.
func ruleIALSpacing(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind.IsInert() {
			continue
		}
		out.Lines[i] = ialRe.ReplaceAllStringFunc(line, func(m string) string {
			sub := ialRe.FindStringSubmatch(m)
			kramdown := strings.HasPrefix(m, "{:")
			attrs := ialAttrSplit.Split(strings.TrimSpace(sub[1]), -1)
			body := strings.Join(nonEmpty(attrs), " ")
			if kramdown {
				return "{:" + body + "}"
			}
			return "{" + body + "}"
		})
	}
	return out, nil
}

func nonEmpty(ss []string) []string {
	var out []string
	for _, s := range ss {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

var displayMathFenceRe = regexp.MustCompile(`^\s*\$\$\s*$`)
var currencyRe = regexp.MustCompile(`\$[0-9.]`)
var bareDollarMathRe = regexp.MustCompile(`\$\$([^$]*)\$\$`)

// ruleMathSpacing puts display-math delimiters on their own lines with a
// blank line before and after, while leaving bare currency like `$0.50`
// or `$.02` untouched.
func ruleMathSpacing(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var out []string

	n := doc.Len()
	for i := 0; i < n; i++ {
		line := doc.Lines[i]
		kind := rmap.Lines[i].Kind

		if kind == region.DisplayMath && displayMathFenceRe.MatchString(line) {
			if i == 0 || rmap.Lines[i-1].Kind != region.DisplayMath {
				out = appendBlankIfNeeded(out)
			}
			out = append(out, strings.TrimSpace(line))
			if isDisplayMathClose(rmap, i) {
				out = markNeedsBlankAfter(out, doc, i)
			}
			continue
		}

		// A single-line $$...$$ block, or a block embedded mid-line in
		// prose, is hoisted onto its own fenced lines.
		singleLineBlock := kind == region.DisplayMath && !displayMathFenceRe.MatchString(line)
		if (kind == region.Prose || singleLineBlock) && !currencyLikely(line) {
			before, body, after, ok := splitInlineDisplayMath(line)
			if ok {
				if strings.TrimSpace(before) != "" {
					out = append(out, strings.TrimRight(before, " \t"))
				}
				out = appendBlankIfNeeded(out)
				out = append(out, "$$")
				if strings.TrimSpace(body) != "" {
					out = append(out, strings.TrimSpace(body))
				}
				out = append(out, "$$")
				if strings.TrimSpace(after) != "" {
					out = append(out, "", strings.TrimLeft(after, " \t"))
				} else if i+1 < n && strings.TrimSpace(doc.Lines[i+1]) != "" {
					out = append(out, "")
				}
				continue
			}
		}
		out = append(out, line)
	}
	return &document.Document{Lines: out}, nil
}

func appendBlankIfNeeded(out []string) []string {
	if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
		out = append(out, "")
	}
	return out
}

func markNeedsBlankAfter(out []string, doc *document.Document, i int) []string {
	if i+1 < doc.Len() && strings.TrimSpace(doc.Lines[i+1]) != "" {
		out = append(out, "")
	}
	return out
}

func isDisplayMathClose(rmap *region.Map, i int) bool {
	return i == len(rmap.Lines)-1 || rmap.Lines[i+1].Kind != region.DisplayMath
}

// currencyLikely applies the bare-currency heuristic: a "$" immediately
// followed by a digit or "." with no closing "$" on the same line is
// currency, not math.
func currencyLikely(line string) bool {
	if !currencyRe.MatchString(line) {
		return false
	}
	return strings.Count(line, "$") < 2
}

// splitInlineDisplayMath splits a line containing a `$$...$$` block into
// the text before the block, the block body, and the text after it.
func splitInlineDisplayMath(line string) (before, body, after string, ok bool) {
	m := bareDollarMathRe.FindStringSubmatchIndex(line)
	if m == nil {
		return "", "", "", false
	}
	return line[:m[0]], line[m[2]:m[3]], line[m[1]:], true
}
