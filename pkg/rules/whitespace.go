package rules

import (
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerWhitespaceRules(r *Registry) {
	r.Register(&Rule{ID: 1, Keyword: "line-endings", Apply: ruleLineEndings})
	r.Register(&Rule{ID: 2, Keyword: "trailing", Apply: ruleTrailing})
	r.Register(&Rule{ID: 3, Keyword: "blank-lines", Apply: ruleBlankLines})
	r.Register(&Rule{ID: 15, Keyword: "end-newline", Apply: ruleEndNewline})
}

// ruleLineEndings replaces \r\n and lone \r with \n.
func ruleLineEndings(doc *document.Document, _ Options) (*document.Document, error) {
	text := strings.Join(doc.Lines, "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return document.Parse(text), nil
}

var definitionListRe = regexp.MustCompile(`^\s*:\s`)

// ruleTrailing trims trailing spaces/tabs on every line, except a hard
// line break (exactly two trailing spaces followed by a non-blank line)
// and lines inside fenced code blocks.
func ruleTrailing(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind == region.FencedCode {
			continue
		}
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line {
			continue
		}
		// Preserve exactly two trailing spaces as a hard line break when
		// followed by a non-blank line.
		if strings.HasSuffix(line, "  ") && !strings.HasSuffix(line, "   ") {
			if i+1 < len(out.Lines) && strings.TrimSpace(out.Lines[i+1]) != "" {
				out.Lines[i] = trimmed + "  "
				continue
			}
		}
		out.Lines[i] = trimmed
	}
	return out, nil
}

// ruleBlankLines collapses runs of 2+ blank lines to one, outside fenced
// code and display math, and removes blank/quote-only separators between
// consecutive definition-list items.
func ruleBlankLines(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var out []string

	n := len(doc.Lines)
	for i := 0; i < n; i++ {
		kind := rmap.Lines[i].Kind
		if kind == region.FencedCode || kind == region.DisplayMath {
			out = append(out, doc.Lines[i])
			continue
		}

		if isBlankOrQuoteOnly(doc.Lines[i]) && isDefinitionSeparator(doc.Lines, rmap, i) {
			// The separator sits between two definition items; drop it
			// entirely rather than collapsing it to one blank.
			continue
		}

		if strings.TrimSpace(doc.Lines[i]) == "" {
			if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, doc.Lines[i])
	}

	return &document.Document{Lines: out}, nil
}

// isBlankOrQuoteOnly matches a blank line or a bare blockquote marker line
// ("> " with nothing else).
func isBlankOrQuoteOnly(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}
	return trimmed == ">" || blockquoteOnlyRe.MatchString(line)
}

var blockquoteOnlyRe = regexp.MustCompile(`^\s*>\s*$`)

// isDefinitionSeparator reports whether doc.Lines[i] sits between two
// definition-list item lines (consecutive lines starting with ":" and
// whitespace, per the glossary's Definition list).
func isDefinitionSeparator(lines []string, _ *region.Map, i int) bool {
	prevIdx := i - 1
	for prevIdx >= 0 && isBlankOrQuoteOnly(lines[prevIdx]) {
		prevIdx--
	}
	if prevIdx < 0 || !definitionListRe.MatchString(lines[prevIdx]) {
		return false
	}

	nextIdx := i + 1
	for nextIdx < len(lines) && isBlankOrQuoteOnly(lines[nextIdx]) {
		nextIdx++
	}
	return nextIdx < len(lines) && definitionListRe.MatchString(lines[nextIdx])
}

// ruleEndNewline ensures the document ends with exactly one trailing blank
// line worth of content — i.e. no trailing blank Lines entries, so
// Document.String's single appended "\n" is the only line terminator at
// EOF.
func ruleEndNewline(doc *document.Document, _ Options) (*document.Document, error) {
	return trimTrailingBlankLines(doc), nil
}

func trimTrailingBlankLines(doc *document.Document) *document.Document {
	end := len(doc.Lines)
	for end > 0 && strings.TrimSpace(doc.Lines[end-1]) == "" {
		end--
	}
	return &document.Document{Lines: append([]string{}, doc.Lines[:end]...)}
}
