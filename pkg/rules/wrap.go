package rules

import (
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerWrapRules(r *Registry) {
	r.Register(&Rule{ID: 14, Keyword: "wrap", Apply: ruleWrap})
}

// protectedSpanRe matches the inline spans rule 14 must never break inside:
// inline code, markdown links (including the URL inside the parens), and
// inline math.
var protectedSpanRe = regexp.MustCompile("`[^`]+`|\\[[^\\]]*\\]\\([^)]*\\)|\\$[^$\n]+\\$")

// ruleWrap rewraps prose paragraphs to at most opts.Width characters.
// Tables, headlines, lists, blockquotes, and anything inside fenced code
// or display math are left untouched; a width of 0 disables the rule.
func ruleWrap(doc *document.Document, opts Options) (*document.Document, error) {
	if opts.Width <= 0 {
		return doc, nil
	}
	rmap := region.Classify(doc)
	var out []string

	n := doc.Len()
	i := 0
	for i < n {
		if !wrapEligible(doc.Lines[i], rmap.Lines[i].Kind) {
			out = append(out, doc.Lines[i])
			i++
			continue
		}
		start := i
		for i < n && wrapEligible(doc.Lines[i], rmap.Lines[i].Kind) {
			i++
		}
		out = append(out, wrapParagraph(doc.Lines[start:i], opts.Width)...)
	}
	return &document.Document{Lines: out}, nil
}

// wrapEligible reports whether a line may be rewrapped: non-blank prose
// with no leading indent. An indented prose line is a list item's
// continuation paragraph and keeps its indentation as-is.
func wrapEligible(line string, kind region.Kind) bool {
	if kind != region.Prose || strings.TrimSpace(line) == "" {
		return false
	}
	return line[0] != ' ' && line[0] != '\t'
}

// wrapParagraph rewraps one paragraph (a maximal run of prose lines),
// preserving any hard line break (a line with exactly two trailing
// spaces) as a segment boundary.
func wrapParagraph(lines []string, width int) []string {
	var out []string
	var segment []string

	flush := func(hardBreak bool) {
		if len(segment) == 0 {
			return
		}
		text := strings.Join(segment, " ")
		wrapped := wrapTokens(tokenizeProtected(text), width)
		if hardBreak && len(wrapped) > 0 {
			wrapped[len(wrapped)-1] += "  "
		}
		out = append(out, wrapped...)
		segment = segment[:0]
	}

	for _, line := range lines {
		hard := strings.HasSuffix(line, "  ") && !strings.HasSuffix(line, "   ")
		trimmed := strings.TrimRight(line, " ")
		segment = append(segment, trimmed)
		if hard {
			flush(true)
		}
	}
	flush(false)
	return out
}

// tokenizeProtected splits text into wrap-eligible tokens: whitespace
// inside a protected span (inline code, links, inline math) does not
// break a token, so a span plus any punctuation glued to it stays whole.
func tokenizeProtected(text string) []string {
	spans := protectedSpanRe.FindAllStringIndex(text, -1)
	inSpan := func(i int) bool {
		for _, m := range spans {
			if i >= m[0] && i < m[1] {
				return true
			}
		}
		return false
	}

	var tokens []string
	start := -1
	for i := 0; i < len(text); i++ {
		if (text[i] == ' ' || text[i] == '\t') && !inSpan(i) {
			if start >= 0 {
				tokens = append(tokens, text[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		tokens = append(tokens, text[start:])
	}
	return tokens
}

// wrapTokens greedily packs tokens onto lines of at most width runes,
// except a token longer than width is placed alone on its own line.
func wrapTokens(tokens []string, width int) []string {
	var lines []string
	var cur strings.Builder
	curLen := 0

	for _, tok := range tokens {
		tlen := len([]rune(tok))
		switch {
		case curLen == 0:
			cur.WriteString(tok)
			curLen = tlen
		case curLen+1+tlen <= width:
			cur.WriteByte(' ')
			cur.WriteString(tok)
			curLen += 1 + tlen
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(tok)
			curLen = tlen
		}
	}
	if curLen > 0 || len(lines) == 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
