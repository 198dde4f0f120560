package region

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
)

var (
	fenceRe      = regexp.MustCompile("^[ ]{0,3}(```+|~~~+)[ ]*([A-Za-z0-9_+-]*)[ ]*$")
	tableSepRe   = regexp.MustCompile(`^\s*\|?\s*:?-{3,}:?\s*(\|\s*:?-{3,}:?\s*)+\|?\s*$`)
	listRe       = regexp.MustCompile(`^(\s*)([-*+]|\d+[.)])(\s+)`)
	hrRe         = regexp.MustCompile(`^\s*(-{3,}|_{3,}|\*{3,})\s*$`)
	atxRe        = regexp.MustCompile(`^\s{0,3}#{1,6}(\s|$|[^#])`)
	setextUnderR = regexp.MustCompile(`^\s{0,3}(=+|-+)\s*$`)
	blockquoteRe = regexp.MustCompile(`^\s*>`)
)

// Classify builds a region Map for the given document.
func Classify(doc *document.Document) *Map {
	n := doc.Len()
	infos := make([]LineInfo, n)

	classifyFrontmatter(doc, infos)
	classifyFences(doc, infos)
	classifyDisplayMath(doc, infos)
	classifySetext(doc, infos)
	classifyTables(doc, infos)

	for i := 0; i < n; i++ {
		if infos[i].Kind != Prose {
			continue
		}
		line := doc.Lines[i]
		classifyLine(line, &infos[i])
	}

	classifyIndentedCode(doc, infos)

	for i := 0; i < n; i++ {
		if infos[i].Kind == Prose || infos[i].Kind == Headline || infos[i].Kind == List ||
			infos[i].Kind == Blockquote || infos[i].Kind == Table {
			infos[i].CodeSpans = findCodeSpans(doc.Lines[i])
		}
	}

	return &Map{Lines: infos}
}

func classifyFrontmatter(doc *document.Document, infos []LineInfo) {
	n := doc.Len()
	first := -1
	for i := 0; i < n; i++ {
		if strings.TrimSpace(doc.Lines[i]) == "" {
			continue
		}
		first = i
		break
	}
	if first < 0 || strings.TrimRight(doc.Lines[first], " \t") != "---" {
		return
	}
	for i := first + 1; i < n; i++ {
		if strings.TrimRight(doc.Lines[i], " \t") == "---" {
			for j := first; j <= i; j++ {
				infos[j].Kind = Frontmatter
			}
			return
		}
	}
}

func classifyFences(doc *document.Document, infos []LineInfo) {
	n := doc.Len()
	for i := 0; i < n; i++ {
		if infos[i].Kind != Prose {
			continue
		}
		m := fenceRe.FindStringSubmatch(doc.Lines[i])
		if m == nil {
			continue
		}
		fenceChar := m[1][0:1]
		lang := m[2]
		infos[i].Kind = FencedCode
		infos[i].FenceLang = lang
		closed := false
		for j := i + 1; j < n; j++ {
			if infos[j].Kind != Prose {
				infos[j].Kind = FencedCode
				continue
			}
			infos[j].Kind = FencedCode
			closeM := fenceRe.FindStringSubmatch(doc.Lines[j])
			if closeM != nil && strings.HasPrefix(closeM[1], fenceChar) && closeM[2] == "" {
				closed = true
				i = j
				break
			}
		}
		if !closed {
			i = n
		}
	}
}

func classifyDisplayMath(doc *document.Document, infos []LineInfo) {
	n := doc.Len()
	for i := 0; i < n; i++ {
		if infos[i].Kind != Prose {
			continue
		}
		trimmed := strings.TrimSpace(doc.Lines[i])
		if trimmed == "$$" {
			infos[i].Kind = DisplayMath
			for j := i + 1; j < n; j++ {
				infos[j].Kind = DisplayMath
				if strings.TrimSpace(doc.Lines[j]) == "$$" {
					i = j
					break
				}
			}
			continue
		}
		if strings.HasPrefix(trimmed, "$$") && strings.HasSuffix(trimmed, "$$") && len(trimmed) > 3 {
			infos[i].Kind = DisplayMath
		}
	}
}

func classifySetext(doc *document.Document, infos []LineInfo) {
	n := doc.Len()
	for i := 0; i < n-1; i++ {
		if infos[i].Kind != Prose {
			continue
		}
		text := doc.Lines[i]
		if strings.TrimSpace(text) == "" {
			continue
		}
		if atxRe.MatchString(text) || blockquoteRe.MatchString(text) || listRe.MatchString(text) {
			continue
		}
		next := doc.Lines[i+1]
		if infos[i+1].Kind != Prose {
			continue
		}
		if !setextUnderR.MatchString(next) {
			continue
		}
		// A lone "---" underline is ambiguous with a horizontal rule; a
		// non-blank line directly above claims it as a setext underline.
		infos[i].Kind = SetextHeadline
		infos[i+1].Kind = SetextHeadline
		i++
	}
}

func classifyTables(doc *document.Document, infos []LineInfo) {
	n := doc.Len()
	for i := 0; i < n; i++ {
		if infos[i].Kind != Prose || !tableSepRe.MatchString(doc.Lines[i]) {
			continue
		}
		start := i
		if i > 0 && infos[i-1].Kind == Prose && strings.Contains(doc.Lines[i-1], "|") &&
			strings.TrimSpace(doc.Lines[i-1]) != "" {
			start = i - 1
		}
		infos[i].Kind = TableSeparator
		if start != i {
			infos[start].Kind = Table
		}
		for j := i + 1; j < n; j++ {
			if infos[j].Kind != Prose || !strings.Contains(doc.Lines[j], "|") ||
				strings.TrimSpace(doc.Lines[j]) == "" {
				break
			}
			infos[j].Kind = Table
		}
	}
}

// classifyIndentedCode upgrades remaining Prose lines to IndentedCode: a
// ≥4-space (or one-tab) indented line counts as indented code only when
// it is not part of a list item's own indentation and when it is preceded
// by a blank line, the start of the document, or another indented-code
// line (CommonMark's own rule that a lazy-continuation line cannot open
// an indented code block).
func classifyIndentedCode(doc *document.Document, infos []LineInfo) {
	n := len(infos)
	inList := false
	for i := 0; i < n; i++ {
		switch infos[i].Kind {
		case List:
			inList = true
			continue
		case Blank:
			continue
		case Prose:
			// fall through to the indent check below
		default:
			inList = false
			continue
		}

		indented := hasIndentedCodeIndent(doc.Lines[i])
		if inList {
			if indented {
				// A list item's own continuation indent; leave it Prose so
				// list rules keep seeing it.
				continue
			}
			inList = false
		}
		if !indented {
			continue
		}
		prevOpensCode := i == 0 || infos[i-1].Kind == Blank || infos[i-1].Kind == IndentedCode
		if prevOpensCode {
			infos[i].Kind = IndentedCode
		}
	}
}

// hasIndentedCodeIndent reports whether line's leading whitespace is at
// least 4 columns (a literal tab counts as one level on its own).
func hasIndentedCodeIndent(line string) bool {
	if strings.HasPrefix(line, "\t") {
		return true
	}
	trimmed := strings.TrimLeft(line, " ")
	return len(line)-len(trimmed) >= 4
}

func classifyLine(line string, info *LineInfo) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		info.Kind = Blank
		return
	}
	if m := listRe.FindStringSubmatch(line); m != nil {
		info.Kind = List
		info.ListIndent = len(expandTabs(m[1]))
		info.ListMarker = m[2]
		if n, err := strconv.Atoi(strings.TrimRight(m[2], ".)")); err == nil {
			info.ListOrdered = true
			info.ListNumber = n
		}
		info.ListDepth = info.ListIndent / 4
		return
	}
	if blockquoteRe.MatchString(line) {
		info.Kind = Blockquote
		info.BlockquoteDepth = countBlockquoteMarkers(line)
		return
	}
	if hrRe.MatchString(line) {
		info.Kind = HorizontalRule
		return
	}
	if atxRe.MatchString(line) {
		info.Kind = Headline
		return
	}
}

func countBlockquoteMarkers(line string) int {
	depth := 0
	i := 0
	for i < len(line) {
		for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		if i < len(line) && line[i] == '>' {
			depth++
			i++
			continue
		}
		break
	}
	return depth
}

func expandTabs(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\t' {
			b.WriteString("    ")
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// findCodeSpans locates balanced backtick inline code spans on a single
// line. Spans do not cross line boundaries; a document that opens a code
// span on one line and closes it on another is treated, per span, as
// unmatched and ignored.
func findCodeSpans(line string) []CodeSpan {
	var spans []CodeSpan
	i := 0
	for i < len(line) {
		if line[i] != '`' {
			i++
			continue
		}
		runStart := i
		for i < len(line) && line[i] == '`' {
			i++
		}
		tickLen := i - runStart
		// Search for a closing run of the same length.
		j := i
		for j < len(line) {
			if line[j] != '`' {
				j++
				continue
			}
			closeStart := j
			for j < len(line) && line[j] == '`' {
				j++
			}
			if j-closeStart == tickLen {
				spans = append(spans, CodeSpan{Start: runStart, End: j})
				i = j
				break
			}
			// Different-length run: not a match, keep scanning from j.
		}
		if j >= len(line) && (len(spans) == 0 || spans[len(spans)-1].End != i) {
			// No closing run found; stop scanning this line for more spans.
			break
		}
	}
	return spans
}
