package rules

import (
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
	"github.com/ttscoff/md-fixup/pkg/typography"
)

func registerEmphasisRules(r *Registry) {
	r.Register(&Rule{ID: 24, Keyword: "typography", Apply: ruleTypography})
	r.Register(&Rule{ID: 25, Keyword: "bold-italic", Apply: ruleBoldItalic})
}

// ruleTypography applies the static quote/dash/ellipsis/guillemet
// substitutions outside inert regions and inline code spans, honoring the
// em-dash and guillemet sub-skips.
func ruleTypography(doc *document.Document, opts Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	subs := activeTypographySubs(opts)
	for i, line := range out.Lines {
		if rmap.Lines[i].Kind.IsInert() {
			continue
		}
		out.Lines[i] = applyOutsideCodeSpans(line, rmap.Lines[i].CodeSpans, func(s string) string {
			for _, sub := range subs {
				s = strings.ReplaceAll(s, sub.From, sub.To)
			}
			return s
		})
	}
	return out, nil
}

func activeTypographySubs(opts Options) []typography.Substitution {
	var subs []typography.Substitution
	for _, sub := range typography.All() {
		if opts.TypographyDisableEmDash && sub.Name == typography.SubSkipEmDash {
			continue
		}
		if opts.TypographyDisableGuillemet && (sub.Name == "guillemet-open" || sub.Name == "guillemet-close") {
			continue
		}
		subs = append(subs, sub)
	}
	return subs
}

var tripleEmphasisRe = regexp.MustCompile(`(\*{3}|_{3})([^*_]+)(\*{3}|_{3})`)
var doubleStarRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// ruleBoldItalic normalizes emphasis markers to bold = `__..__`, italic =
// `*..*`, bold-italic = `__*..*__`, preserving intra-word underscores.
func ruleBoldItalic(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind.IsInert() {
			continue
		}
		out.Lines[i] = applyOutsideCodeSpans(line, rmap.Lines[i].CodeSpans, normalizeEmphasis)
	}
	return out, nil
}

func normalizeEmphasis(s string) string {
	s = tripleEmphasisRe.ReplaceAllString(s, "__*$2*__")
	s = doubleStarRe.ReplaceAllString(s, "__${1}__")
	s = convertItalicUnderscores(s)
	return s
}

// convertItalicUnderscores rewrites single, non-intra-word underscore
// emphasis markers to asterisks. It operates token by token (tokens are
// maximal runs of non-space bytes): a token containing a single underscore
// flanked by a letter, digit, or "." on both sides (e.g. `_file_name_.md`)
// is identifier-like and left untouched in its entirety, rather than just
// leaving that one underscore alone — otherwise only the middle
// underscore of such a token would be spared while its outer delimiters
// got converted, splitting the identifier.
func convertItalicUnderscores(s string) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if s[i] == ' ' || s[i] == '\t' {
			j := i
			for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
				j++
			}
			b.WriteString(s[i:j])
			i = j
			continue
		}
		j := i
		for j < len(s) && s[j] != ' ' && s[j] != '\t' {
			j++
		}
		b.WriteString(convertTokenUnderscores(s[i:j]))
		i = j
	}
	return b.String()
}

// convertTokenUnderscores converts the single-underscore delimiters of one
// whitespace-free token to asterisks, unless the token contains a single
// underscore flanked by word/dot characters on both sides, in which case
// the whole token is identifier-like and returned unchanged.
func convertTokenUnderscores(tok string) string {
	b := []byte(tok)
	var positions []int

	i := 0
	for i < len(b) {
		if b[i] != '_' {
			i++
			continue
		}
		j := i
		for j < len(b) && b[j] == '_' {
			j++
		}
		if j-i == 1 {
			positions = append(positions, i)
		}
		i = j
	}

	for _, p := range positions {
		var before, after byte
		if p > 0 {
			before = b[p-1]
		}
		if p+1 < len(b) {
			after = b[p+1]
		}
		if isWordOrDot(before) && isWordOrDot(after) {
			return tok
		}
	}

	for k := 0; k+1 < len(positions); k += 2 {
		b[positions[k]] = '*'
		b[positions[k+1]] = '*'
	}
	return string(b)
}

func isWordOrDot(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '.':
		return true
	default:
		return false
	}
}

// applyOutsideCodeSpans runs transform over the substrings of line that
// fall outside its inline code spans, leaving span contents untouched.
func applyOutsideCodeSpans(line string, spans []region.CodeSpan, transform func(string) string) string {
	if len(spans) == 0 {
		return transform(line)
	}
	var b strings.Builder
	last := 0
	for _, span := range spans {
		if span.Start < last {
			continue
		}
		b.WriteString(transform(line[last:span.Start]))
		b.WriteString(line[span.Start:span.End])
		last = span.End
	}
	b.WriteString(transform(line[last:]))
	return b.String()
}
