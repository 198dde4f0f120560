// Package document defines the line-oriented document model shared by every
// rule in the md-fixup pipeline.
package document

import "strings"

// Document is an ordered sequence of lines, without trailing newlines, plus
// an implicit end-of-file marker. The canonical line separator on output is
// LF; Lines never contain '\n' themselves.
type Document struct {
	Lines []string
}

// Parse splits text into a Document. CRLF and lone CR are not normalized
// here — that is rule 1's job (line-endings) — so Parse is a faithful,
// lossless split on '\n'.
func Parse(text string) *Document {
	if text == "" {
		return &Document{Lines: []string{}}
	}
	lines := strings.Split(text, "\n")
	// strings.Split on "a\nb\n" yields ["a","b",""]; drop the trailing
	// empty element produced by a final newline so Lines always reflects
	// actual content lines. A document with no trailing newline keeps its
	// last (non-empty) line.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Document{Lines: lines}
}

// String joins the document back into text, terminated by exactly one LF.
// An empty document renders as a single blank line.
func (d *Document) String() string {
	if len(d.Lines) == 0 {
		return "\n"
	}
	return strings.Join(d.Lines, "\n") + "\n"
}

// Clone returns a deep copy so a rule can mutate its working copy without
// aliasing the caller's slice.
func (d *Document) Clone() *Document {
	out := make([]string, len(d.Lines))
	copy(out, d.Lines)
	return &Document{Lines: out}
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.Lines)
}

// Line returns the 1-based line n, or "" if out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}
