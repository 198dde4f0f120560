package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerListRules(r *Registry) {
	r.Register(&Rule{ID: 8, Keyword: "list-before", Apply: ruleListBefore})
	r.Register(&Rule{ID: 9, Keyword: "list-after", Apply: ruleListAfter})
	r.Register(&Rule{ID: 12, Keyword: "list-tabs", Apply: ruleListTabs})
	r.Register(&Rule{ID: 13, Keyword: "list-marker", Apply: ruleListMarker})
	r.Register(&Rule{ID: 19, Keyword: "task-checkbox", Apply: ruleTaskCheckbox})
	r.Register(&Rule{ID: 26, Keyword: "list-markers", Apply: ruleListMarkers})
	r.Register(&Rule{ID: 27, Keyword: "list-reset", Apply: ruleListReset})
	r.Register(&Rule{ID: 33, Keyword: "compress-lists", Apply: ruleCompressLists})
}

func isListLine(k region.Kind) bool {
	return k == region.List
}

// listCore/listContinuation/listBlank feed findBlocks to group a maximal
// list block: list-item lines are core, an indented non-blank line
// following one is a continuation, and runs of blank lines join two
// list-eligible runs together. An unindented line ends the block, so the
// blank-line rules still separate a list from trailing prose.
func listCore(rmap *region.Map) func(int) bool {
	return func(i int) bool { return isListLine(rmap.Lines[i].Kind) }
}

func listContinuation(doc *document.Document, rmap *region.Map) func(int) bool {
	return func(i int) bool {
		if isListLine(rmap.Lines[i].Kind) {
			return false
		}
		line := doc.Lines[i]
		if strings.TrimSpace(line) == "" {
			return false
		}
		kind := rmap.Lines[i].Kind
		if kind == region.Headline || kind == region.HorizontalRule {
			return false
		}
		return line[0] == ' ' || line[0] == '\t'
	}
}

func listBlank(doc *document.Document) func(int) bool {
	return func(i int) bool { return strings.TrimSpace(doc.Lines[i]) == "" }
}

// ruleListBefore ensures a blank line precedes every list block.
func ruleListBefore(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	blocks := findBlocks(doc.Len(), listCore(rmap), listContinuation(doc, rmap), listBlank(doc))
	starts := make(map[int]bool, len(blocks))
	for _, b := range blocks {
		starts[b.Start] = true
	}

	var out []string
	for i, line := range doc.Lines {
		if starts[i] && i > 0 && strings.TrimSpace(doc.Lines[i-1]) != "" {
			out = append(out, "")
		}
		out = append(out, line)
	}
	return &document.Document{Lines: out}, nil
}

// ruleListAfter ensures a blank line follows every list block.
func ruleListAfter(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	blocks := findBlocks(doc.Len(), listCore(rmap), listContinuation(doc, rmap), listBlank(doc))
	ends := make(map[int]bool, len(blocks))
	for _, b := range blocks {
		ends[b.End] = true
	}

	n := doc.Len()
	var out []string
	for i, line := range doc.Lines {
		out = append(out, line)
		if ends[i] && i+1 < n && strings.TrimSpace(doc.Lines[i+1]) != "" {
			out = append(out, "")
		}
	}
	return &document.Document{Lines: out}, nil
}

var leadingWhitespaceRe = regexp.MustCompile(`^[ \t]*`)

// ruleListTabs converts the leading indent of list continuation and
// nested-item lines to tabs, one tab per indent level. A level is a run
// of 4 spaces or one existing tab; a leftover fragment of 1-3 spaces is
// absorbed into the preceding level rather than emitted as a partial tab.
// Continuation lines (an item's indented follow-on paragraph) convert
// too, so long as they sit inside a list run.
func ruleListTabs(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()
	cont := listContinuation(doc, rmap)

	inList := false
	for i, line := range out.Lines {
		switch {
		case rmap.Lines[i].Kind == region.List:
			inList = true
			if rmap.Lines[i].ListDepth == 0 {
				continue
			}
		case strings.TrimSpace(line) == "":
			continue
		case inList && cont(i):
			// indented continuation paragraph, converted below
		default:
			inList = false
			continue
		}
		indent := leadingWhitespaceRe.FindString(line)
		if indent == "" {
			continue
		}
		out.Lines[i] = strings.Repeat("\t", levelsFor(indent)) + line[len(indent):]
	}
	return out, nil
}

// levelsFor counts indent levels, rounding a partial trailing fragment
// down into the preceding full level; an indent shorter than one level
// still counts as one.
func levelsFor(indent string) int {
	cols := 0
	for _, r := range indent {
		if r == '\t' {
			cols += 4
		} else {
			cols++
		}
	}
	levels := cols / 4
	if levels == 0 && cols > 0 {
		levels = 1
	}
	return levels
}

var listMarkerRe = regexp.MustCompile(`^(\s*)([-*+]|\d+[.)])\s+(.*)$`)

// ruleListMarker collapses the whitespace after a list marker to exactly
// one space.
func ruleListMarker(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind != region.List {
			continue
		}
		m := listMarkerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		out.Lines[i] = m[1] + m[2] + " " + m[3]
	}
	return out, nil
}

var taskCheckboxRe = regexp.MustCompile(`(?i)\[([ xX])\]\s*`)

// ruleTaskCheckbox lowercases the "done" marker in task-list checkboxes
// and normalizes the space before the following text.
func ruleTaskCheckbox(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind != region.List {
			continue
		}
		out.Lines[i] = taskCheckboxRe.ReplaceAllStringFunc(line, func(m string) string {
			sub := taskCheckboxRe.FindStringSubmatch(m)
			mark := strings.ToLower(sub[1])
			if mark != "x" {
				mark = " "
			}
			return "[" + mark + "] "
		})
	}
	return out, nil
}

var bulletCycle = []string{"-", "*", "+"}

// ruleListMarkers renumbers ordered list items sequentially within each
// list and standardizes unordered bullet markers by nesting depth,
// cycling through "-", "*", "+".
func ruleListMarkers(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()
	counters := map[int]int{}

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind != region.List {
			// A non-blank, non-list line ends every active list at every
			// depth, so the next list starts a fresh numbering run. A blank
			// keeps the run alive: loose-list items still number as one list.
			if strings.TrimSpace(line) != "" {
				counters = map[int]int{}
			}
			continue
		}
		depth := rmap.Lines[i].ListDepth
		m := listMarkerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		indent, rest := m[1], m[3]

		if rmap.Lines[i].ListOrdered {
			if _, started := counters[depth]; started {
				counters[depth]++
			} else {
				start := rmap.Lines[i].ListNumber
				if start <= 0 {
					start = 1
				}
				counters[depth] = start
			}
			resetCountersAbove(counters, depth)
			out.Lines[i] = fmt.Sprintf("%s%d. %s", indent, counters[depth], rest)
			continue
		}

		resetCountersAbove(counters, depth)
		delete(counters, depth)
		bullet := bulletCycle[depth%len(bulletCycle)]
		out.Lines[i] = indent + bullet + " " + rest
	}
	return out, nil
}

// resetCountersAbove clears ordered-list counters for every depth deeper
// than depth, so a shallower item starts a fresh numbering run for its
// descendants.
func resetCountersAbove(counters map[int]int, depth int) {
	for d := range counters {
		if d > depth {
			delete(counters, d)
		}
	}
}

// ruleListReset forces every ordered list to restart at 1 when
// opts.ListReset is set; otherwise it is a no-op, leaving rule 26's
// consecutive renumbering (from each list's own starting number) as the
// final behavior.
func ruleListReset(doc *document.Document, opts Options) (*document.Document, error) {
	if !opts.ListReset {
		return doc, nil
	}
	rmap := region.Classify(doc)
	out := doc.Clone()
	counters := map[int]int{}

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind != region.List {
			if strings.TrimSpace(line) != "" {
				counters = map[int]int{}
			}
			continue
		}
		if !rmap.Lines[i].ListOrdered {
			continue
		}
		depth := rmap.Lines[i].ListDepth
		m := listMarkerRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		indent, rest := m[1], m[3]
		counters[depth]++
		resetCountersAbove(counters, depth)
		out.Lines[i] = fmt.Sprintf("%s%d. %s", indent, counters[depth], rest)
	}
	return out, nil
}

// ruleCompressLists removes blank lines between consecutive list items
// at the same nesting depth, as long as doing so would not merge the
// list with surrounding prose.
func ruleCompressLists(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	drop := make([]bool, doc.Len())

	n := doc.Len()
	for i := 0; i < n; i++ {
		if strings.TrimSpace(doc.Lines[i]) != "" {
			continue
		}
		prev := prevNonBlank(doc, i)
		next := nextNonBlank(doc, rmap, i)
		if prev < 0 || next >= n {
			continue
		}
		if rmap.Lines[prev].Kind != region.List || rmap.Lines[next].Kind != region.List {
			continue
		}
		if rmap.Lines[prev].ListDepth != rmap.Lines[next].ListDepth {
			continue
		}
		if next != i+1 {
			// Only a single blank separator between the two items collapses;
			// a multi-blank gap already went through rule 3 and is left alone
			// here to avoid merging unrelated runs.
			continue
		}
		drop[i] = true
	}

	var out []string
	for i, line := range doc.Lines {
		if drop[i] {
			continue
		}
		out = append(out, line)
	}
	return &document.Document{Lines: out}, nil
}

func prevNonBlank(doc *document.Document, i int) int {
	for j := i - 1; j >= 0; j-- {
		if strings.TrimSpace(doc.Lines[j]) != "" {
			return j
		}
	}
	return -1
}

func nextNonBlank(doc *document.Document, _ *region.Map, i int) int {
	for j := i + 1; j < doc.Len(); j++ {
		if strings.TrimSpace(doc.Lines[j]) != "" {
			return j
		}
	}
	return doc.Len()
}
