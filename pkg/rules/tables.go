package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerTableRules(r *Registry) {
	r.Register(&Rule{ID: 22, Keyword: "table-format", Apply: ruleTableFormat})
}

type colAlign int

const (
	alignNone colAlign = iota
	alignLeft
	alignRight
	alignCenter
)

// ruleTableFormat aligns pipe-delimited tables by computing each column's
// rendered width across all rows and rewriting every row, including a
// relaxed table's missing outer pipes and a headerless table whose first
// row is itself the separator.
func ruleTableFormat(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var out []string

	n := doc.Len()
	i := 0
	for i < n {
		if !isTableKind(rmap.Lines[i].Kind) {
			out = append(out, doc.Lines[i])
			i++
			continue
		}
		start := i
		for i < n && isTableKind(rmap.Lines[i].Kind) {
			i++
		}
		out = append(out, formatTableBlock(doc.Lines[start:i], rmap.Lines[start:i])...)
	}
	return &document.Document{Lines: out}, nil
}

func isTableKind(k region.Kind) bool {
	return k == region.Table || k == region.TableSeparator
}

func formatTableBlock(lines []string, infos []region.LineInfo) []string {
	sepIdx := -1
	for idx, info := range infos {
		if info.Kind == region.TableSeparator {
			sepIdx = idx
			break
		}
	}
	if sepIdx < 0 {
		return lines
	}

	rows := make([][]string, len(lines))
	for idx, line := range lines {
		rows[idx] = splitTableRow(line)
	}

	aligns := parseAlignments(rows[sepIdx])
	numCols := len(aligns)
	for _, row := range rows {
		if len(row) > numCols {
			numCols = len(row)
		}
	}
	for len(aligns) < numCols {
		aligns = append(aligns, alignNone)
	}

	widths := make([]int, numCols)
	for idx, row := range rows {
		if idx == sepIdx {
			continue
		}
		for c := 0; c < numCols; c++ {
			w := utf8.RuneCountInString(cellAt(row, c))
			if w > widths[c] {
				widths[c] = w
			}
		}
	}
	for c := range widths {
		if widths[c] < 3 {
			widths[c] = 3
		}
	}

	out := make([]string, len(rows))
	for idx, row := range rows {
		if idx == sepIdx {
			out[idx] = renderSeparatorRow(aligns, widths)
			continue
		}
		out[idx] = renderTableRow(row, aligns, widths)
	}
	return out
}

func cellAt(row []string, c int) string {
	if c < len(row) {
		return row[c]
	}
	return ""
}

// splitTableRow splits a pipe-delimited row into trimmed cells, tolerating
// a relaxed table's missing leading/trailing pipe and an escaped "\|"
// inside a cell.
func splitTableRow(line string) []string {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.ReplaceAll(trimmed, `\|`, "\x00")
	trimmed = strings.TrimPrefix(trimmed, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")

	parts := strings.Split(trimmed, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.ReplaceAll(strings.TrimSpace(p), "\x00", `\|`)
	}
	return cells
}

func parseAlignments(sepCells []string) []colAlign {
	aligns := make([]colAlign, len(sepCells))
	for i, cell := range sepCells {
		cell = strings.TrimSpace(cell)
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = alignCenter
		case right:
			aligns[i] = alignRight
		case left:
			aligns[i] = alignLeft
		default:
			aligns[i] = alignNone
		}
	}
	return aligns
}

func renderTableRow(row []string, aligns []colAlign, widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for c := range widths {
		b.WriteString(" ")
		b.WriteString(padCell(cellAt(row, c), aligns[c], widths[c]))
		b.WriteString(" |")
	}
	return b.String()
}

func padCell(cell string, align colAlign, width int) string {
	pad := width - utf8.RuneCountInString(cell)
	if pad <= 0 {
		return cell
	}
	switch align {
	case alignRight:
		return strings.Repeat(" ", pad) + cell
	case alignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", right)
	default:
		return cell + strings.Repeat(" ", pad)
	}
}

func renderSeparatorRow(aligns []colAlign, widths []int) string {
	var b strings.Builder
	b.WriteString("|")
	for c, w := range widths {
		b.WriteString(" ")
		b.WriteString(renderSeparatorCell(aligns[c], w))
		b.WriteString(" |")
	}
	return b.String()
}

func renderSeparatorCell(align colAlign, width int) string {
	switch align {
	case alignLeft:
		return ":" + dashes(width-1)
	case alignRight:
		return dashes(width-1) + ":"
	case alignCenter:
		return ":" + dashes(width-2) + ":"
	default:
		return dashes(width)
	}
}

func dashes(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat("-", n)
}
