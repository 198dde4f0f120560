package pretty

import (
	"fmt"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/rules"
)

const (
	tablePadding    = 2
	minIDWidth      = 2
	minKeywordWidth = 18
	// wideTableWidth is the minimum terminal width at which the group
	// aliases column is worth showing.
	wideTableWidth = 70
)

// groupAliasesFor lists the keyword group aliases that resolve to ruleID.
func groupAliasesFor(ruleID int) string {
	var names []string
	for name, ids := range groupAliasMembership {
		for _, id := range ids {
			if id == ruleID {
				names = append(names, name)
				break
			}
		}
	}
	return strings.Join(names, ",")
}

// groupAliasMembership mirrors rules.groupAliases; kept here rather than
// importing the unexported map so pretty has no dependency on rules
// internals beyond the public Registry.
//
//nolint:gochecknoglobals // static lookup table
var groupAliasMembership = map[string][]int{
	"code-block-newlines":   {6, 7},
	"display-math-newlines": {21},
}

// FormatRulesTable renders the 33 built-in rules as an aligned table: ID,
// keyword, and (when the terminal is wide enough) the group aliases that
// resolve to it.
func FormatRulesTable(registry *rules.Registry, styles *Styles, termWidth int) string {
	ordered := registry.Ordered()
	if len(ordered) == 0 {
		return ""
	}
	showAliases := termWidth >= wideTableWidth

	idWidth, keywordWidth := minIDWidth, minKeywordWidth
	for _, rule := range ordered {
		if w := len(fmt.Sprintf("%d", rule.ID)); w > idWidth {
			idWidth = w
		}
		if len(rule.Keyword) > keywordWidth {
			keywordWidth = len(rule.Keyword)
		}
	}

	var b strings.Builder
	header := fmt.Sprintf(" %-*s  %-*s", idWidth, "ID", keywordWidth, "KEYWORD")
	if showAliases {
		header += "  GROUP"
	}
	b.WriteString(styles.Header.Render(header))
	b.WriteString("\n")
	b.WriteString(styles.Separator.Render(strings.Repeat("-", idWidth+keywordWidth+tablePadding+1)))
	b.WriteString("\n")

	for _, rule := range ordered {
		b.WriteString(styles.RuleID.Render(fmt.Sprintf(" %-*d", idWidth, rule.ID)))
		b.WriteString(styles.Keyword.Render(fmt.Sprintf("  %-*s", keywordWidth, rule.Keyword)))
		if showAliases {
			b.WriteString(styles.Dim.Render("  " + groupAliasesFor(rule.ID)))
		}
		b.WriteString("\n")
	}
	return b.String()
}
