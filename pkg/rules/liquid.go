package rules

import (
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerLiquidRules(r *Registry) {
	r.Register(&Rule{ID: 31, Keyword: "liquid-tags", Apply: ruleLiquidTags})
}

var liquidTagRe = regexp.MustCompile(`\{%-?\s*(.*?)\s*-?%\}`)
var liquidExprRe = regexp.MustCompile(`\{\{-?\s*(.*?)\s*-?\}\}`)

// ruleLiquidTags normalizes Liquid tag and expression delimiter spacing:
// `{%tag args%}` becomes `{% tag args %}` and `{{expr}}` becomes
// `{{ expr }}`, collapsing any extra interior whitespace.
func ruleLiquidTags(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind.IsInert() {
			continue
		}
		line = liquidTagRe.ReplaceAllStringFunc(line, func(m string) string {
			sub := liquidTagRe.FindStringSubmatch(m)
			return "{% " + strings.Join(strings.Fields(sub[1]), " ") + " %}"
		})
		line = liquidExprRe.ReplaceAllStringFunc(line, func(m string) string {
			sub := liquidExprRe.FindStringSubmatch(m)
			return "{{ " + strings.Join(strings.Fields(sub[1]), " ") + " }}"
		})
		out.Lines[i] = line
	}
	return out, nil
}
