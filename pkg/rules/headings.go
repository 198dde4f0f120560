package rules

import (
	"regexp"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerHeadingRules(r *Registry) {
	r.Register(&Rule{ID: 4, Keyword: "header-spacing", Apply: ruleHeaderSpacing})
	r.Register(&Rule{ID: 5, Keyword: "header-newline", Apply: ruleHeaderNewline})
}

var atxParts = regexp.MustCompile(`^(\s{0,3})(#{1,6})\s*(.*?)\s*$`)
var trailingHashes = regexp.MustCompile(`\s*#+\s*$`)

// ruleHeaderSpacing normalizes ATX headlines to exactly one space between
// the '#' run and the text, and strips a trailing '#' run.
func ruleHeaderSpacing(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind != region.Headline {
			continue
		}
		m := atxParts.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		indent, hashes, text := m[1], m[2], m[3]
		text = trailingHashes.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
		if text == "" {
			out.Lines[i] = indent + hashes
			continue
		}
		out.Lines[i] = indent + hashes + " " + text
	}
	return out, nil
}

// ruleHeaderNewline inserts a blank line after a headline whose following
// line is non-blank and is not a setext underline.
func ruleHeaderNewline(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	var out []string

	n := doc.Len()
	for i := 0; i < n; i++ {
		out = append(out, doc.Lines[i])
		if rmap.Lines[i].Kind != region.Headline {
			continue
		}
		if i+1 >= n {
			continue
		}
		next := doc.Lines[i+1]
		if strings.TrimSpace(next) == "" {
			continue
		}
		if rmap.Lines[i+1].Kind == region.SetextHeadline {
			continue
		}
		out = append(out, "")
	}
	return &document.Document{Lines: out}, nil
}
