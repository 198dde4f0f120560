package rules

import (
	"regexp"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/emoji"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func registerEmojiRules(r *Registry) {
	r.Register(&Rule{ID: 23, Keyword: "emoji-spellcheck", Apply: ruleEmojiSpellcheck})
}

var emojiShortcodeRe = regexp.MustCompile(`:([a-zA-Z0-9_+-]+):`)

// ruleEmojiSpellcheck corrects a misspelled `:shortname:` outside inert
// regions and inline code spans when the dictionary has a unique closest
// match.
func ruleEmojiSpellcheck(doc *document.Document, _ Options) (*document.Document, error) {
	rmap := region.Classify(doc)
	out := doc.Clone()

	for i, line := range out.Lines {
		if rmap.Lines[i].Kind.IsInert() {
			continue
		}
		out.Lines[i] = applyOutsideCodeSpans(line, rmap.Lines[i].CodeSpans, func(s string) string {
			return emojiShortcodeRe.ReplaceAllStringFunc(s, func(m string) string {
				sub := emojiShortcodeRe.FindStringSubmatch(m)
				name := sub[1]
				if emoji.Known(name) {
					return m
				}
				if best := emoji.Closest(name); best != "" {
					return ":" + best + ":"
				}
				return m
			})
		})
	}
	return out, nil
}
