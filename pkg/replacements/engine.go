package replacements

import (
	"fmt"
	"strings"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

// Apply runs every replacement in set, in order, against doc, masking
// fenced code and frontmatter lines before each regex runs unless the
// replacement opts in to seeing them.
func Apply(doc *document.Document, set []*Replacement) (*document.Document, []error) {
	var errs []error
	current := doc
	for _, r := range set {
		next, err := applyOne(current, r)
		if err != nil {
			errs = append(errs, fmt.Errorf("replacement %q: %w", r.Name, err))
			continue
		}
		current = next
	}
	return current, errs
}

// applyOne masks inert regions (unless the replacement includes them),
// runs the replacement's regex across the whole document text, then
// restores the masked spans verbatim.
func applyOne(doc *document.Document, r *Replacement) (*document.Document, error) {
	rmap := region.Classify(doc)

	masked := make([]string, doc.Len())
	placeholders := map[string]string{}
	for i, line := range doc.Lines {
		kind := rmap.Lines[i].Kind
		mustMask := (kind == region.FencedCode && !r.InCodeBlocks) ||
			(kind == region.Frontmatter && !r.InFrontmatter)
		if !mustMask {
			masked[i] = line
			continue
		}
		token := fmt.Sprintf("\x00REPLMASK%d\x00", i)
		placeholders[token] = line
		masked[i] = token
	}

	text := strings.Join(masked, "\n")
	text = r.re.ReplaceAllString(text, r.Replacement)

	for token, original := range placeholders {
		text = strings.ReplaceAll(text, token, original)
	}
	return document.Parse(text), nil
}
