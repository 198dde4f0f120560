package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRefLinkSpacingNormalizesColon(t *testing.T) {
	out := runOnly(t, "ref-link-spacing", "[ref] : http://x \"T\"\n")
	assert.Equal(t, "[ref]: http://x \"T\"\n", out)
}

func TestReferenceLinksCollectsDefinitions(t *testing.T) {
	out := runOnly(t, "reference-links", "see [a](http://x) and [b](http://y \"T\")\n")
	assert.Equal(t, "[1]: http://x\n[2]: http://y \"T\"\n\nsee [a][1] and [b][2]\n", out)
}

func TestReferenceLinksSkipsCodeSpans(t *testing.T) {
	input := "see `[a](http://x)` ok\n"
	out := runOnly(t, "reference-links", input)
	assert.Equal(t, input, out)
}

func TestLinksAtEndMovesDefinitions(t *testing.T) {
	out := runOnly(t, "links-at-end", "[1]: http://x\n\nbody [a][1]\n")
	assert.Equal(t, "body [a][1]\n\n[1]: http://x\n", out)
}

func TestInlineLinksRestoresInlineForm(t *testing.T) {
	out := runOnly(t, "inline-links", "see [a][1]\n\n[1]: http://x \"T\"\n")
	assert.Contains(t, out, "[a](http://x \"T\")")
	assert.NotContains(t, out, "[1]: http://x")
}

func TestInlineLinksLeavesUnresolvedReferencesAlone(t *testing.T) {
	out := runOnly(t, "inline-links", "see [a][9]\n\n[1]: http://x\n")
	assert.Contains(t, out, "[a][9]")
	assert.Contains(t, out, "[1]: http://x")
}
