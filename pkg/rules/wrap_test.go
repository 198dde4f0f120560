package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/rules"
)

func runWrap(t *testing.T, input string, width int) string {
	t.Helper()
	registry := rules.NewDefaultRegistry()
	skip, err := rules.Resolve(registry, []string{"all"}, []string{"wrap"}, nil)
	require.NoError(t, err)
	engine := rules.NewEngine(registry)
	out, err := engine.Run(document.Parse(input), skip, rules.Options{Width: width, ListReset: true})
	require.NoError(t, err)
	return out.String()
}

func TestWrapGreedyPacking(t *testing.T) {
	out := runWrap(t, "one two three four five\n", 10)
	assert.Equal(t, "one two\nthree four\nfive\n", out)
}

func TestWrapZeroWidthDisables(t *testing.T) {
	input := "a very long line that would certainly wrap at any reasonable width setting\n"
	out := runWrap(t, input, 0)
	assert.Equal(t, input, out)
}

func TestWrapKeepsCodeSpanWhole(t *testing.T) {
	out := runWrap(t, "x `a b c d e f` y\n", 5)
	assert.Contains(t, out, "`a b c d e f`\n")
}

func TestWrapKeepsLinkAndGluedPunctuationWhole(t *testing.T) {
	out := runWrap(t, "see [a](http://example.com).\n", 10)
	assert.Contains(t, out, "[a](http://example.com).\n")
}

func TestWrapOverlongTokenStandsAlone(t *testing.T) {
	out := runWrap(t, "a supercalifragilisticexpialidocious b\n", 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "supercalifragilisticexpialidocious", lines[1])
}

func TestWrapPreservesHardBreaks(t *testing.T) {
	out := runWrap(t, "a b  \nc d\n", 60)
	assert.Equal(t, "a b  \nc d\n", out)
}

func TestWrapLeavesFencedCodeAlone(t *testing.T) {
	input := "```\na line that is much longer than the configured wrap width here\n```\n"
	out := runWrap(t, input, 10)
	assert.Equal(t, input, out)
}
