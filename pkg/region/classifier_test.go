package region_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ttscoff/md-fixup/pkg/document"
	"github.com/ttscoff/md-fixup/pkg/region"
)

func classify(t *testing.T, text string) *region.Map {
	t.Helper()
	return region.Classify(document.Parse(text))
}

func TestClassifyFrontmatter(t *testing.T) {
	rmap := classify(t, "---\ntitle: x\n---\nbody\n")
	assert.Equal(t, region.Frontmatter, rmap.Lines[0].Kind)
	assert.Equal(t, region.Frontmatter, rmap.Lines[1].Kind)
	assert.Equal(t, region.Frontmatter, rmap.Lines[2].Kind)
	assert.Equal(t, region.Prose, rmap.Lines[3].Kind)
}

func TestClassifyFencedCodeWithLanguage(t *testing.T) {
	rmap := classify(t, "prose\n```go\ncode\n```\nmore\n")
	assert.Equal(t, region.FencedCode, rmap.Lines[1].Kind)
	assert.Equal(t, "go", rmap.Lines[1].FenceLang)
	assert.Equal(t, region.FencedCode, rmap.Lines[2].Kind)
	assert.Equal(t, region.FencedCode, rmap.Lines[3].Kind)
	assert.Equal(t, region.Prose, rmap.Lines[4].Kind)
}

func TestClassifyUnclosedFenceRunsToEOF(t *testing.T) {
	rmap := classify(t, "```go\ncode\nmore code\n")
	for i := 0; i < 3; i++ {
		assert.Equal(t, region.FencedCode, rmap.Lines[i].Kind, "line %d", i)
	}
}

func TestClassifyDisplayMathBlock(t *testing.T) {
	rmap := classify(t, "$$\nx^2\n$$\ntext\n")
	assert.Equal(t, region.DisplayMath, rmap.Lines[0].Kind)
	assert.Equal(t, region.DisplayMath, rmap.Lines[1].Kind)
	assert.Equal(t, region.DisplayMath, rmap.Lines[2].Kind)
	assert.Equal(t, region.Prose, rmap.Lines[3].Kind)
}

func TestClassifyInlineDisplayMath(t *testing.T) {
	rmap := classify(t, "$$x^2$$\n")
	assert.Equal(t, region.DisplayMath, rmap.Lines[0].Kind)
}

func TestClassifyTableWithHeaderAndSeparator(t *testing.T) {
	rmap := classify(t, "| a | b |\n|---|---|\n| 1 | 2 |\n")
	assert.Equal(t, region.Table, rmap.Lines[0].Kind)
	assert.Equal(t, region.TableSeparator, rmap.Lines[1].Kind)
	assert.Equal(t, region.Table, rmap.Lines[2].Kind)
}

func TestClassifyOrderedList(t *testing.T) {
	rmap := classify(t, "5. five\n6. six\n")
	info := rmap.Lines[0]
	assert.Equal(t, region.List, info.Kind)
	assert.True(t, info.ListOrdered)
	assert.Equal(t, 5, info.ListNumber)
	assert.Equal(t, 0, info.ListDepth)
}

func TestClassifyNestedUnorderedList(t *testing.T) {
	rmap := classify(t, "- top\n    - nested\n")
	assert.Equal(t, 0, rmap.Lines[0].ListDepth)
	assert.False(t, rmap.Lines[0].ListOrdered)
	assert.Equal(t, 1, rmap.Lines[1].ListDepth)
}

func TestClassifyBlockquoteDepth(t *testing.T) {
	rmap := classify(t, "> > > nested\n")
	assert.Equal(t, region.Blockquote, rmap.Lines[0].Kind)
	assert.Equal(t, 3, rmap.Lines[0].BlockquoteDepth)
}

func TestClassifyDashUnderlineAfterProseIsSetext(t *testing.T) {
	rmap := classify(t, "text\n---\nmore\n")
	// "---" directly after non-blank prose is ambiguous with setext; here
	// it is consumed as a setext underline for "text" instead of an HR.
	assert.Equal(t, region.SetextHeadline, rmap.Lines[0].Kind)
	assert.Equal(t, region.SetextHeadline, rmap.Lines[1].Kind)
}

func TestClassifyHorizontalRuleStandalone(t *testing.T) {
	rmap := classify(t, "para one\n\n***\n\npara two\n")
	assert.Equal(t, region.HorizontalRule, rmap.Lines[2].Kind)
}

func TestClassifyATXHeadline(t *testing.T) {
	rmap := classify(t, "## Section\nbody\n")
	assert.Equal(t, region.Headline, rmap.Lines[0].Kind)
	assert.Equal(t, region.Prose, rmap.Lines[1].Kind)
}

func TestClassifyBlankLine(t *testing.T) {
	rmap := classify(t, "a\n\nb\n")
	assert.Equal(t, region.Blank, rmap.Lines[1].Kind)
}

func TestInCodeSpanTracksBacktickRanges(t *testing.T) {
	rmap := classify(t, "use `code` here\n")
	// "use " is 4 bytes, so the span starts at byte 4.
	assert.True(t, rmap.InCodeSpan(1, 5))
	assert.False(t, rmap.InCodeSpan(1, 0))
}

func TestKindAtIsOneBasedAndBoundsSafe(t *testing.T) {
	rmap := classify(t, "## Head\nbody\n")
	assert.Equal(t, region.Headline, rmap.KindAt(1))
	assert.Equal(t, region.Prose, rmap.KindAt(0))
	assert.Equal(t, region.Prose, rmap.KindAt(99))
}

func TestIsInert(t *testing.T) {
	assert.True(t, region.Frontmatter.IsInert())
	assert.True(t, region.FencedCode.IsInert())
	assert.True(t, region.DisplayMath.IsInert())
	assert.False(t, region.Prose.IsInert())
	assert.False(t, region.List.IsInert())
}
