package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineEndingsNormalizeToLF(t *testing.T) {
	out := runOnly(t, "line-endings", "a\r\nb\rc\n")
	assert.Equal(t, "a\nb\nc\n", out)
}

func TestTrailingTrimsSpacesAndTabs(t *testing.T) {
	out := runOnly(t, "trailing", "x \t\ny\n")
	assert.Equal(t, "x\ny\n", out)
}

func TestTrailingPreservesHardBreak(t *testing.T) {
	out := runOnly(t, "trailing", "x  \ny\n")
	assert.Equal(t, "x  \ny\n", out)
}

func TestTrailingThreeSpacesIsNotAHardBreak(t *testing.T) {
	out := runOnly(t, "trailing", "x   \ny\n")
	assert.Equal(t, "x\ny\n", out)
}

func TestTrailingLeavesFencedCodeAlone(t *testing.T) {
	out := runOnly(t, "trailing", "```\ncode  \n```\n")
	assert.Contains(t, out, "code  \n")
}

func TestBlankLinesCollapseRuns(t *testing.T) {
	out := runOnly(t, "blank-lines", "a\n\n\n\nb\n")
	assert.Equal(t, "a\n\nb\n", out)
}

func TestBlankLinesPreserveFencedCode(t *testing.T) {
	out := runOnly(t, "blank-lines", "```\na\n\n\nb\n```\n")
	assert.Contains(t, out, "a\n\n\nb")
}

func TestBlankLinesJoinDefinitionItems(t *testing.T) {
	out := runOnly(t, "blank-lines", ": def one\n\n: def two\n")
	assert.Equal(t, ": def one\n: def two\n", out)
}

func TestEndNewlineDropsTrailingBlanks(t *testing.T) {
	out := runOnly(t, "end-newline", "a\n\n\n")
	assert.Equal(t, "a\n", out)
}
