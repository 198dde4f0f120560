package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeaderSpacingNormalizesHashes(t *testing.T) {
	out := runOnly(t, "header-spacing", "##   Title   ##\n")
	assert.Equal(t, "## Title\n", out)
}

func TestHeaderSpacingNoSpaceAtAll(t *testing.T) {
	out := runOnly(t, "header-spacing", "#Head\n")
	assert.Equal(t, "# Head\n", out)
}

func TestHeaderNewlineInsertsBlank(t *testing.T) {
	out := runOnly(t, "header-newline", "# Title\nbody\n")
	assert.Equal(t, "# Title\n\nbody\n", out)
}

func TestHeaderNewlineLeavesSetextAlone(t *testing.T) {
	out := runOnly(t, "header-newline", "Title\n=====\nbody\n")
	assert.Equal(t, "Title\n=====\nbody\n", out)
}

func TestRuleBeforeAndAfterHorizontalRule(t *testing.T) {
	out := runOnly(t, "rule-before", "para\n***\nmore\n")
	assert.Equal(t, "para\n\n***\nmore\n", out)

	out = runOnly(t, "rule-after", "para\n\n***\nmore\n")
	assert.Equal(t, "para\n\n***\n\nmore\n", out)
}
