package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLiquidTagSpacing(t *testing.T) {
	out := runOnly(t, "liquid-tags", "{%if x%} and {{y}}\n")
	assert.Equal(t, "{% if x %} and {{ y }}\n", out)
}

func TestLiquidCollapsesExtraSpaces(t *testing.T) {
	out := runOnly(t, "liquid-tags", "{%  assign   a = 1  %}\n")
	assert.Equal(t, "{% assign a = 1 %}\n", out)
}

func TestLiquidLeavesFencedCodeAlone(t *testing.T) {
	input := "```\n{%if x%}\n```\n"
	out := runOnly(t, "liquid-tags", input)
	assert.Equal(t, input, out)
}
