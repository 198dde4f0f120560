package rules_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttscoff/md-fixup/pkg/rules"
)

func TestResolveNumericID(t *testing.T) {
	skip, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"1"}, nil, nil)
	require.NoError(t, err)
	assert.True(t, skip.Skipped(1))
	assert.False(t, skip.Skipped(2))
}

func TestResolveKeyword(t *testing.T) {
	skip, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"header-spacing"}, nil, nil)
	require.NoError(t, err)
	rule, ok := rules.NewDefaultRegistry().ByKeyword("header-spacing")
	require.True(t, ok)
	assert.True(t, skip.Skipped(rule.ID))
}

func TestResolveGroupAlias(t *testing.T) {
	skip, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"code-block-newlines"}, nil, nil)
	require.NoError(t, err)
	assert.True(t, skip.Skipped(6))
	assert.True(t, skip.Skipped(7))
}

func TestResolveTypographySubSkips(t *testing.T) {
	skip, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"em-dash"}, nil, nil)
	require.NoError(t, err)
	assert.True(t, skip.DisableEmDash())
	assert.False(t, skip.DisableGuillemet())

	// A typography sub-skip never disables a numeric rule ID outright.
	typography, ok := rules.NewDefaultRegistry().ByKeyword("typography")
	if ok {
		assert.False(t, skip.Skipped(typography.ID))
	}
}

func TestResolveAllWithInclude(t *testing.T) {
	skip, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"all"}, []string{"1"}, nil)
	require.NoError(t, err)
	assert.True(t, skip.Skipped(2))
	assert.False(t, skip.Skipped(1), "included rule should be re-enabled")
}

func TestResolveMergesFileAndCLISkip(t *testing.T) {
	skip, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"1"}, nil, []string{"2"})
	require.NoError(t, err)
	assert.True(t, skip.Skipped(1))
	assert.True(t, skip.Skipped(2))
}

func TestResolveUnknownNumericIDIsInvalid(t *testing.T) {
	_, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"999"}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rules.ErrInvalidRule))
}

func TestResolveUnknownKeywordIsInvalid(t *testing.T) {
	_, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"not-a-real-rule"}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rules.ErrInvalidRule))
}

func TestSkippedOnNilSkipSetIsFalse(t *testing.T) {
	var skip *rules.SkipSet
	assert.False(t, skip.Skipped(1))
	assert.False(t, skip.DisableEmDash())
	assert.False(t, skip.DisableGuillemet())
}

func TestResolveBlankTokensIgnored(t *testing.T) {
	skip, err := rules.Resolve(rules.NewDefaultRegistry(), []string{"", "  "}, nil, nil)
	require.NoError(t, err)
	assert.False(t, skip.Skipped(1))
}
