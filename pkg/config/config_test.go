package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttscoff/md-fixup/pkg/config"
)

func TestFromYAMLParsesKnownKeys(t *testing.T) {
	cfg, err := config.FromYAML([]byte("width: 80\nrules:\n  skip: [wrap]\n"))
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, []string{"wrap"}, cfg.Rules.Skip)
}

func TestFromYAMLRejectsUnknownKeys(t *testing.T) {
	_, err := config.FromYAML([]byte("withd: 80\n"))
	require.Error(t, err, "a typo'd key must fail loudly, not be dropped")
}

func TestFromYAMLEmptyFileYieldsDefaults(t *testing.T) {
	cfg, err := config.FromYAML(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFromYAMLMalformedIsError(t *testing.T) {
	_, err := config.FromYAML([]byte("width: [unclosed\n"))
	require.Error(t, err)
}

func TestDefaultValues(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 60, cfg.Width)
	assert.False(t, cfg.Overwrite)
	assert.False(t, cfg.Replacements)
	assert.True(t, cfg.ListReset)
}

func TestMergeAppliesOnlySetOverrides(t *testing.T) {
	base := config.Default()
	base.Width = 80

	merged := config.Merge(base, config.Overrides{})
	assert.Equal(t, 80, merged.Width, "unset override must leave base value alone")
}

func TestMergeOverridesWidth(t *testing.T) {
	base := config.Default()
	merged := config.Merge(base, config.Overrides{WidthSet: true, Width: 100})
	assert.Equal(t, 100, merged.Width)
}

func TestMergeSkipAlwaysAppends(t *testing.T) {
	base := config.Default()
	base.Rules.Skip = []string{"1"}

	merged := config.Merge(base, config.Overrides{Skip: []string{"2"}})
	assert.Equal(t, []string{"1", "2"}, merged.Rules.Skip)
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := config.Default()
	base.Rules.Skip = []string{"1"}

	config.Merge(base, config.Overrides{Skip: []string{"2"}})
	assert.Equal(t, []string{"1"}, base.Rules.Skip, "Merge must not mutate its input")
}

func TestMergeOverwriteAndReplacements(t *testing.T) {
	base := config.Default()
	merged := config.Merge(base, config.Overrides{
		OverwriteSet:    true,
		Overwrite:       true,
		ReplacementsSet: true,
		Replacements:    true,
	})
	assert.True(t, merged.Overwrite)
	assert.True(t, merged.Replacements)
}
