// Package config defines md-fixup's configuration file shape: a pure data
// structure with no dependency on the CLI or the rule engine.
package config

// RulesConfig holds the rules.skip / rules.include keys.
type RulesConfig struct {
	// Skip lists rule IDs/keywords/group aliases to disable, or the
	// literal "all".
	Skip []string `yaml:"skip"`

	// Include re-enables specific rules when Skip is "all".
	Include []string `yaml:"include"`
}

// Config is the root configuration structure loaded from
// $XDG_CONFIG_HOME/md-fixup/config.yaml.
type Config struct {
	// Width is rule 14's wrap width; 0 disables wrapping.
	Width int `yaml:"width"`

	// Overwrite writes results back to each input file atomically instead
	// of to stdout.
	Overwrite bool `yaml:"overwrite"`

	// Replacements enables the user-defined replacements engine.
	Replacements bool `yaml:"replacements"`

	// ReplacementsFile is the path to the replacements YAML file.
	ReplacementsFile string `yaml:"replacements_file"`

	// ListReset controls rule 27: true forces every ordered list to
	// restart at 1, false preserves each list's own starting number.
	ListReset bool `yaml:"list_reset"`

	// Rules holds the skip/include lists.
	Rules RulesConfig `yaml:"rules"`
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Width:        60,
		Overwrite:    false,
		Replacements: false,
		ListReset:    true,
	}
}

// Overrides layers CLI-provided values onto the file-loaded config. A zero
// value on the override side means "not set" and leaves the base value
// alone, except Skip, which always merges: file skips plus CLI skips.
type Overrides struct {
	WidthSet         bool
	Width            int
	OverwriteSet     bool
	Overwrite        bool
	ReplacementsSet  bool
	Replacements     bool
	ReplacementsFile string
	Skip             []string
}

// Merge applies Overrides onto a copy of base and returns the result.
func Merge(base *Config, o Overrides) *Config {
	merged := *base
	if o.WidthSet {
		merged.Width = o.Width
	}
	if o.OverwriteSet {
		merged.Overwrite = o.Overwrite
	}
	if o.ReplacementsSet {
		merged.Replacements = o.Replacements
	}
	if o.ReplacementsFile != "" {
		merged.ReplacementsFile = o.ReplacementsFile
	}
	if len(o.Skip) > 0 {
		merged.Rules.Skip = append(append([]string{}, merged.Rules.Skip...), o.Skip...)
	}
	return &merged
}
