// Package replacements implements the user-defined regex replacement
// engine: a YAML-loaded list of patterns applied to the document text,
// masking inert regions (fenced code, frontmatter) unless explicitly
// opted in.
package replacements

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Timing controls whether a replacement runs before or after the rule
// engine.
type Timing string

const (
	TimingBefore Timing = "before"
	TimingAfter  Timing = "after"
)

// Spec is one user-configured replacement, as loaded from YAML.
type Spec struct {
	Name          string `yaml:"name"`
	Pattern       string `yaml:"pattern"`
	Replacement   string `yaml:"replacement"`
	Timing        Timing `yaml:"timing"`
	InCodeBlocks  bool   `yaml:"in_code_blocks"`
	InFrontmatter bool   `yaml:"in_frontmatter"`
}

// Replacement is a Spec with its pattern compiled once at load time.
type Replacement struct {
	Spec
	re *regexp.Regexp
}

// CompileError describes a pattern that failed to compile; the file's
// other patterns still load.
type CompileError struct {
	Name string
	Err  error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("replacement %q: %v", e.Name, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// File is the on-disk YAML shape: a top-level list of replacements.
type File struct {
	Replacements []Spec `yaml:"replacements"`
}

// Load parses YAML replacement definitions, compiling each pattern. A
// pattern that fails to compile is returned in errs but does not prevent
// the remaining, valid replacements from loading.
func Load(data []byte) (compiled []*Replacement, errs []error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, []error{fmt.Errorf("parsing replacements file: %w", err)}
	}

	for _, spec := range file.Replacements {
		if spec.Timing == "" {
			spec.Timing = TimingAfter
		}
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			errs = append(errs, &CompileError{Name: spec.Name, Err: err})
			continue
		}
		compiled = append(compiled, &Replacement{Spec: spec, re: re})
	}
	return compiled, errs
}

// ForTiming filters a compiled replacement set to those matching timing.
func ForTiming(all []*Replacement, timing Timing) []*Replacement {
	var out []*Replacement
	for _, r := range all {
		if r.Timing == timing {
			out = append(out, r)
		}
	}
	return out
}
