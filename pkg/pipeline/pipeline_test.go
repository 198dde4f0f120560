package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttscoff/md-fixup/pkg/pipeline"
	"github.com/ttscoff/md-fixup/pkg/rules"
)

func run(t *testing.T, input string, opts rules.Options) string {
	return runSkipping(t, input, opts)
}

func runSkipping(t *testing.T, input string, opts rules.Options, skipTokens ...string) string {
	t.Helper()
	registry := rules.NewDefaultRegistry()
	driver := pipeline.NewDriver(registry, nil)
	skip, err := rules.Resolve(registry, nil, nil, skipTokens)
	require.NoError(t, err)
	result, err := driver.Run(input, skip, opts)
	require.NoError(t, err)
	return result.Doc.String()
}

func TestEndToEndScenarios(t *testing.T) {
	t.Run("headline spacing and blank line", func(t *testing.T) {
		out := run(t, "#Head\nbody", rules.DefaultOptions())
		assert.Equal(t, "# Head\n\nbody\n", out)
	})

	t.Run("task checkbox and bullet marker", func(t *testing.T) {
		out := run(t, "- [X] a\n*   [ ] b", rules.DefaultOptions())
		assert.Equal(t, "- [x] a\n- [ ] b\n", out)
	})

	t.Run("table cells align to column widths", func(t *testing.T) {
		out := run(t, "| a|b |\n|---|---|\n| cc|d|", rules.DefaultOptions())
		assert.Equal(t, "| a   | b   |\n| --- | --- |\n| cc  | d   |\n", out)
	})

	t.Run("inline link becomes a reference link with the definition at the end", func(t *testing.T) {
		out := runSkipping(t, "Visit http://x.  See\n[a](http://x).\n", rules.DefaultOptions(), "inline-links")
		assert.Equal(t, "Visit http://x. See [a][1].\n\n[1]: http://x\n", out)
	})

	t.Run("display math gets surrounding blanks, currency survives", func(t *testing.T) {
		out := run(t, "before text\n$$\nx^2\n$$\nafter costs $.02 ok\n", rules.DefaultOptions())
		assert.Equal(t, "before text\n\n$$\nx^2\n$$\n\nafter costs $.02 ok\n", out)
	})

	t.Run("emoji fixed in prose, left alone in fenced code", func(t *testing.T) {
		out := run(t, "It's :smilie: time\n\n```\n:smilie:\n```\n", rules.DefaultOptions())
		assert.Contains(t, out, ":smiley: time")
		assert.Contains(t, out, "```\n:smilie:\n```")
	})
}

// TestIdempotence: running the pipeline on its own output changes nothing.
func TestIdempotence(t *testing.T) {
	docs := []string{
		"#Head\nbody",
		"- [X] a\n*   [ ] b",
		"| a|b |\n|---|---|\n| cc|d|",
		"$$\nx^2\n$$\nmore text\n",
		"inline $$a+b$$ math\n",
		"> quote\ncontinuation\n",
		"_file_name_.md and _emphasis_ here\n",
		"1. one\n\n2. two\n\n3. three\n",
	}
	opts := rules.DefaultOptions()
	for _, d := range docs {
		first := run(t, d, opts)
		second := run(t, first, opts)
		assert.Equal(t, first, second, "not idempotent for input %q", d)
	}
}

// TestTerminator: output ends with exactly one LF and no extra trailing
// blank lines.
func TestTerminator(t *testing.T) {
	out := run(t, "line one\n\n\n\n", rules.DefaultOptions())
	assert.Equal(t, "line one\n", out)
}

// TestCodeBlockPreservation asserts fenced code content survives the
// pipeline verbatim aside from line-ending/final-newline normalization.
func TestCodeBlockPreservation(t *testing.T) {
	input := "prose\n```go\nfunc  f( )   {}\n```\nmore prose\n"
	out := run(t, input, rules.DefaultOptions())
	assert.Contains(t, out, "func  f( )   {}")
}

// TestFrontmatterPreservation asserts YAML frontmatter is byte-identical
// in the output.
func TestFrontmatterPreservation(t *testing.T) {
	input := "---\ntitle:   “odd”   spacing\n---\n\nbody\n"
	out := run(t, input, rules.DefaultOptions())
	assert.Contains(t, out, "title:   “odd”   spacing")
}

// TestSkipComposition asserts a skipped rule's effect is absent from the
// output while the rest of the pipeline still runs.
func TestSkipComposition(t *testing.T) {
	input := "#Head\nbody"

	withoutSkip := run(t, input, rules.DefaultOptions())
	withSkip := runSkipping(t, input, rules.DefaultOptions(), "header-spacing")
	assert.NotEqual(t, withoutSkip, withSkip)
	assert.Contains(t, withSkip, "#Head")
}

// TestWidthBound: every prose line in a wrapped document is at most W
// characters, unless it is a single overlong token.
func TestWidthBound(t *testing.T) {
	input := "This is a long sentence that should wrap across several lines because it exceeds the configured width by a comfortable margin.\n"
	opts := rules.Options{Width: 20, ListReset: true}
	out := run(t, input, opts)

	for _, line := range splitLines(out) {
		if line == "" {
			continue
		}
		if len(line) > 20 {
			assert.False(t, containsSpace(line), "line exceeds width and is not a single token: %q", line)
		}
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}

// TestRule27Contract: with list-reset on, every ordered list restarts at
// 1; with it off, the input's starting number is kept and subsequent
// items increment from it.
func TestRule27Contract(t *testing.T) {
	input := "5. five\n6. six\n7. seven\n"

	resetOn := run(t, input, rules.Options{Width: 60, ListReset: true})
	assert.Equal(t, "1. five\n2. six\n3. seven\n", resetOn)

	resetOff := run(t, input, rules.Options{Width: 60, ListReset: false})
	assert.Equal(t, "5. five\n6. six\n7. seven\n", resetOff)
}

// TestListResetSeparateLists: two ordered lists separated by prose each
// restart at 1 instead of continuing the other's count.
func TestListResetSeparateLists(t *testing.T) {
	input := "1. a\n2. b\n\nprose between\n\n1. c\n2. d\n"
	out := run(t, input, rules.Options{Width: 60, ListReset: true})
	assert.Equal(t, "1. a\n2. b\n\nprose between\n\n1. c\n2. d\n", out)
}
