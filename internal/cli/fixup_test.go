package cli_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ttscoff/md-fixup/internal/cli"
)

// execute runs the root command with args, an isolated config home, and a
// captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := cli.NewRootCommand(cli.BuildInfo{Version: "test"})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const replacementsYAML = `replacements:
  - name: teh-typo
    pattern: '\bteh\b'
    replacement: 'the'
`

func TestReplacementsFileFlagEnablesReplacements(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.md", "teh word\n")
	repl := writeFile(t, dir, "repl.yaml", replacementsYAML)

	out, err := execute(t, "--replacements-file", repl, doc)
	require.NoError(t, err)
	assert.Equal(t, "the word\n", out)
}

func TestNoReplacementsOutranksReplacementsFile(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.md", "teh word\n")
	repl := writeFile(t, dir, "repl.yaml", replacementsYAML)

	out, err := execute(t, "--replacements-file", repl, "--no-replacements", doc)
	require.NoError(t, err)
	assert.Equal(t, "teh word\n", out)
}

func TestFixupWritesResultToStdout(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.md", "#Head\nbody\n")

	out, err := execute(t, doc)
	require.NoError(t, err)
	assert.Equal(t, "# Head\n\nbody\n", out)
}

func TestFixupSkipFlag(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.md", "#Head\n")

	out, err := execute(t, "--skip", "header-spacing", doc)
	require.NoError(t, err)
	assert.Equal(t, "#Head\n", out)
}

func TestFixupUnknownSkipTokenIsFatal(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.md", "x\n")

	_, err := execute(t, "--skip", "not-a-rule", doc)
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCodeFromError(err))
}

func TestFixupMissingInputIsIOError(t *testing.T) {
	_, err := execute(t, filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCodeFromError(err))
}

func TestFixupOverwriteRewritesFileInPlace(t *testing.T) {
	dir := t.TempDir()
	doc := writeFile(t, dir, "doc.md", "#Head\nbody\n")

	out, err := execute(t, "--overwrite", doc)
	require.NoError(t, err)
	assert.Empty(t, out)

	got, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, "# Head\n\nbody\n", string(got))
}
