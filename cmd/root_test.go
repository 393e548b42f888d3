package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdmerge/pkg/merge"
	"mdmerge/pkg/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRoot_Merge(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("B"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("C"), 0o644))
	out := filepath.Join(t.TempDir(), "merged.md")

	stdout, err := execute(t, dir, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "A"+merge.Separator+"B", string(data))
	assert.Contains(t, stdout, "Found 2 files to merge")
	assert.Contains(t, stdout, "Processing a.md")
	assert.Contains(t, stdout, "Successfully merged files into "+out)
}

func TestRoot_PatternAndQuiet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("A"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("C"), 0o644))
	out := filepath.Join(t.TempDir(), "merged.txt")

	stdout, err := execute(t, dir, out, "--pattern", "*.txt", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "C", string(data))
}

func TestRoot_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "skip.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(strings.ToUpper(name[:1])), 0o644))
	}
	cfgPath := filepath.Join(t.TempDir(), "mdmerge.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("exclude:\n  - skip.md\natomic: true\n"), 0o644))
	out := filepath.Join(t.TempDir(), "merged.md")

	_, err := execute(t, dir, out, "--config", cfgPath)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "A"+merge.Separator+"B", string(data))
}

func TestRoot_NoMatchesSucceeds(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(t.TempDir(), "merged.md")

	stdout, err := execute(t, dir, out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No files found in "+dir)
	assert.NoFileExists(t, out)
}

func TestRoot_MissingInputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "merged.md")

	_, err := execute(t, filepath.Join(t.TempDir(), "missing"), out)
	require.Error(t, err)
	assert.ErrorIs(t, err, merge.ErrNotFound)
	assert.NoFileExists(t, out)
}

func TestRoot_RequiresTwoArgs(t *testing.T) {
	_, err := execute(t, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 2 arg(s)")
}

func TestVersionCmd(t *testing.T) {
	stdout, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, version.Version+"\n", stdout)

	stdout, err = execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "mdmerge version "+version.Version))
}
