package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mdmerge/pkg/merge"
)

// newFlags mirrors the flags registered by the root command.
func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.StringP("pattern", "p", merge.DefaultPattern, "")
	fs.StringSliceP("exclude", "e", nil, "")
	fs.String("exclude-from", "", "")
	fs.Bool("atomic", false, "")
	fs.BoolP("quiet", "q", false, "")
	fs.Bool("debug", false, "")
	return fs
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mdmerge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", newFlags())
	require.NoError(t, err)

	assert.Equal(t, merge.DefaultPattern, cfg.Pattern)
	assert.Empty(t, cfg.Exclude)
	assert.Empty(t, cfg.ExcludeFrom)
	assert.False(t, cfg.Atomic)
	assert.False(t, cfg.Quiet)
	assert.False(t, cfg.Debug)
}

func TestLoad_NilFlags(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, merge.DefaultPattern, cfg.Pattern)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeConfig(t, `
pattern: "*.txt"
exclude:
  - "draft-*"
  - "README.md"
atomic: true
`)

	cfg, err := Load(path, newFlags())
	require.NoError(t, err)

	assert.Equal(t, "*.txt", cfg.Pattern)
	assert.Equal(t, []string{"draft-*", "README.md"}, cfg.Exclude)
	assert.True(t, cfg.Atomic)
	assert.False(t, cfg.Quiet)
}

func TestLoad_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, `
pattern: "*.txt"
quiet: false
`)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--pattern", "*.markdown", "-q", "--exclude", "a.md", "--exclude-from", "ignore.txt"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)

	assert.Equal(t, "*.markdown", cfg.Pattern)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, []string{"a.md"}, cfg.Exclude)
	assert.Equal(t, "ignore.txt", cfg.ExcludeFrom)
}

func TestLoad_UnsetFlagsDoNotShadowFile(t *testing.T) {
	path := writeConfig(t, `pattern: "*.rst"`)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"--debug"}))

	cfg, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, "*.rst", cfg.Pattern)
	assert.True(t, cfg.Debug)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), newFlags())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_EmptyPatternFallsBack(t *testing.T) {
	path := writeConfig(t, `pattern: ""`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, merge.DefaultPattern, cfg.Pattern)
}

func TestConfig_Options(t *testing.T) {
	cfg := &Config{
		Pattern:     "*.txt",
		Exclude:     []string{"skip.txt"},
		ExcludeFrom: "ignore",
		Atomic:      true,
	}

	opts := cfg.Options("in", "out.txt")
	assert.Equal(t, merge.Options{
		InputDir:    "in",
		OutputPath:  "out.txt",
		Pattern:     "*.txt",
		Exclude:     []string{"skip.txt"},
		ExcludeFile: "ignore",
		Atomic:      true,
	}, opts)

	opts.Exclude[0] = "changed"
	assert.Equal(t, "skip.txt", cfg.Exclude[0])
}
