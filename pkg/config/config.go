// Package config resolves mdmerge settings from defaults, an optional YAML
// file and command-line flags.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"mdmerge/pkg/merge"
)

// Config is the resolved configuration of one invocation.
type Config struct {
	Pattern     string   `koanf:"pattern"`
	Exclude     []string `koanf:"exclude"`
	ExcludeFrom string   `koanf:"exclude_from"`
	Atomic      bool     `koanf:"atomic"`
	Quiet       bool     `koanf:"quiet"`
	Debug       bool     `koanf:"debug"`
}

// Defaults are the values used when neither the config file nor a flag sets a key.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"pattern":      merge.DefaultPattern,
		"exclude":      []string{},
		"exclude_from": "",
		"atomic":       false,
		"quiet":        false,
		"debug":        false,
	}
}

// Load builds the configuration.
// Precedence (highest to lowest): explicitly set flags > config file > defaults.
// cfgFile may be empty, in which case no file is read.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Unset flags would otherwise shadow the file with their defaults.
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Pattern == "" {
		cfg.Pattern = merge.DefaultPattern
	}
	return &cfg, nil
}

// Options converts the configuration into merge options for one run.
func (c *Config) Options(inputDir, outputPath string) merge.Options {
	return merge.Options{
		InputDir:    inputDir,
		OutputPath:  outputPath,
		Pattern:     c.Pattern,
		Exclude:     append([]string(nil), c.Exclude...),
		ExcludeFile: c.ExcludeFrom,
		Atomic:      c.Atomic,
	}
}
