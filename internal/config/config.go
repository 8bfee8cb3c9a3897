/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Package config loads the fixtree CLI's configuration: default schema
 * path, output format, and the JSON arrays switch. The input file is
 * always the command's positional argument and has no config setting.
 * Precedence: flags > environment variables > config file > defaults.
 */

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the CLI's configuration.
type Config struct {
	Schema SchemaConfig `toml:"schema"`
	Output OutputConfig `toml:"output"`
}

// SchemaConfig holds the default Orchestra schema file.
type SchemaConfig struct {
	Path string `toml:"path"`
}

// OutputConfig holds default rendering options.
type OutputConfig struct {
	// Format is "json" or "text" (see internal/dump).
	Format string `toml:"format"`
	// Arrays switches Message.ToJSON to Message.ToJSONArrays for
	// duplicate scalar tags (spec.md §9, "Duplicate scalar tags").
	Arrays bool `toml:"arrays"`
}

// Load builds a Config from defaults, an optional TOML file, and
// environment variables, in that order (later layers win). configPath
// is the explicit --config flag value, or "" to use the default search
// order.
func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Output: OutputConfig{
			Format: "json",
		},
	}

	if err := cfg.loadFile(configPath); err != nil {
		return nil, err
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(configPath string) error {
	path := resolveConfigPath(configPath)
	if path == "" {
		return nil
	}

	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	return nil
}

// resolveConfigPath returns the config file to read, or "" if none is
// found (the config file is optional).
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv("FIXTREE_CONFIG"); p != "" {
		return p
	}
	if _, err := os.Stat("fixtree.toml"); err == nil {
		return "fixtree.toml"
	}
	return ""
}

func (c *Config) applyEnv() {
	envOverride("FIXTREE_SCHEMA", &c.Schema.Path)
	envOverride("FIXTREE_FORMAT", &c.Output.Format)
	if v := os.Getenv("FIXTREE_ARRAYS"); v != "" {
		c.Output.Arrays = v == "true" || v == "1"
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case "json", "text":
	default:
		return fmt.Errorf("config: invalid output format %q (must be \"json\" or \"text\")", c.Output.Format)
	}
	return nil
}

func envOverride(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
