/* fixtree - FIX Orchestra driven tag-value structural parser
 *
 * Copyright (C) 2026 and up by the fixtree authors
 * See LICENSE for license terms and conditions
 *
 * Config tests
 */

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixorch/fixtree/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "", cfg.Schema.Path)
}

func TestLoadFromExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[schema]
path = "orchestra.xml"

[output]
format = "text"
arrays = true
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "orchestra.xml", cfg.Schema.Path)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.True(t, cfg.Output.Arrays)
}

func TestLoadRejectsInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[output]
format = "yaml"
`), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtree.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[output]
format = "json"
`), 0o644))

	t.Setenv("FIXTREE_FORMAT", "text")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output.Format)
}
