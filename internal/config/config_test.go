package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "docs:\n  dir: manual\n"))
	require.NoError(t, err)
	require.Equal(t, "manual", cfg.Docs.Dir)
	require.Equal(t, "./site", cfg.Output.Directory)
	require.Equal(t, "manual", cfg.Snippets.Dir)
	require.Equal(t, 6, cfg.Toc.Depth)
	require.NotNil(t, cfg.Properties)
}

func TestLoad_Properties(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
docs:
  dir: docs
properties:
  github.base_url: https://github.com/acme/widget
  version: 0.2.1
`))
	require.NoError(t, err)
	require.Equal(t, "https://github.com/acme/widget", cfg.Properties["github.base_url"])
	require.Equal(t, "0.2.1", cfg.Properties["version"])
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCDIRECT_TEST_BASE", "https://github.com/acme/widgets")
	cfg, err := Load(writeConfig(t, `
properties:
  github.base_url: ${DOCDIRECT_TEST_BASE}
`))
	require.NoError(t, err)
	require.Equal(t, "https://github.com/acme/widgets", cfg.Properties["github.base_url"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "configuration file not found")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "docs: [unclosed"))
	require.Error(t, err)
}

func TestInit_WritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "docs", cfg.Docs.Dir)
	require.Equal(t, "0.1.0", cfg.Properties["version"])
}

func TestInit_RefusesOverwriteWithoutForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, Init(path, false))

	err := Init(path, false)
	require.Error(t, err)
	require.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(path, true))
}
