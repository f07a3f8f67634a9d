package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harunnryd/skillmart/internal/catalog/provider"
	"github.com/harunnryd/skillmart/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestConfigInitCmd(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dataDir := filepath.Join(t.TempDir(), "catalog")

	out, err := runCLI(t, "config", "init", "--catalog.data_dir", dataDir)
	require.NoError(t, err)

	configPath := filepath.Join(home, ".skillmart", "config.yaml")
	assert.FileExists(t, configPath)
	assert.Contains(t, out, "Initialized config")
	assert.FileExists(t, filepath.Join(dataDir, provider.SkillsFile))
	assert.FileExists(t, filepath.Join(dataDir, provider.CategoriesFile))

	data, err := os.ReadFile(filepath.Join(dataDir, provider.SkillsFile))
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))

	out, err = runCLI(t, "config", "init", "--catalog.data_dir", dataDir)
	require.NoError(t, err, "init succeeds when config exists")
	assert.Contains(t, out, "Config already exists")
	assert.Contains(t, out, "Dataset already present")
}

func TestConfigViewCmd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SKILLMART_CATALOG_CACHE_TTL", "5m")

	out, err := runCLI(t, "config", "view", "--catalog.data_dir", "/srv/skillmart")
	require.NoError(t, err)

	var view struct {
		Env     string         `yaml:"env"`
		Server  map[string]any `yaml:"server"`
		Catalog map[string]any `yaml:"catalog"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, "development", view.Env)
	assert.Equal(t, "5m", view.Catalog["cache_ttl"])
	assert.Equal(t, "/srv/skillmart", view.Catalog["data_dir"])
	assert.Equal(t, 8080, view.Server["port"])
}

func TestEmbeddedConfigTemplateParses(t *testing.T) {
	var parsed map[string]any
	require.NoError(t, yaml.Unmarshal(embeddedDefaultConfig, &parsed))
	assert.Contains(t, parsed, "catalog")
	assert.Contains(t, parsed, "server")
}

func TestInitTemplateFollowsProductionEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	configDir := filepath.Join(home, ".skillmart")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), embeddedDefaultConfig, 0644))

	t.Setenv("SKILLMART_ENV", "production")
	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Catalog.IncludeSamples)

	t.Setenv("SKILLMART_ENV", "")
	cfg, err = config.Load(nil)
	require.NoError(t, err)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.Catalog.IncludeSamples)
}
