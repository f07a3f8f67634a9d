package components

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harunnryd/skillmart/internal/catalog/provider"
	"github.com/harunnryd/skillmart/internal/config"

	"github.com/stretchr/testify/require"
)

const testSkills = `[
  {"id": "A", "name": "Lidar SLAM", "category": "nav", "downloads": 10, "rating": 4.8},
  {"id": "B", "name": "Camera Calibration", "category": "vision", "downloads": 5, "rating": 3.0}
]`

const testCategories = `[{"id": "nav", "name": "Navigation", "icon": "🧭", "count": 1}]`

func writeDataset(t *testing.T, skills, categories string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, provider.SkillsFile), []byte(skills), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, provider.CategoriesFile), []byte(categories), 0644))
	return dir
}

func testConfig(dir string) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            0,
			ShutdownTimeout: "2s",
			CORSOrigins:     []string{"*"},
		},
		Catalog: config.CatalogConfig{
			Provider: "json",
			DataDir:  dir,
			CacheTTL: "1m",
		},
	}
}
