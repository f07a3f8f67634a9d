package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harunnryd/skillmart/internal/catalog/client/clienttest"
	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/provider"
	"github.com/harunnryd/skillmart/internal/catalog/repository"
	skerrors "github.com/harunnryd/skillmart/internal/errors"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliSkills = `[
  {"id": "A", "name": "Lidar SLAM", "description": "Maps and localizes", "category": "navigation", "author": "Ada",
   "downloads": 1500, "rating": 4.8, "isOSS": true, "tags": ["slam", "lidar"], "lastUpdated": "2024-05-01"},
  {"id": "B", "name": "Camera Calibration", "description": "Intrinsics", "category": "vision", "author": "Grace",
   "downloads": 50, "rating": 3.0, "price": 25, "tags": ["camera"], "lastUpdated": "2024-06-10"},
  {"id": "C", "name": "Visual SLAM", "description": "Camera based mapping", "category": "navigation", "author": "Linus",
   "downloads": 900, "rating": 4.2, "tags": ["slam", "camera"], "lastUpdated": "2023-12-24"}
]`

const cliCategories = `[
  {"id": "navigation", "name": "Navigation", "icon": "🧭", "count": 2},
  {"id": "vision", "name": "Vision", "icon": "👁️", "count": 3}
]`

func setupCLI(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, provider.SkillsFile), []byte(cliSkills), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, provider.CategoriesFile), []byte(cliCategories), 0644))
	clienttest.Use(t, provider.NewJSONProvider(provider.NewFileSource(dir)))
	return dir
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		resetFlags(rootCmd)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags restores every flag to its default so package level commands
// can be executed again.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func skillIDs(t *testing.T, out string) []domain.SkillID {
	t.Helper()
	var skills []domain.Skill
	require.NoError(t, json.Unmarshal([]byte(out), &skills), out)
	ids := make([]domain.SkillID, len(skills))
	for i, s := range skills {
		ids[i] = s.ID
	}
	return ids
}

func TestSkillsListWhere(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "skills", "list", "-o", "json", "--where", `category=navigation sort=downloads:asc`)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"C", "A"}, skillIDs(t, out))

	out, err = runCLI(t, "skills", "list", "-o", "json", "--where", `q="camera based"`)
	require.NoError(t, err)
	assert.Equal(t, []domain.SkillID{"C"}, skillIDs(t, out))

	_, err = runCLI(t, "skills", "list", "-o", "json", "--where", "colour=red")
	assert.ErrorIs(t, err, skerrors.ErrInvalidInput)

	_, err = runCLI(t, "skills", "list", "-o", "json", "--where", "")
	require.NoError(t, err)
}

func TestSkillsNamedViews(t *testing.T) {
	setupCLI(t)

	tests := []struct {
		args []string
		want []domain.SkillID
	}{
		{args: []string{"skills", "featured", "--min-downloads", "1000"}, want: []domain.SkillID{"A"}},
		{args: []string{"skills", "popular", "--limit", "2"}, want: []domain.SkillID{"A", "C"}},
		{args: []string{"skills", "recent", "--limit", "1"}, want: []domain.SkillID{"B"}},
		{args: []string{"skills", "top-rated", "--limit", "10"}, want: []domain.SkillID{"A", "C", "B"}},
		{args: []string{"skills", "free"}, want: []domain.SkillID{"A", "C"}},
		{args: []string{"skills", "by-author", "Grace"}, want: []domain.SkillID{"B"}},
		{args: []string{"skills", "search", "camera"}, want: []domain.SkillID{"B", "C"}},
		{args: []string{"skills", "browse", "--tag", "slam", "--tag", "camera"}, want: []domain.SkillID{"C"}},
		{args: []string{"skills", "browse", "--sort", "recent"}, want: []domain.SkillID{"B", "A", "C"}},
		{args: []string{"skills", "browse", "--q", "grace"}, want: []domain.SkillID{"B"}},
		{args: []string{"skills", "browse", "--category", "navigation", "--sort", "rating"}, want: []domain.SkillID{"A", "C"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := runCLI(t, append(tt.args, "-o", "json")...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, skillIDs(t, out))
		})
	}
}

func TestSkillsShow(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "skills", "show", "B", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: Camera Calibration")

	out, err = runCLI(t, "skills", "show", "A", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Lidar SLAM")
	assert.Contains(t, out, "Open source")

	_, err = runCLI(t, "skills", "show", "Z", "-o", "json")
	assert.ErrorIs(t, err, skerrors.ErrNotFound)
}

func TestSkillsDownloadAndRate(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "skills", "download", "C", "-o", "json")
	require.NoError(t, err)
	var skill domain.Skill
	require.NoError(t, json.Unmarshal([]byte(out), &skill))
	assert.Equal(t, int64(901), skill.Downloads)

	out, err = runCLI(t, "skills", "rate", "C", "4.5", "-o", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &skill))
	assert.Equal(t, 4.5, skill.Rating)

	_, err = runCLI(t, "skills", "rate", "C", "9", "-o", "json")
	assert.ErrorIs(t, err, skerrors.ErrInvalidInput)

	_, err = runCLI(t, "skills", "download", "Z", "-o", "json")
	assert.ErrorIs(t, err, skerrors.ErrNotFound)
}

func TestCategoriesCommands(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "categories", "list", "--popular", "-o", "json")
	require.NoError(t, err)
	var categories []domain.Category
	require.NoError(t, json.Unmarshal([]byte(out), &categories))
	require.Len(t, categories, 2)
	assert.Equal(t, domain.CategoryID("vision"), categories[0].ID)

	out, err = runCLI(t, "categories", "drift", "-o", "json")
	require.NoError(t, err)
	var drift []repository.CountDrift
	require.NoError(t, json.Unmarshal([]byte(out), &drift))
	require.Len(t, drift, 1)
	assert.Equal(t, 3, drift[0].Stored)
	assert.Equal(t, 1, drift[0].Actual)

	out, err = runCLI(t, "categories", "show", "navigation", "-o", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "Navigation")
	assert.Contains(t, out, "Visual SLAM")

	_, err = runCLI(t, "categories", "show", "teleop", "-o", "json")
	assert.ErrorIs(t, err, skerrors.ErrNotFound)
}

func TestStatsCommand(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "stats", "-o", "json")
	require.NoError(t, err)
	var st repository.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &st))
	assert.Equal(t, 3, st.Skills)
	assert.Equal(t, int64(2450), st.TotalDownloads)
}

func TestInvalidOutputFormat(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "stats", "-o", "xml")
	assert.ErrorContains(t, err, "invalid output format")
}
