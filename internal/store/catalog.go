package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/provider"

	"github.com/natefinch/atomic"
)

// CatalogStore writes catalog collections back into a data directory. Every
// write holds the directory lock and replaces the file with an atomic rename,
// so readers see either the old or the new document.
type CatalogStore struct {
	dir  string
	lock *FileLockConfig
}

var _ provider.SkillStore = (*CatalogStore)(nil)

func NewCatalogStore(dir string, lock *FileLockConfig) *CatalogStore {
	if lock == nil {
		lock = DefaultFileLockConfig()
	}
	return &CatalogStore{dir: dir, lock: lock}
}

func (s *CatalogStore) Dir() string {
	return s.dir
}

func (s *CatalogStore) SaveSkills(ctx context.Context, skills []domain.Skill) error {
	if skills == nil {
		skills = []domain.Skill{}
	}
	return s.write(ctx, provider.SkillsFile, skills)
}

func (s *CatalogStore) SaveCategories(ctx context.Context, categories []domain.Category) error {
	if categories == nil {
		categories = []domain.Category{}
	}
	return s.write(ctx, provider.CategoriesFile, categories)
}

// EnsureDataset creates the data directory and an empty collection for every
// file that does not exist yet. Existing files are left untouched. It returns
// the paths it created.
func (s *CatalogStore) EnsureDataset(ctx context.Context) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	var created []string
	for _, name := range []string{provider.SkillsFile, provider.CategoriesFile} {
		path := filepath.Join(s.dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return created, fmt.Errorf("stat %s: %w", path, err)
		}

		if err := s.write(ctx, name, []struct{}{}); err != nil {
			return created, err
		}
		created = append(created, path)
	}
	return created, nil
}

func (s *CatalogStore) write(ctx context.Context, name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	lock, err := NewFileLock(ctx, s.dir, s.lock)
	if err != nil {
		return err
	}
	defer lock.Unlock()

	path := filepath.Join(s.dir, name)
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	slog.Debug("Catalog collection written", "path", path, "bytes", len(data))
	return nil
}
