package provider

import (
	"context"
	"os"
	"path/filepath"
)

const (
	SkillsFile     = "skills.json"
	CategoriesFile = "categories.json"
)

// Source reads a whole named collection from the backing store.
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Path(name string) string
}

type FileSource struct {
	Dir string
}

func NewFileSource(dir string) *FileSource {
	return &FileSource{Dir: dir}
}

func (s *FileSource) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.ReadFile(s.Path(name))
}

func (s *FileSource) Path(name string) string {
	return filepath.Join(s.Dir, name)
}
