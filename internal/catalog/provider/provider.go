// Package provider defines the catalog store abstraction and its JSON file
// implementation. Callers depend on Provider; concrete kinds are selected by
// the client package.
package provider

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import (
	"context"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
)

type Kind string

const (
	KindJSON Kind = "json"
)

// Provider is the only entry point to raw catalog data. Every returned slice
// is a fresh copy; mutating it never affects the provider.
type Provider interface {
	LoadSkills(ctx context.Context) ([]domain.Skill, error)
	GetSkills(ctx context.Context, filters *SkillFilters, sort *SortOptions) ([]domain.Skill, error)
	GetSkillByID(ctx context.Context, id domain.SkillID) (domain.Skill, bool, error)
	GetSkillsByCategory(ctx context.Context, categoryID domain.CategoryID) ([]domain.Skill, error)
	GetSkillsByTags(ctx context.Context, tags []string) ([]domain.Skill, error)
	SearchSkills(ctx context.Context, query string) ([]domain.Skill, error)
	GetRecentlyUpdatedSkills(ctx context.Context, limit int) ([]domain.Skill, error)
	GetPopularSkills(ctx context.Context, limit int) ([]domain.Skill, error)
	GetTopRatedSkills(ctx context.Context, limit int) ([]domain.Skill, error)

	GetCategories(ctx context.Context) ([]domain.Category, error)
	GetCategoryByID(ctx context.Context, id domain.CategoryID) (domain.Category, bool, error)

	GetTotalDownloads(ctx context.Context) (int64, error)
	GetSkillCount(ctx context.Context) (int, error)
	GetUniqueAuthors(ctx context.Context) ([]string, error)
	GetAllTags(ctx context.Context) ([]string, error)

	// IncrementDownloads and UpdateRating change the cached copy only. A
	// missing id is a no-op. Changes are lost on cache expiry, ClearCache or
	// restart unless the provider also implements Persister and write-through
	// is enabled.
	IncrementDownloads(ctx context.Context, id domain.SkillID) error
	UpdateRating(ctx context.Context, id domain.SkillID, rating float64) error

	ClearCache()
}

// SkillWriter is the extension point for full CRUD. No shipped provider
// implements it.
type SkillWriter interface {
	CreateSkill(ctx context.Context, skill domain.Skill) (domain.Skill, error)
	UpdateSkill(ctx context.Context, id domain.SkillID, update func(*domain.Skill)) (domain.Skill, error)
	DeleteSkill(ctx context.Context, id domain.SkillID) error
}

// Persister writes the cached collection back to the backing store.
type Persister interface {
	Persist(ctx context.Context) error
}
