package repository

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/provider"
)

const (
	DefaultLimit                = 10
	FeaturedMinRating           = 4.5
	DefaultFeaturedMinDownloads = 1000
	FeaturedCap                 = 10
)

// Skills exposes named skill queries composed from provider primitives.
type Skills struct {
	p provider.Provider
}

func NewSkills(p provider.Provider) *Skills {
	return &Skills{p: p}
}

func (r *Skills) GetSkills(ctx context.Context, filters *provider.SkillFilters, sort *provider.SortOptions) ([]domain.Skill, error) {
	return r.p.GetSkills(ctx, filters, sort)
}

func (r *Skills) GetSkillByID(ctx context.Context, id domain.SkillID) (domain.Skill, bool, error) {
	return r.p.GetSkillByID(ctx, id)
}

func (r *Skills) GetSkillsByCategory(ctx context.Context, categoryID domain.CategoryID) ([]domain.Skill, error) {
	return r.p.GetSkillsByCategory(ctx, categoryID)
}

// GetSkillsByTags returns skills carrying any of tags.
func (r *Skills) GetSkillsByTags(ctx context.Context, tags []string) ([]domain.Skill, error) {
	return r.p.GetSkillsByTags(ctx, tags)
}

func (r *Skills) SearchSkills(ctx context.Context, query string) ([]domain.Skill, error) {
	return r.p.SearchSkills(ctx, query)
}

func (r *Skills) GetRecentlyUpdatedSkills(ctx context.Context, limit int) ([]domain.Skill, error) {
	return r.p.GetRecentlyUpdatedSkills(ctx, limit)
}

func (r *Skills) GetPopularSkills(ctx context.Context, limit int) ([]domain.Skill, error) {
	return r.p.GetPopularSkills(ctx, limit)
}

func (r *Skills) GetTopRatedSkills(ctx context.Context, limit int) ([]domain.Skill, error) {
	return r.p.GetTopRatedSkills(ctx, limit)
}

func (r *Skills) GetTotalDownloads(ctx context.Context) (int64, error) {
	return r.p.GetTotalDownloads(ctx)
}

func (r *Skills) GetSkillCount(ctx context.Context) (int, error) {
	return r.p.GetSkillCount(ctx)
}

func (r *Skills) GetUniqueAuthors(ctx context.Context) ([]string, error) {
	return r.p.GetUniqueAuthors(ctx)
}

func (r *Skills) GetAllTags(ctx context.Context) ([]string, error) {
	return r.p.GetAllTags(ctx)
}

func (r *Skills) IncrementDownloads(ctx context.Context, id domain.SkillID) error {
	return r.p.IncrementDownloads(ctx, id)
}

func (r *Skills) UpdateRating(ctx context.Context, id domain.SkillID, rating float64) error {
	return r.p.UpdateRating(ctx, id, rating)
}

// GetFreeSkills returns skills priced at zero, open source included.
func (r *Skills) GetFreeSkills(ctx context.Context) ([]domain.Skill, error) {
	return r.p.GetSkills(ctx, &provider.SkillFilters{MaxPrice: provider.Float(0)}, nil)
}

func (r *Skills) GetSkillsByAuthor(ctx context.Context, author string) ([]domain.Skill, error) {
	return r.p.GetSkills(ctx, &provider.SkillFilters{Author: author}, nil)
}

// GetFeaturedSkills returns up to FeaturedCap skills rated at least
// FeaturedMinRating with at least minDownloads downloads, best rated first.
func (r *Skills) GetFeaturedSkills(ctx context.Context, minDownloads int64) ([]domain.Skill, error) {
	rated, err := r.p.GetSkills(ctx, &provider.SkillFilters{MinRating: provider.Float(FeaturedMinRating)}, nil)
	if err != nil {
		return nil, err
	}

	featured := make([]domain.Skill, 0, len(rated))
	for _, s := range rated {
		if s.Downloads >= minDownloads {
			featured = append(featured, s)
		}
	}

	slices.SortStableFunc(featured, func(a, b domain.Skill) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	if len(featured) > FeaturedCap {
		featured = featured[:FeaturedCap]
	}
	return featured, nil
}

type BrowseSort string

const (
	BrowsePopular BrowseSort = "popular"
	BrowseRecent  BrowseSort = "recent"
	BrowseRating  BrowseSort = "rating"
)

func ParseBrowseSort(s string) (BrowseSort, error) {
	switch BrowseSort(strings.ToLower(strings.TrimSpace(s))) {
	case "", BrowsePopular:
		return BrowsePopular, nil
	case BrowseRecent:
		return BrowseRecent, nil
	case BrowseRating:
		return BrowseRating, nil
	default:
		return "", fmt.Errorf("invalid browse sort: %s (supported: popular, recent, rating)", s)
	}
}

func (s BrowseSort) sortField() provider.SortField {
	switch s {
	case BrowseRecent:
		return provider.SortByLastUpdated
	case BrowseRating:
		return provider.SortByRating
	default:
		return provider.SortByDownloads
	}
}

// AllCategories selects every category in a browse query.
const AllCategories domain.CategoryID = "all"

type BrowseQuery struct {
	Search   string
	Category domain.CategoryID
	// Tags must all be present on a skill.
	Tags []string
	Sort BrowseSort
}

// Browse is the catalog browse composition. Unlike the provider filters it
// requires every selected tag and its search also matches the author.
func (r *Skills) Browse(ctx context.Context, q BrowseQuery) ([]domain.Skill, error) {
	filters := &provider.SkillFilters{}
	if q.Category != "" && q.Category != AllCategories {
		filters.Category = q.Category
	}

	sorted, err := r.p.GetSkills(ctx, filters, &provider.SortOptions{Field: q.Sort.sortField(), Order: provider.OrderDesc})
	if err != nil {
		return nil, err
	}

	query := strings.ToLower(q.Search)
	result := make([]domain.Skill, 0, len(sorted))
	for _, s := range sorted {
		if !hasAllTags(s, q.Tags) {
			continue
		}
		if query != "" && !matchesBrowseSearch(s, query) {
			continue
		}
		result = append(result, s)
	}
	return result, nil
}

func hasAllTags(s domain.Skill, tags []string) bool {
	for _, tag := range tags {
		if !s.HasTag(tag) {
			return false
		}
	}
	return true
}

func matchesBrowseSearch(s domain.Skill, query string) bool {
	if strings.Contains(strings.ToLower(s.Name), query) ||
		strings.Contains(strings.ToLower(s.Description), query) ||
		strings.Contains(strings.ToLower(s.Author), query) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

type Stats struct {
	Skills         int      `json:"skills" yaml:"skills"`
	Categories     int      `json:"categories" yaml:"categories"`
	TotalDownloads int64    `json:"totalDownloads" yaml:"total_downloads"`
	Authors        []string `json:"authors" yaml:"authors"`
	Tags           []string `json:"tags" yaml:"tags"`
}

func (r *Skills) Stats(ctx context.Context) (Stats, error) {
	var (
		st  Stats
		err error
	)

	if st.Skills, err = r.p.GetSkillCount(ctx); err != nil {
		return Stats{}, err
	}
	if st.TotalDownloads, err = r.p.GetTotalDownloads(ctx); err != nil {
		return Stats{}, err
	}
	if st.Authors, err = r.p.GetUniqueAuthors(ctx); err != nil {
		return Stats{}, err
	}
	if st.Tags, err = r.p.GetAllTags(ctx); err != nil {
		return Stats{}, err
	}

	categories, err := r.p.GetCategories(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.Categories = len(categories)

	return st, nil
}
