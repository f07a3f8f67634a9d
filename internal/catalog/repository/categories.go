package repository

import (
	"cmp"
	"context"
	"slices"
	"sort"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/provider"
)

type Categories struct {
	p provider.Provider
}

func NewCategories(p provider.Provider) *Categories {
	return &Categories{p: p}
}

func (r *Categories) GetCategories(ctx context.Context) ([]domain.Category, error) {
	return r.p.GetCategories(ctx)
}

func (r *Categories) GetCategoryByID(ctx context.Context, id domain.CategoryID) (domain.Category, bool, error) {
	return r.p.GetCategoryByID(ctx, id)
}

// GetCategoriesByPopularity orders by the stored count, highest first.
func (r *Categories) GetCategoriesByPopularity(ctx context.Context) ([]domain.Category, error) {
	categories, err := r.p.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(categories)
	slices.SortStableFunc(sorted, func(a, b domain.Category) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return sorted, nil
}

func (r *Categories) GetCategoryName(ctx context.Context, id domain.CategoryID) (string, bool, error) {
	c, ok, err := r.p.GetCategoryByID(ctx, id)
	if err != nil || !ok {
		return "", false, err
	}
	return c.Name, true, nil
}

// CountDrift compares a category's stored count with the skills that
// actually reference it. Known is false for ids used by skills but missing
// from the category collection.
type CountDrift struct {
	ID     domain.CategoryID `json:"id" yaml:"id"`
	Name   string            `json:"name" yaml:"name"`
	Stored int               `json:"stored" yaml:"stored"`
	Actual int               `json:"actual" yaml:"actual"`
	Known  bool              `json:"known" yaml:"known"`
}

func (d CountDrift) Delta() int {
	return d.Actual - d.Stored
}

// CategoryCountDrift reports every category whose stored count differs from
// the live skill population. Stored counts are never rewritten.
func (r *Categories) CategoryCountDrift(ctx context.Context) ([]CountDrift, error) {
	categories, err := r.p.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	skills, err := r.p.GetSkills(ctx, nil, nil)
	if err != nil {
		return nil, err
	}

	actual := make(map[domain.CategoryID]int)
	for _, s := range skills {
		actual[s.Category]++
	}

	drift := []CountDrift{}
	for _, c := range categories {
		n := actual[c.ID]
		delete(actual, c.ID)
		if n != c.Count {
			drift = append(drift, CountDrift{ID: c.ID, Name: c.Name, Stored: c.Count, Actual: n, Known: true})
		}
	}

	orphans := make([]domain.CategoryID, 0, len(actual))
	for id := range actual {
		orphans = append(orphans, id)
	}
	sort.Slice(orphans, func(i, j int) bool { return orphans[i] < orphans[j] })
	for _, id := range orphans {
		drift = append(drift, CountDrift{ID: id, Actual: actual[id]})
	}

	return drift, nil
}
