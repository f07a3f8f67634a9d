package provider

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/harunnryd/skillmart/internal/catalog/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type SortField string

const (
	SortByName        SortField = "name"
	SortByDownloads   SortField = "downloads"
	SortByRating      SortField = "rating"
	SortByPrice       SortField = "price"
	SortByLastUpdated SortField = "lastUpdated"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

type SortOptions struct {
	Field SortField
	Order SortOrder
}

func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return SortByName, nil
	case "downloads":
		return SortByDownloads, nil
	case "rating":
		return SortByRating, nil
	case "price":
		return SortByPrice, nil
	case "lastupdated", "last_updated", "updated":
		return SortByLastUpdated, nil
	default:
		return "", fmt.Errorf("invalid sort field: %s (supported: name, downloads, rating, price, lastUpdated)", s)
	}
}

func ParseSortOrder(s string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(s))) {
	case "", OrderAsc:
		return OrderAsc, nil
	case OrderDesc:
		return OrderDesc, nil
	default:
		return "", fmt.Errorf("invalid sort order: %s (supported: asc, desc)", s)
	}
}

// applySort returns a stably sorted copy. An unknown field keeps input order.
func applySort(skills []domain.Skill, opts *SortOptions) []domain.Skill {
	if opts == nil {
		return skills
	}

	compare := comparator(opts.Field)
	sorted := slices.Clone(skills)
	if compare == nil {
		return sorted
	}

	slices.SortStableFunc(sorted, func(a, b domain.Skill) int {
		c := compare(a, b)
		if opts.Order == OrderDesc {
			return -c
		}
		return c
	})
	return sorted
}

func comparator(field SortField) func(a, b domain.Skill) int {
	switch field {
	case SortByName:
		// Collators keep internal buffers and are not safe for concurrent use.
		col := collate.New(language.English)
		return func(a, b domain.Skill) int {
			return col.CompareString(a.Name, b.Name)
		}
	case SortByDownloads:
		return func(a, b domain.Skill) int {
			return cmp.Compare(a.Downloads, b.Downloads)
		}
	case SortByRating:
		return func(a, b domain.Skill) int {
			return cmp.Compare(a.Rating, b.Rating)
		}
	case SortByPrice:
		return func(a, b domain.Skill) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case SortByLastUpdated:
		return func(a, b domain.Skill) int {
			return a.UpdatedAt().Compare(b.UpdatedAt())
		}
	default:
		return nil
	}
}

// take truncates to limit. A non-positive limit yields an empty slice.
func take(skills []domain.Skill, limit int) []domain.Skill {
	if limit <= 0 {
		return []domain.Skill{}
	}
	if limit < len(skills) {
		return skills[:limit]
	}
	return skills
}
