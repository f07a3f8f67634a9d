package provider

import (
	"strings"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
)

// SkillFilters are combined with AND across dimensions. Zero values and nil
// pointers leave a dimension inactive.
type SkillFilters struct {
	Category  domain.CategoryID
	Tags      []string
	Paid      *bool
	Pricing   domain.Pricing
	MinRating *float64
	MaxPrice  *float64
	Author    string
	Search    string
}

func (f *SkillFilters) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.Category == "" && len(f.Tags) == 0 && f.Paid == nil && f.Pricing == "" &&
		f.MinRating == nil && f.MaxPrice == nil && f.Author == "" && f.Search == ""
}

func Bool(v bool) *bool {
	return &v
}

func Float(v float64) *float64 {
	return &v
}

// MatchesFilters reports whether skill satisfies every active filter.
// Tags match when the skill carries any of them. Search covers name,
// description and tags; author is not searched here.
func MatchesFilters(skill domain.Skill, f *SkillFilters) bool {
	if f == nil {
		return true
	}

	if f.Category != "" && skill.Category != f.Category {
		return false
	}

	if len(f.Tags) > 0 {
		matchesTag := false
		for _, tag := range f.Tags {
			if skill.HasTag(tag) {
				matchesTag = true
				break
			}
		}
		if !matchesTag {
			return false
		}
	}

	if f.Paid != nil && (skill.Pricing() == domain.PricingPaid) != *f.Paid {
		return false
	}

	if f.Pricing != "" && skill.Pricing() != f.Pricing {
		return false
	}

	if f.MinRating != nil && skill.Rating < *f.MinRating {
		return false
	}

	if f.MaxPrice != nil && skill.Price > *f.MaxPrice {
		return false
	}

	if f.Author != "" && skill.Author != f.Author {
		return false
	}

	if f.Search != "" && !matchesSearch(skill, f.Search) {
		return false
	}

	return true
}

func matchesSearch(skill domain.Skill, query string) bool {
	query = strings.ToLower(query)

	if strings.Contains(strings.ToLower(skill.Name), query) {
		return true
	}

	if strings.Contains(strings.ToLower(skill.Description), query) {
		return true
	}

	for _, tag := range skill.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	return false
}

func applyFilters(skills []domain.Skill, f *SkillFilters) []domain.Skill {
	if f.IsEmpty() {
		return skills
	}

	result := make([]domain.Skill, 0, len(skills))
	for _, s := range skills {
		if MatchesFilters(s, f) {
			result = append(result, s)
		}
	}
	return result
}
