package domain

import (
	"strings"
	"time"
)

type Skill struct {
	ID            SkillID    `json:"id" yaml:"id" validate:"required"`
	Name          string     `json:"name" yaml:"name" validate:"required"`
	Description   string     `json:"description" yaml:"description"`
	Category      CategoryID `json:"category" yaml:"category"`
	Price         float64    `json:"price" yaml:"price" validate:"gte=0"`
	IsOSS         bool       `json:"isOSS" yaml:"is_oss"`
	Author        string     `json:"author" yaml:"author"`
	Downloads     int64      `json:"downloads" yaml:"downloads" validate:"gte=0"`
	Rating        float64    `json:"rating" yaml:"rating"`
	Version       string     `json:"version" yaml:"version"`
	Tags          []string   `json:"tags" yaml:"tags"`
	ImageURL      string     `json:"imageUrl" yaml:"image_url"`
	LastUpdated   string     `json:"lastUpdated" yaml:"last_updated"`
	Compatibility []string   `json:"compatibility" yaml:"compatibility"`
	Icon          string     `json:"icon,omitempty" yaml:"icon,omitempty"`
	InstallURL    string     `json:"installUrl,omitempty" yaml:"install_url,omitempty"`
}

// Clone returns a deep copy so callers can never reach into a cached record.
func (s Skill) Clone() Skill {
	out := s
	out.Tags = cloneStrings(s.Tags)
	out.Compatibility = cloneStrings(s.Compatibility)
	return out
}

// Pricing derives the pricing model. IsOSS wins over price.
func (s Skill) Pricing() Pricing {
	switch {
	case s.IsOSS:
		return PricingOpenSource
	case s.Price == 0:
		return PricingFree
	default:
		return PricingPaid
	}
}

func (s Skill) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// UpdatedAt parses LastUpdated. Unparsable values yield the zero time.
func (s Skill) UpdatedAt() time.Time {
	return ParseTimestamp(s.LastUpdated)
}

func (s Skill) IconKind() IconKind {
	icon := strings.TrimSpace(s.Icon)
	switch {
	case icon == "":
		return IconNone
	case strings.HasPrefix(icon, "http://"), strings.HasPrefix(icon, "https://"):
		return IconImage
	default:
		return IconText
	}
}

// DisplayIcon returns the skill's own icon, then the category fallback, then the default.
func (s Skill) DisplayIcon() string {
	if s.IconKind() != IconNone {
		return s.Icon
	}
	return CategoryIcon(s.Category)
}

type Category struct {
	ID    CategoryID `json:"id" yaml:"id" validate:"required"`
	Name  string     `json:"name" yaml:"name" validate:"required"`
	Icon  string     `json:"icon" yaml:"icon"`
	Count int        `json:"count" yaml:"count"`
}

type SkillID string

func (id SkillID) String() string {
	return string(id)
}

func (id SkillID) IsValid() bool {
	return strings.TrimSpace(string(id)) != ""
}

type CategoryID string

func (id CategoryID) String() string {
	return string(id)
}

func (id CategoryID) IsValid() bool {
	return strings.TrimSpace(string(id)) != ""
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func ParseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
