package formatter

import (
	"fmt"
	"strings"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/repository"
)

type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

type CatalogFormatter interface {
	FormatSkills([]domain.Skill) (string, error)
	FormatSkill(domain.Skill) (string, error)
	FormatCategories([]domain.Category) (string, error)
	FormatCategory(domain.Category) (string, error)
	FormatDrift([]repository.CountDrift) (string, error)
	FormatStats(repository.Stats) (string, error)
}

type FormatterFactory struct{}

func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

func (f *FormatterFactory) Create(format OutputFormat) (CatalogFormatter, error) {
	switch format {
	case OutputFormatTable:
		return NewTableFormatter(), nil
	case OutputFormatJSON:
		return NewJSONFormatter(), nil
	case OutputFormatYAML:
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: table, json, yaml)", format)
	}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (supported: table, json, yaml)", s)
	}
}

// PriceLabel renders the pricing model the way listings show it.
func PriceLabel(s domain.Skill) string {
	switch s.Pricing() {
	case domain.PricingOpenSource:
		return "Open source"
	case domain.PricingFree:
		return "Free"
	default:
		return fmt.Sprintf("$%.2f", s.Price)
	}
}
