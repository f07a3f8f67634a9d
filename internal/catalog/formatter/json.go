package formatter

import (
	"encoding/json"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/repository"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) FormatSkills(skills []domain.Skill) (string, error) {
	if skills == nil {
		skills = []domain.Skill{}
	}
	return marshalJSON(skills)
}

func (f *JSONFormatter) FormatSkill(skill domain.Skill) (string, error) {
	return marshalJSON(skill)
}

func (f *JSONFormatter) FormatCategories(categories []domain.Category) (string, error) {
	if categories == nil {
		categories = []domain.Category{}
	}
	return marshalJSON(categories)
}

func (f *JSONFormatter) FormatCategory(category domain.Category) (string, error) {
	return marshalJSON(category)
}

func (f *JSONFormatter) FormatDrift(drift []repository.CountDrift) (string, error) {
	if drift == nil {
		drift = []repository.CountDrift{}
	}
	return marshalJSON(drift)
}

func (f *JSONFormatter) FormatStats(stats repository.Stats) (string, error) {
	return marshalJSON(stats)
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
