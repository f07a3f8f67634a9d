package formatter

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
	"github.com/harunnryd/skillmart/internal/catalog/repository"
)

type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) FormatSkills(skills []domain.Skill) (string, error) {
	if skills == nil {
		skills = []domain.Skill{}
	}
	return marshalYAML(skills)
}

func (f *YAMLFormatter) FormatSkill(skill domain.Skill) (string, error) {
	return marshalYAML(skill)
}

func (f *YAMLFormatter) FormatCategories(categories []domain.Category) (string, error) {
	if categories == nil {
		categories = []domain.Category{}
	}
	return marshalYAML(categories)
}

func (f *YAMLFormatter) FormatCategory(category domain.Category) (string, error) {
	return marshalYAML(category)
}

func (f *YAMLFormatter) FormatDrift(drift []repository.CountDrift) (string, error) {
	if drift == nil {
		drift = []repository.CountDrift{}
	}
	return marshalYAML(drift)
}

func (f *YAMLFormatter) FormatStats(stats repository.Stats) (string, error) {
	return marshalYAML(stats)
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
