package provider

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/harunnryd/skillmart/internal/catalog/domain"
)

//go:embed samples/skills.json
var sampleSkillsJSON []byte

// SampleSkills returns the placeholder entries shown in development posture.
func SampleSkills() ([]domain.Skill, error) {
	var skills []domain.Skill
	if err := json.Unmarshal(sampleSkillsJSON, &skills); err != nil {
		return nil, fmt.Errorf("decode sample skills: %w", err)
	}
	if err := domain.ValidateSkills(skills); err != nil {
		return nil, fmt.Errorf("validate sample skills: %w", err)
	}
	return skills, nil
}
