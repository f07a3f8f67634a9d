package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func ValidateSkills(skills []Skill) error {
	seen := make(map[SkillID]struct{}, len(skills))
	for i := range skills {
		if err := validateRecord(i, &skills[i]); err != nil {
			return err
		}
		if _, dup := seen[skills[i].ID]; dup {
			return &DuplicateIDError{Collection: "skill", ID: skills[i].ID.String()}
		}
		seen[skills[i].ID] = struct{}{}
	}
	return nil
}

func ValidateCategories(categories []Category) error {
	seen := make(map[CategoryID]struct{}, len(categories))
	for i := range categories {
		if err := validateRecord(i, &categories[i]); err != nil {
			return err
		}
		if _, dup := seen[categories[i].ID]; dup {
			return &DuplicateIDError{Collection: "category", ID: categories[i].ID.String()}
		}
		seen[categories[i].ID] = struct{}{}
	}
	return nil
}

func validateRecord(index int, record any) error {
	err := validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{
			Field:   strings.ToLower(fe.Field()),
			Message: "failed '" + fe.Tag() + "' check",
			Index:   index,
		}
	}
	return err
}
