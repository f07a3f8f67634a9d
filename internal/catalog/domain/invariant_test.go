package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSkills(t *testing.T) {
	valid := []Skill{
		{ID: "a", Name: "A", Price: 0, Downloads: 1},
		{ID: "b", Name: "B", Price: 5, Downloads: 0, Rating: 7},
	}
	require.NoError(t, ValidateSkills(valid))

	t.Run("missing id", func(t *testing.T) {
		err := ValidateSkills([]Skill{{Name: "nameless"}})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "id", vErr.Field)
		assert.Equal(t, 0, vErr.Index)
	})

	t.Run("negative price", func(t *testing.T) {
		err := ValidateSkills([]Skill{{ID: "x", Name: "X", Price: -1}})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "price", vErr.Field)
	})

	t.Run("negative downloads", func(t *testing.T) {
		err := ValidateSkills([]Skill{{ID: "x", Name: "X", Downloads: -3}})
		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "downloads", vErr.Field)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := ValidateSkills([]Skill{{ID: "x", Name: "X"}, {ID: "x", Name: "Y"}})
		var dupErr *DuplicateIDError
		require.True(t, errors.As(err, &dupErr))
		assert.Equal(t, "x", dupErr.ID)
	})
}

func TestValidateCategories(t *testing.T) {
	require.NoError(t, ValidateCategories([]Category{{ID: "nav", Name: "Navigation", Count: 3}}))

	err := ValidateCategories([]Category{{ID: "nav", Name: "Navigation"}, {ID: "nav", Name: "Again"}})
	var dupErr *DuplicateIDError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, "category", dupErr.Collection)
}
