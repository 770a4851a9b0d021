package mealplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealTypeIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input MealType
		want  bool
	}{
		{name: "breakfast", input: MealTypeBreakfast, want: true},
		{name: "lunch", input: MealTypeLunch, want: true},
		{name: "dinner", input: MealTypeDinner, want: true},
		{name: "snack", input: MealTypeSnack, want: true},
		{name: "unknown value", input: MealType("brunch"), want: false},
		{name: "empty", input: MealType(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.IsValid())
		})
	}
}

func TestNewItem(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		item, err := NewItem(1, 2, MealTypeDinner, 2.5)
		require.NoError(t, err)
		assert.Equal(t, uint(1), item.DayID())
		assert.Equal(t, uint(2), item.RecipeID())
		assert.Equal(t, MealTypeDinner, item.MealType())
		assert.Equal(t, 2.5, item.Servings())
		assert.Contains(t, item.SID(), "mpi_")
	})

	t.Run("missing day ID", func(t *testing.T) {
		_, err := NewItem(0, 2, MealTypeDinner, 1)
		assert.Error(t, err)
	})

	t.Run("missing recipe ID", func(t *testing.T) {
		_, err := NewItem(1, 0, MealTypeDinner, 1)
		assert.Error(t, err)
	})

	t.Run("invalid meal type", func(t *testing.T) {
		_, err := NewItem(1, 2, MealType("brunch"), 1)
		assert.Error(t, err)
	})

	t.Run("non-positive servings", func(t *testing.T) {
		_, err := NewItem(1, 2, MealTypeDinner, 0)
		assert.Error(t, err)
	})
}

func TestItemUpdates(t *testing.T) {
	item, err := NewItem(1, 2, MealTypeLunch, 2)
	require.NoError(t, err)

	t.Run("valid meal type change", func(t *testing.T) {
		require.NoError(t, item.UpdateMealType(MealTypeSnack))
		assert.Equal(t, MealTypeSnack, item.MealType())
	})

	t.Run("invalid meal type is rejected", func(t *testing.T) {
		err := item.UpdateMealType(MealType("brunch"))
		assert.Error(t, err)
		assert.Equal(t, MealTypeSnack, item.MealType())
	})

	t.Run("valid servings change", func(t *testing.T) {
		require.NoError(t, item.UpdateServings(4))
		assert.Equal(t, 4.0, item.Servings())
	})

	t.Run("non-positive servings is rejected", func(t *testing.T) {
		err := item.UpdateServings(-1)
		assert.Error(t, err)
		assert.Equal(t, 4.0, item.Servings())
	})
}
