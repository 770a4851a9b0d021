package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIngredient(t *testing.T) {
	t.Run("trims name and unit", func(t *testing.T) {
		ing, err := NewIngredient("  Sugar ", " g ")
		require.NoError(t, err)
		assert.Equal(t, "Sugar", ing.Name())
		assert.Equal(t, "g", ing.Unit())
		assert.Contains(t, ing.SID(), "ing_")
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewIngredient("   ", "g")
		assert.Error(t, err)
	})

	t.Run("blank unit", func(t *testing.T) {
		_, err := NewIngredient("Sugar", "  ")
		assert.Error(t, err)
	})
}

func TestIngredientNameEquals(t *testing.T) {
	ing, err := NewIngredient("Sugar", "g")
	require.NoError(t, err)

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "exact match", candidate: "Sugar", want: true},
		{name: "lowercase", candidate: "sugar", want: true},
		{name: "uppercase", candidate: "SUGAR", want: true},
		{name: "different name", candidate: "Salt", want: false},
		{name: "leading space differs", candidate: " Sugar", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ing.NameEquals(tt.candidate))
		})
	}
}

func TestIngredientNameEqualsUnicode(t *testing.T) {
	ing, err := NewIngredient("Jalapeño", "piece")
	require.NoError(t, err)

	assert.True(t, ing.NameEquals("JALAPEÑO"))
	assert.False(t, ing.NameEquals("Jalapeno"))
}
