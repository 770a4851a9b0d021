package person

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPerson(t *testing.T) {
	t.Run("valid with trimming", func(t *testing.T) {
		p, err := NewPerson(1, " Alex ", 1.5)
		require.NoError(t, err)
		assert.Equal(t, "Alex", p.Name())
		assert.Equal(t, 1.5, p.PortionFactor())
		assert.Empty(t, p.DislikedIngredientIDs())
		assert.Contains(t, p.SID(), "per_")
	})

	t.Run("missing household ID", func(t *testing.T) {
		_, err := NewPerson(0, "Alex", 1)
		assert.Error(t, err)
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := NewPerson(1, "   ", 1)
		assert.Error(t, err)
	})

	t.Run("non-positive portion factor", func(t *testing.T) {
		_, err := NewPerson(1, "Alex", 0)
		assert.Error(t, err)
	})
}
