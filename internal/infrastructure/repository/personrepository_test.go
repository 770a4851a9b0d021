package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/domain/person"
	"larder/internal/shared/logger"
)

func TestPersonRepositoryCreate(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPersonRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	h := seedHousehold(t, gdb)

	p, err := person.NewPerson(h.ID(), "Alex", 1.5)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, p))
	assert.NotZero(t, p.ID())
	assert.NotEmpty(t, p.SID())
}

func TestPersonRepositoryListByHousehold(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPersonRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	h := seedHousehold(t, gdb)

	t.Run("empty household", func(t *testing.T) {
		list, err := repo.ListByHousehold(ctx, h.ID())
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("returns members sorted by name", func(t *testing.T) {
		for _, name := range []string{"Sam", "Robin"} {
			p, err := person.NewPerson(h.ID(), name, person.DefaultPortionFactor)
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, p))
		}

		list, err := repo.ListByHousehold(ctx, h.ID())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Robin", list[0].Name())
		assert.Equal(t, "Sam", list[1].Name())
		assert.Equal(t, person.DefaultPortionFactor, list[0].PortionFactor())
	})

	t.Run("scoped by household", func(t *testing.T) {
		list, err := repo.ListByHousehold(ctx, h.ID()+1)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
