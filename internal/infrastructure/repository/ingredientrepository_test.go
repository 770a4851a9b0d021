package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/domain/catalog"
	"larder/internal/shared/logger"
)

func TestIngredientRepositoryCreate(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIngredientRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	t.Run("assigns database ID", func(t *testing.T) {
		ing, err := catalog.NewIngredient("Sugar", "g")
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, ing))
		assert.NotZero(t, ing.ID())
	})

	t.Run("duplicate name maps to ErrNameExists", func(t *testing.T) {
		dup, err := catalog.NewIngredient("Sugar", "kg")
		require.NoError(t, err)

		err = repo.Create(ctx, dup)
		assert.ErrorIs(t, err, catalog.ErrNameExists)
	})
}

func TestIngredientRepositoryList(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIngredientRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	seedIngredient(t, gdb, "Salt", "g")
	seedIngredient(t, gdb, "Butter", "g")
	seedIngredient(t, gdb, "Milk", "ml")

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)

	names := []string{list[0].Name(), list[1].Name(), list[2].Name()}
	assert.Equal(t, []string{"Butter", "Milk", "Salt"}, names)
}

func TestIngredientRepositoryGetBySID(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIngredientRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	ing := seedIngredient(t, gdb, "Flour", "g")

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetBySID(ctx, ing.SID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Flour", got.Name())
		assert.Equal(t, "g", got.Unit())
	})

	t.Run("miss returns nil without error", func(t *testing.T) {
		got, err := repo.GetBySID(ctx, "ing_missing")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestIngredientRepositoryGetBySIDs(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewIngredientRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	sugar := seedIngredient(t, gdb, "Sugar", "g")
	milk := seedIngredient(t, gdb, "Milk", "ml")

	t.Run("missing SIDs are absent from the result", func(t *testing.T) {
		got, err := repo.GetBySIDs(ctx, []string{sugar.SID(), "ing_missing", milk.SID()})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty input yields empty result", func(t *testing.T) {
		got, err := repo.GetBySIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
