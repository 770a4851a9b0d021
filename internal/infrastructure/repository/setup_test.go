package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"larder/internal/domain/catalog"
	"larder/internal/domain/household"
	"larder/internal/infrastructure/migration"
	"larder/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// A :memory: database exists per connection, so the pool must stay at
	// one connection.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migration.Run(gdb))
	return gdb
}

func seedHousehold(t *testing.T, gdb *gorm.DB) *household.Household {
	t.Helper()

	h, err := household.NewHousehold("My Household")
	require.NoError(t, err)

	repo := NewHouseholdRepository(gdb, logger.NewLogger())
	require.NoError(t, repo.Create(context.Background(), h))
	return h
}

func seedIngredient(t *testing.T, gdb *gorm.DB, name, unit string) *catalog.Ingredient {
	t.Helper()

	ing, err := catalog.NewIngredient(name, unit)
	require.NoError(t, err)

	repo := NewIngredientRepository(gdb, logger.NewLogger())
	require.NoError(t, repo.Create(context.Background(), ing))
	return ing
}
