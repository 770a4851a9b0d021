package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"larder/internal/domain/mealplan"
	"larder/internal/domain/recipe"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/db"
	"larder/internal/shared/logger"
)

func TestMealPlanRepositoryCreateAndGet(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMealPlanRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	h := seedHousehold(t, gdb)

	plan, err := mealplan.NewMealPlan(h.ID(), "Week 1", mealplan.StatusActive)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, plan))
	assert.NotZero(t, plan.ID())

	t.Run("found", func(t *testing.T) {
		got, err := repo.GetBySID(ctx, plan.SID(), h.ID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Week 1", got.Name())
		assert.Equal(t, mealplan.StatusActive, got.Status())
	})

	t.Run("scoped by household", func(t *testing.T) {
		got, err := repo.GetBySID(ctx, plan.SID(), h.ID()+1)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMealPlanRepositoryListByHousehold(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMealPlanRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	h := seedHousehold(t, gdb)

	for _, name := range []string{"Week 1", "Week 2"} {
		plan, err := mealplan.NewMealPlan(h.ID(), name, mealplan.StatusDraft)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, plan))
	}

	list, err := repo.ListByHousehold(ctx, h.ID())
	require.NoError(t, err)
	assert.Len(t, list, 2)

	other, err := repo.ListByHousehold(ctx, h.ID()+1)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestMealPlanRepositoryDays(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMealPlanRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	h := seedHousehold(t, gdb)
	plan, err := mealplan.NewMealPlan(h.ID(), "Week 1", mealplan.StatusDraft)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, plan))

	t.Run("days come back sorted by date", func(t *testing.T) {
		for _, date := range []string{"2026-03-02", "2026-03-01"} {
			day, err := mealplan.NewDay(plan.ID(), date)
			require.NoError(t, err)
			require.NoError(t, repo.CreateDay(ctx, day))
		}

		days, err := repo.ListDays(ctx, plan.ID())
		require.NoError(t, err)
		require.Len(t, days, 2)
		assert.Equal(t, "2026-03-01", days[0].Date())
		assert.Equal(t, "2026-03-02", days[1].Date())
	})

	t.Run("GetDayBySID scoped by plan", func(t *testing.T) {
		day, err := mealplan.NewDay(plan.ID(), "2026-03-03")
		require.NoError(t, err)
		require.NoError(t, repo.CreateDay(ctx, day))

		got, err := repo.GetDayBySID(ctx, day.SID(), plan.ID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "2026-03-03", got.Date())

		got, err = repo.GetDayBySID(ctx, day.SID(), plan.ID()+1)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMealPlanRepositoryItems(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMealPlanRepository(gdb, logger.NewLogger())
	recipeRepo := NewRecipeRepository(gdb, logger.NewLogger())
	ctx := context.Background()

	h := seedHousehold(t, gdb)
	plan, err := mealplan.NewMealPlan(h.ID(), "Week 1", mealplan.StatusDraft)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, plan))

	day, err := mealplan.NewDay(plan.ID(), "2026-03-01")
	require.NoError(t, err)
	require.NoError(t, repo.CreateDay(ctx, day))

	rec, err := recipe.NewRecipe(h.ID(), "Pancakes", nil, 4, "Mix and bake.", nil)
	require.NoError(t, err)
	require.NoError(t, recipeRepo.Create(ctx, rec))

	item, err := mealplan.NewItem(day.ID(), rec.ID(), mealplan.MealTypeBreakfast, 2)
	require.NoError(t, err)
	require.NoError(t, repo.CreateItem(ctx, item))

	t.Run("GetItemBySID loads the recipe reference", func(t *testing.T) {
		got, err := repo.GetItemBySID(ctx, item.SID(), day.ID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, mealplan.MealTypeBreakfast, got.MealType())
		assert.Equal(t, 2.0, got.Servings())
		assert.Equal(t, "Pancakes", got.RecipeName())
		assert.Equal(t, rec.SID(), got.RecipeSID())
	})

	t.Run("items ride along on ListDays", func(t *testing.T) {
		days, err := repo.ListDays(ctx, plan.ID())
		require.NoError(t, err)
		require.Len(t, days, 1)
		require.Len(t, days[0].Items(), 1)
		assert.Equal(t, item.SID(), days[0].Items()[0].SID())
	})

	t.Run("UpdateItem persists changed fields", func(t *testing.T) {
		require.NoError(t, item.UpdateMealType(mealplan.MealTypeDinner))
		require.NoError(t, item.UpdateServings(3))
		require.NoError(t, repo.UpdateItem(ctx, item))

		got, err := repo.GetItemBySID(ctx, item.SID(), day.ID())
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, mealplan.MealTypeDinner, got.MealType())
		assert.Equal(t, 3.0, got.Servings())
	})

	t.Run("DeleteItem removes the row", func(t *testing.T) {
		require.NoError(t, repo.DeleteItem(ctx, item.ID()))

		got, err := repo.GetItemBySID(ctx, item.SID(), day.ID())
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestMealPlanRepositoryDeleteDay(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewMealPlanRepository(gdb, logger.NewLogger())
	recipeRepo := NewRecipeRepository(gdb, logger.NewLogger())
	tm := db.NewTransactionManager(gdb)
	ctx := context.Background()

	h := seedHousehold(t, gdb)
	plan, err := mealplan.NewMealPlan(h.ID(), "Week 1", mealplan.StatusDraft)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, plan))

	day, err := mealplan.NewDay(plan.ID(), "2026-03-01")
	require.NoError(t, err)
	require.NoError(t, repo.CreateDay(ctx, day))

	rec, err := recipe.NewRecipe(h.ID(), "Soup", nil, 2, "Simmer.", nil)
	require.NoError(t, err)
	require.NoError(t, recipeRepo.Create(ctx, rec))

	item, err := mealplan.NewItem(day.ID(), rec.ID(), mealplan.MealTypeLunch, 2)
	require.NoError(t, err)
	require.NoError(t, repo.CreateItem(ctx, item))

	err = tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return repo.DeleteDay(txCtx, day.ID())
	})
	require.NoError(t, err)

	days, err := repo.ListDays(ctx, plan.ID())
	require.NoError(t, err)
	assert.Empty(t, days)

	var items int64
	err = gdb.Model(&models.MealPlanItemModel{}).Where("day_id = ?", day.ID()).Count(&items).Error
	require.NoError(t, err)
	assert.Zero(t, items)
}
