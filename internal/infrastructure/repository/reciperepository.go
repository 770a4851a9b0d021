package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"larder/internal/domain/recipe"
	"larder/internal/infrastructure/persistence/mappers"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/db"
	sharedErrors "larder/internal/shared/errors"
	"larder/internal/shared/logger"
)

// RecipeRepositoryImpl implements the recipe.Repository interface.
type RecipeRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.RecipeMapper
	logger logger.Interface
}

// NewRecipeRepository creates a new recipe repository instance.
func NewRecipeRepository(gdb *gorm.DB, log logger.Interface) recipe.Repository {
	return &RecipeRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewRecipeMapper(),
		logger: log,
	}
}

// preloadIngredients loads the ingredient line items ordered by the joined
// catalog ingredient name, together with the catalog rows themselves.
func preloadIngredients(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Ingredients", func(tx *gorm.DB) *gorm.DB {
			return tx.
				Select("recipe_ingredients.*").
				Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
				Order("ingredients.name ASC")
		}).
		Preload("Ingredients.Ingredient")
}

// ListByHousehold retrieves all recipes of a household sorted by name.
func (r *RecipeRepositoryImpl) ListByHousehold(ctx context.Context, householdID uint) ([]*recipe.Recipe, error) {
	var modelList []*models.RecipeModel

	query := preloadIngredients(db.GetTxFromContext(ctx, r.db)).
		Where("household_id = ?", householdID).
		Order("name ASC")
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list recipes", "household_id", householdID, "error", err)
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}

// GetBySID retrieves one recipe with its ingredient list, nil on miss.
func (r *RecipeRepositoryImpl) GetBySID(ctx context.Context, sid string, householdID uint) (*recipe.Recipe, error) {
	var model models.RecipeModel

	query := preloadIngredients(db.GetTxFromContext(ctx, r.db)).
		Where("sid = ? AND household_id = ?", sid, householdID)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get recipe by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Create persists the recipe row and its ingredient line items. Callers
// wrap this in a transaction so a failed line insert rolls back the recipe.
func (r *RecipeRepositoryImpl) Create(ctx context.Context, rec *recipe.Recipe) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := r.mapper.ToModel(rec)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create recipe", "error", err)
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	rec.SetID(model.ID)

	lines := rec.Ingredients()
	if len(lines) > 0 {
		lineModels := make([]*models.RecipeIngredientModel, 0, len(lines))
		for _, line := range lines {
			lineModels = append(lineModels, r.mapper.LineToModel(line, model.ID))
		}
		if err := tx.Create(&lineModels).Error; err != nil {
			if sharedErrors.IsDuplicateError(err) {
				return recipe.ErrDuplicateIngredient
			}
			r.logger.Errorw("failed to create recipe ingredients", "recipe_id", model.ID, "error", err)
			return fmt.Errorf("failed to create recipe ingredients: %w", err)
		}
	}

	r.logger.Infow("recipe created", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}

// Update persists changed recipe fields. The ingredient list is managed
// separately through ReplaceIngredients.
func (r *RecipeRepositoryImpl) Update(ctx context.Context, rec *recipe.Recipe) error {
	model := r.mapper.ToModel(rec)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.RecipeModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":         model.Name,
			"description":  model.Description,
			"servings":     model.Servings,
			"instructions": model.Instructions,
			"notes":        model.Notes,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update recipe", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update recipe: %w", result.Error)
	}

	return nil
}

// Delete removes the recipe together with its ingredient rows and any meal
// plan items that reference it.
func (r *RecipeRepositoryImpl) Delete(ctx context.Context, recipeID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.MealPlanItemModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete meal plan items for recipe", "recipe_id", recipeID, "error", err)
		return fmt.Errorf("failed to delete meal plan items: %w", err)
	}

	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredientModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete recipe ingredients", "recipe_id", recipeID, "error", err)
		return fmt.Errorf("failed to delete recipe ingredients: %w", err)
	}

	if err := tx.Delete(&models.RecipeModel{}, recipeID).Error; err != nil {
		r.logger.Errorw("failed to delete recipe", "id", recipeID, "error", err)
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	r.logger.Infow("recipe deleted", "id", recipeID)
	return nil
}

// ReplaceIngredients deletes every ingredient row of the recipe and
// inserts the given ones. Callers wrap this in a transaction.
func (r *RecipeRepositoryImpl) ReplaceIngredients(ctx context.Context, recipeID uint, items []*recipe.RecipeIngredient) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredientModel{}).Error; err != nil {
		r.logger.Errorw("failed to clear recipe ingredients", "recipe_id", recipeID, "error", err)
		return fmt.Errorf("failed to clear recipe ingredients: %w", err)
	}

	if len(items) > 0 {
		lineModels := make([]*models.RecipeIngredientModel, 0, len(items))
		for _, line := range items {
			lineModels = append(lineModels, r.mapper.LineToModel(line, recipeID))
		}
		if err := tx.Create(&lineModels).Error; err != nil {
			if sharedErrors.IsDuplicateError(err) {
				return recipe.ErrDuplicateIngredient
			}
			r.logger.Errorw("failed to insert recipe ingredients", "recipe_id", recipeID, "error", err)
			return fmt.Errorf("failed to insert recipe ingredients: %w", err)
		}
	}

	return nil
}
