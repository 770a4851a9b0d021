package migration

import (
	"fmt"

	"gorm.io/gorm"

	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/logger"
)

// AutoMigrateModels returns every persistence model in dependency order.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.HouseholdModel{},
		&models.IngredientModel{},
		&models.RecipeModel{},
		&models.RecipeIngredientModel{},
		&models.PantryItemModel{},
		&models.PersonModel{},
		&models.MealPlanModel{},
		&models.MealPlanDayModel{},
		&models.MealPlanItemModel{},
	}
}

// Run applies the schema for all persistence models.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(AutoMigrateModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Info("database schema migrated")
	return nil
}
