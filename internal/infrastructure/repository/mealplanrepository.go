package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"larder/internal/domain/mealplan"
	"larder/internal/infrastructure/persistence/mappers"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/db"
	"larder/internal/shared/logger"
)

// MealPlanRepositoryImpl implements the mealplan.Repository interface.
type MealPlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MealPlanMapper
	logger logger.Interface
}

// NewMealPlanRepository creates a new meal plan repository instance.
func NewMealPlanRepository(gdb *gorm.DB, log logger.Interface) mealplan.Repository {
	return &MealPlanRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewMealPlanMapper(),
		logger: log,
	}
}

// ListByHousehold retrieves a household's plans sorted by creation time
// descending.
func (r *MealPlanRepositoryImpl) ListByHousehold(ctx context.Context, householdID uint) ([]*mealplan.MealPlan, error) {
	var modelList []*models.MealPlanModel

	query := db.GetTxFromContext(ctx, r.db).
		Where("household_id = ?", householdID).
		Order("created_at DESC")
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list meal plans", "household_id", householdID, "error", err)
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}

// Create creates a new meal plan in the database.
func (r *MealPlanRepositoryImpl) Create(ctx context.Context, plan *mealplan.MealPlan) error {
	model := r.mapper.ToModel(plan)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create meal plan", "error", err)
		return fmt.Errorf("failed to create meal plan: %w", err)
	}

	plan.SetID(model.ID)

	r.logger.Infow("meal plan created", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}

// GetBySID retrieves one plan scoped by household, nil on miss.
func (r *MealPlanRepositoryImpl) GetBySID(ctx context.Context, sid string, householdID uint) (*mealplan.MealPlan, error) {
	var model models.MealPlanModel

	query := db.GetTxFromContext(ctx, r.db).
		Where("sid = ? AND household_id = ?", sid, householdID)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get meal plan by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// preloadItems loads a day's items ordered by creation time, together with
// the joined recipe rows.
func preloadItems(query *gorm.DB) *gorm.DB {
	return query.
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("meal_plan_items.created_at ASC, meal_plan_items.id ASC")
		}).
		Preload("Items.Recipe")
}

// ListDays retrieves a plan's days sorted by date ascending.
func (r *MealPlanRepositoryImpl) ListDays(ctx context.Context, mealPlanID uint) ([]*mealplan.Day, error) {
	var modelList []*models.MealPlanDayModel

	query := preloadItems(db.GetTxFromContext(ctx, r.db)).
		Where("meal_plan_id = ?", mealPlanID).
		Order("date ASC")
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list meal plan days", "meal_plan_id", mealPlanID, "error", err)
		return nil, fmt.Errorf("failed to list meal plan days: %w", err)
	}

	return r.mapper.DaysToEntities(modelList), nil
}

// CreateDay creates a day under a plan.
func (r *MealPlanRepositoryImpl) CreateDay(ctx context.Context, day *mealplan.Day) error {
	model := r.mapper.DayToModel(day)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create meal plan day", "error", err)
		return fmt.Errorf("failed to create meal plan day: %w", err)
	}

	day.SetID(model.ID)

	r.logger.Infow("meal plan day created", "id", model.ID, "sid", model.SID, "date", model.Date)
	return nil
}

// GetDayBySID retrieves one day scoped by plan, nil on miss.
func (r *MealPlanRepositoryImpl) GetDayBySID(ctx context.Context, sid string, mealPlanID uint) (*mealplan.Day, error) {
	var model models.MealPlanDayModel

	query := preloadItems(db.GetTxFromContext(ctx, r.db)).
		Where("sid = ? AND meal_plan_id = ?", sid, mealPlanID)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get meal plan day by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get meal plan day: %w", err)
	}

	return r.mapper.DayToEntity(&model), nil
}

// DeleteDay removes a day and its items. Callers wrap this in a transaction.
func (r *MealPlanRepositoryImpl) DeleteDay(ctx context.Context, dayID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("day_id = ?", dayID).Delete(&models.MealPlanItemModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete meal plan items for day", "day_id", dayID, "error", err)
		return fmt.Errorf("failed to delete meal plan items: %w", err)
	}

	if err := tx.Delete(&models.MealPlanDayModel{}, dayID).Error; err != nil {
		r.logger.Errorw("failed to delete meal plan day", "id", dayID, "error", err)
		return fmt.Errorf("failed to delete meal plan day: %w", err)
	}

	r.logger.Infow("meal plan day deleted", "id", dayID)
	return nil
}

// CreateItem creates an item under a day.
func (r *MealPlanRepositoryImpl) CreateItem(ctx context.Context, item *mealplan.Item) error {
	model := r.mapper.ItemToModel(item)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create meal plan item", "error", err)
		return fmt.Errorf("failed to create meal plan item: %w", err)
	}

	item.SetID(model.ID)

	r.logger.Infow("meal plan item created", "id", model.ID, "sid", model.SID)
	return nil
}

// GetItemBySID retrieves one item scoped by day, nil on miss.
func (r *MealPlanRepositoryImpl) GetItemBySID(ctx context.Context, sid string, dayID uint) (*mealplan.Item, error) {
	var model models.MealPlanItemModel

	query := db.GetTxFromContext(ctx, r.db).
		Preload("Recipe").
		Where("sid = ? AND day_id = ?", sid, dayID)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get meal plan item by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get meal plan item: %w", err)
	}

	return r.mapper.ItemToEntity(&model), nil
}

// UpdateItem persists changed item fields.
func (r *MealPlanRepositoryImpl) UpdateItem(ctx context.Context, item *mealplan.Item) error {
	model := r.mapper.ItemToModel(item)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.MealPlanItemModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"meal_type":  model.MealType,
			"servings":   model.Servings,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update meal plan item", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update meal plan item: %w", result.Error)
	}

	return nil
}

// DeleteItem removes an item.
func (r *MealPlanRepositoryImpl) DeleteItem(ctx context.Context, itemID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).Delete(&models.MealPlanItemModel{}, itemID).Error; err != nil {
		r.logger.Errorw("failed to delete meal plan item", "id", itemID, "error", err)
		return fmt.Errorf("failed to delete meal plan item: %w", err)
	}

	r.logger.Infow("meal plan item deleted", "id", itemID)
	return nil
}
