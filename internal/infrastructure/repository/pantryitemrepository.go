package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"larder/internal/domain/pantry"
	"larder/internal/infrastructure/persistence/mappers"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/db"
	sharedErrors "larder/internal/shared/errors"
	"larder/internal/shared/logger"
)

// PantryItemRepositoryImpl implements the pantry.Repository interface.
type PantryItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PantryItemMapper
	logger logger.Interface
}

// NewPantryItemRepository creates a new pantry item repository instance.
func NewPantryItemRepository(gdb *gorm.DB, log logger.Interface) pantry.Repository {
	return &PantryItemRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewPantryItemMapper(),
		logger: log,
	}
}

// ListByHousehold retrieves a household's pantry ordered by the referenced
// ingredient's name.
func (r *PantryItemRepositoryImpl) ListByHousehold(ctx context.Context, householdID uint) ([]*pantry.PantryItem, error) {
	var modelList []*models.PantryItemModel

	query := db.GetTxFromContext(ctx, r.db).
		Select("pantry_items.*").
		Joins("JOIN ingredients ON ingredients.id = pantry_items.ingredient_id").
		Where("pantry_items.household_id = ?", householdID).
		Order("ingredients.name ASC").
		Preload("Ingredient")
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list pantry items", "household_id", householdID, "error", err)
		return nil, fmt.Errorf("failed to list pantry items: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}

// Create creates a pantry entry. A (household, ingredient) duplicate maps
// to ErrAlreadyInPantry via the composite unique index.
func (r *PantryItemRepositoryImpl) Create(ctx context.Context, item *pantry.PantryItem) error {
	model := r.mapper.ToModel(item)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return pantry.ErrAlreadyInPantry
		}
		r.logger.Errorw("failed to create pantry item", "error", err)
		return fmt.Errorf("failed to create pantry item: %w", err)
	}

	item.SetID(model.ID)

	r.logger.Infow("pantry item created", "id", model.ID, "sid", model.SID)
	return nil
}

// GetBySID retrieves a pantry item scoped by household, nil on miss.
func (r *PantryItemRepositoryImpl) GetBySID(ctx context.Context, sid string, householdID uint) (*pantry.PantryItem, error) {
	var model models.PantryItemModel

	query := db.GetTxFromContext(ctx, r.db).
		Preload("Ingredient").
		Where("sid = ? AND household_id = ?", sid, householdID)
	if err := query.First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get pantry item by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get pantry item: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Update persists a changed pantry item.
func (r *PantryItemRepositoryImpl) Update(ctx context.Context, item *pantry.PantryItem) error {
	model := r.mapper.ToModel(item)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.PantryItemModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"availability": model.Availability,
			"updated_at":   model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update pantry item", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update pantry item: %w", result.Error)
	}

	return nil
}
