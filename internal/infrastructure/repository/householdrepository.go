package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"larder/internal/domain/household"
	"larder/internal/infrastructure/persistence/mappers"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/db"
	"larder/internal/shared/logger"
)

// HouseholdRepositoryImpl implements the household.Repository interface.
type HouseholdRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.HouseholdMapper
	logger logger.Interface
}

// NewHouseholdRepository creates a new household repository instance.
func NewHouseholdRepository(gdb *gorm.DB, log logger.Interface) household.Repository {
	return &HouseholdRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewHouseholdMapper(),
		logger: log,
	}
}

// FindFirst retrieves the oldest household row, or nil when none exists.
func (r *HouseholdRepositoryImpl) FindFirst(ctx context.Context) (*household.Household, error) {
	var model models.HouseholdModel

	err := db.GetTxFromContext(ctx, r.db).Order("id ASC").First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to find household", "error", err)
		return nil, fmt.Errorf("failed to find household: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// Create creates a new household in the database.
func (r *HouseholdRepositoryImpl) Create(ctx context.Context, h *household.Household) error {
	model := r.mapper.ToModel(h)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create household", "error", err)
		return fmt.Errorf("failed to create household: %w", err)
	}

	h.SetID(model.ID)

	r.logger.Infow("household created", "id", model.ID, "sid", model.SID)
	return nil
}

// Update updates an existing household.
func (r *HouseholdRepositoryImpl) Update(ctx context.Context, h *household.Household) error {
	model := r.mapper.ToModel(h)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.HouseholdModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":       model.Name,
			"updated_at": model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update household", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update household: %w", result.Error)
	}

	return nil
}
