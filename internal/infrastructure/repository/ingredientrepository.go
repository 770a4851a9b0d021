package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"larder/internal/domain/catalog"
	"larder/internal/infrastructure/persistence/mappers"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/db"
	sharedErrors "larder/internal/shared/errors"
	"larder/internal/shared/logger"
)

// IngredientRepositoryImpl implements the catalog.Repository interface.
type IngredientRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.IngredientMapper
	logger logger.Interface
}

// NewIngredientRepository creates a new ingredient repository instance.
func NewIngredientRepository(gdb *gorm.DB, log logger.Interface) catalog.Repository {
	return &IngredientRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewIngredientMapper(),
		logger: log,
	}
}

// List retrieves all ingredients sorted by name.
func (r *IngredientRepositoryImpl) List(ctx context.Context) ([]*catalog.Ingredient, error) {
	var modelList []*models.IngredientModel

	if err := db.GetTxFromContext(ctx, r.db).Order("name ASC").Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list ingredients", "error", err)
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}

// Create creates a new catalog ingredient. The unique index on the name
// backs up the application-level duplicate check.
func (r *IngredientRepositoryImpl) Create(ctx context.Context, ingredient *catalog.Ingredient) error {
	model := r.mapper.ToModel(ingredient)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if sharedErrors.IsDuplicateError(err) {
			return catalog.ErrNameExists
		}
		r.logger.Errorw("failed to create ingredient", "error", err)
		return fmt.Errorf("failed to create ingredient: %w", err)
	}

	ingredient.SetID(model.ID)

	r.logger.Infow("ingredient created", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}

// GetBySID retrieves an ingredient by its public ID, nil on miss.
func (r *IngredientRepositoryImpl) GetBySID(ctx context.Context, sid string) (*catalog.Ingredient, error) {
	var model models.IngredientModel

	err := db.GetTxFromContext(ctx, r.db).Where("sid = ?", sid).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get ingredient by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	return r.mapper.ToEntity(&model), nil
}

// GetBySIDs retrieves ingredients for the given public IDs. Missing IDs
// are simply absent from the result.
func (r *IngredientRepositoryImpl) GetBySIDs(ctx context.Context, sids []string) ([]*catalog.Ingredient, error) {
	if len(sids) == 0 {
		return nil, nil
	}

	var modelList []*models.IngredientModel
	if err := db.GetTxFromContext(ctx, r.db).Where("sid IN ?", sids).Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to get ingredients by SIDs", "error", err)
		return nil, fmt.Errorf("failed to get ingredients: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}
