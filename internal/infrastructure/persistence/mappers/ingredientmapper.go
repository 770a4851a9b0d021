package mappers

import (
	"larder/internal/domain/catalog"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/mapper"
)

// IngredientMapper handles the conversion between domain entities and persistence models.
type IngredientMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.IngredientModel) *catalog.Ingredient

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *catalog.Ingredient) *models.IngredientModel

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.IngredientModel) []*catalog.Ingredient
}

// IngredientMapperImpl is the concrete implementation of IngredientMapper.
type IngredientMapperImpl struct{}

// NewIngredientMapper creates a new ingredient mapper.
func NewIngredientMapper() IngredientMapper {
	return &IngredientMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *IngredientMapperImpl) ToEntity(model *models.IngredientModel) *catalog.Ingredient {
	if model == nil {
		return nil
	}

	return catalog.Reconstruct(
		model.ID,
		model.SID,
		model.Name,
		model.Unit,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model.
func (m *IngredientMapperImpl) ToModel(entity *catalog.Ingredient) *models.IngredientModel {
	if entity == nil {
		return nil
	}

	return &models.IngredientModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		Unit:      entity.Unit(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities.
func (m *IngredientMapperImpl) ToEntities(modelList []*models.IngredientModel) []*catalog.Ingredient {
	return mapper.MapSlicePtr(modelList, m.ToEntity)
}
