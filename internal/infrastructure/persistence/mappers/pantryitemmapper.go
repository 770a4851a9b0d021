package mappers

import (
	"larder/internal/domain/pantry"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/mapper"
)

// PantryItemMapper handles the conversion between domain entities and persistence models.
// ToEntity expects the Ingredient association to be preloaded.
type PantryItemMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.PantryItemModel) *pantry.PantryItem

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *pantry.PantryItem) *models.PantryItemModel

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.PantryItemModel) []*pantry.PantryItem
}

// PantryItemMapperImpl is the concrete implementation of PantryItemMapper.
type PantryItemMapperImpl struct{}

// NewPantryItemMapper creates a new pantry item mapper.
func NewPantryItemMapper() PantryItemMapper {
	return &PantryItemMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *PantryItemMapperImpl) ToEntity(model *models.PantryItemModel) *pantry.PantryItem {
	if model == nil {
		return nil
	}

	var ingredientSID, ingredientName, ingredientUnit string
	if model.Ingredient != nil {
		ingredientSID = model.Ingredient.SID
		ingredientName = model.Ingredient.Name
		ingredientUnit = model.Ingredient.Unit
	}

	return pantry.Reconstruct(
		model.ID,
		model.SID,
		model.HouseholdID,
		model.IngredientID,
		ingredientSID,
		ingredientName,
		ingredientUnit,
		pantry.Availability(model.Availability),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model.
func (m *PantryItemMapperImpl) ToModel(entity *pantry.PantryItem) *models.PantryItemModel {
	if entity == nil {
		return nil
	}

	return &models.PantryItemModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		HouseholdID:  entity.HouseholdID(),
		IngredientID: entity.IngredientID(),
		Availability: entity.Availability().String(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities.
func (m *PantryItemMapperImpl) ToEntities(modelList []*models.PantryItemModel) []*pantry.PantryItem {
	return mapper.MapSlicePtr(modelList, m.ToEntity)
}
