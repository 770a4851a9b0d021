package mappers

import (
	"larder/internal/domain/recipe"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/mapper"
)

// RecipeMapper handles the conversion between domain entities and persistence models.
// ToEntity expects the Ingredients association (with its nested Ingredient)
// to be preloaded so the joined catalog fields survive reconstruction.
type RecipeMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.RecipeModel) *recipe.Recipe

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *recipe.Recipe) *models.RecipeModel

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.RecipeModel) []*recipe.Recipe

	// LineToModel converts one ingredient line item for the given recipe row.
	LineToModel(entity *recipe.RecipeIngredient, recipeID uint) *models.RecipeIngredientModel
}

// RecipeMapperImpl is the concrete implementation of RecipeMapper.
type RecipeMapperImpl struct{}

// NewRecipeMapper creates a new recipe mapper.
func NewRecipeMapper() RecipeMapper {
	return &RecipeMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *RecipeMapperImpl) ToEntity(model *models.RecipeModel) *recipe.Recipe {
	if model == nil {
		return nil
	}

	lines := make([]*recipe.RecipeIngredient, 0, len(model.Ingredients))
	for i := range model.Ingredients {
		lines = append(lines, m.lineToEntity(&model.Ingredients[i]))
	}

	return recipe.Reconstruct(
		model.ID,
		model.SID,
		model.HouseholdID,
		model.Name,
		model.Description,
		model.Servings,
		model.Instructions,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
		lines,
	)
}

// ToModel converts a domain entity to a persistence model. Ingredient line
// items are persisted separately so the association stays under explicit
// repository control.
func (m *RecipeMapperImpl) ToModel(entity *recipe.Recipe) *models.RecipeModel {
	if entity == nil {
		return nil
	}

	return &models.RecipeModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		HouseholdID:  entity.HouseholdID(),
		Name:         entity.Name(),
		Description:  entity.Description(),
		Servings:     entity.Servings(),
		Instructions: entity.Instructions(),
		Notes:        entity.Notes(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities.
func (m *RecipeMapperImpl) ToEntities(modelList []*models.RecipeModel) []*recipe.Recipe {
	return mapper.MapSlicePtr(modelList, m.ToEntity)
}

// LineToModel converts one ingredient line item for the given recipe row.
func (m *RecipeMapperImpl) LineToModel(entity *recipe.RecipeIngredient, recipeID uint) *models.RecipeIngredientModel {
	if entity == nil {
		return nil
	}

	return &models.RecipeIngredientModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		RecipeID:     recipeID,
		IngredientID: entity.IngredientID(),
		Quantity:     entity.Quantity(),
		Unit:         entity.Unit(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

func (m *RecipeMapperImpl) lineToEntity(model *models.RecipeIngredientModel) *recipe.RecipeIngredient {
	var ingredientSID, ingredientName, ingredientUnit string
	if model.Ingredient != nil {
		ingredientSID = model.Ingredient.SID
		ingredientName = model.Ingredient.Name
		ingredientUnit = model.Ingredient.Unit
	}

	return recipe.ReconstructRecipeIngredient(
		model.ID,
		model.SID,
		model.RecipeID,
		model.IngredientID,
		ingredientSID,
		ingredientName,
		ingredientUnit,
		model.Quantity,
		model.Unit,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
