package mappers

import (
	"larder/internal/domain/mealplan"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/mapper"
)

// MealPlanMapper handles the conversion between meal plan aggregates and
// persistence models. Day mapping expects the Items association (with its
// nested Recipe) to be preloaded.
type MealPlanMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.MealPlanModel) *mealplan.MealPlan

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *mealplan.MealPlan) *models.MealPlanModel

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.MealPlanModel) []*mealplan.MealPlan

	// DayToEntity converts a day model, including its preloaded items.
	DayToEntity(model *models.MealPlanDayModel) *mealplan.Day

	// DayToModel converts a day entity to a persistence model.
	DayToModel(entity *mealplan.Day) *models.MealPlanDayModel

	// DaysToEntities converts multiple day models to domain entities.
	DaysToEntities(models []*models.MealPlanDayModel) []*mealplan.Day

	// ItemToEntity converts an item model, carrying the joined recipe fields.
	ItemToEntity(model *models.MealPlanItemModel) *mealplan.Item

	// ItemToModel converts an item entity to a persistence model.
	ItemToModel(entity *mealplan.Item) *models.MealPlanItemModel
}

// MealPlanMapperImpl is the concrete implementation of MealPlanMapper.
type MealPlanMapperImpl struct{}

// NewMealPlanMapper creates a new meal plan mapper.
func NewMealPlanMapper() MealPlanMapper {
	return &MealPlanMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *MealPlanMapperImpl) ToEntity(model *models.MealPlanModel) *mealplan.MealPlan {
	if model == nil {
		return nil
	}

	return mealplan.ReconstructMealPlan(
		model.ID,
		model.SID,
		model.HouseholdID,
		model.Name,
		mealplan.Status(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model.
func (m *MealPlanMapperImpl) ToModel(entity *mealplan.MealPlan) *models.MealPlanModel {
	if entity == nil {
		return nil
	}

	return &models.MealPlanModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		HouseholdID: entity.HouseholdID(),
		Name:        entity.Name(),
		Status:      entity.Status().String(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities.
func (m *MealPlanMapperImpl) ToEntities(modelList []*models.MealPlanModel) []*mealplan.MealPlan {
	return mapper.MapSlicePtr(modelList, m.ToEntity)
}

// DayToEntity converts a day model, including its preloaded items.
func (m *MealPlanMapperImpl) DayToEntity(model *models.MealPlanDayModel) *mealplan.Day {
	if model == nil {
		return nil
	}

	items := make([]*mealplan.Item, 0, len(model.Items))
	for i := range model.Items {
		items = append(items, m.ItemToEntity(&model.Items[i]))
	}

	return mealplan.ReconstructDay(
		model.ID,
		model.SID,
		model.MealPlanID,
		model.Date,
		model.CreatedAt,
		model.UpdatedAt,
		items,
	)
}

// DayToModel converts a day entity to a persistence model. Items are
// persisted separately.
func (m *MealPlanMapperImpl) DayToModel(entity *mealplan.Day) *models.MealPlanDayModel {
	if entity == nil {
		return nil
	}

	return &models.MealPlanDayModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		MealPlanID: entity.MealPlanID(),
		Date:       entity.Date(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

// DaysToEntities converts multiple day models to domain entities.
func (m *MealPlanMapperImpl) DaysToEntities(modelList []*models.MealPlanDayModel) []*mealplan.Day {
	return mapper.MapSlicePtr(modelList, m.DayToEntity)
}

// ItemToEntity converts an item model, carrying the joined recipe fields.
func (m *MealPlanMapperImpl) ItemToEntity(model *models.MealPlanItemModel) *mealplan.Item {
	if model == nil {
		return nil
	}

	var recipeSID, recipeName string
	if model.Recipe != nil {
		recipeSID = model.Recipe.SID
		recipeName = model.Recipe.Name
	}

	return mealplan.ReconstructItem(
		model.ID,
		model.SID,
		model.DayID,
		model.RecipeID,
		recipeSID,
		recipeName,
		mealplan.MealType(model.MealType),
		model.Servings,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ItemToModel converts an item entity to a persistence model.
func (m *MealPlanMapperImpl) ItemToModel(entity *mealplan.Item) *models.MealPlanItemModel {
	if entity == nil {
		return nil
	}

	return &models.MealPlanItemModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		DayID:     entity.DayID(),
		RecipeID:  entity.RecipeID(),
		MealType:  entity.MealType().String(),
		Servings:  entity.Servings(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
