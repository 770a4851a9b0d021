package mappers

import (
	"gorm.io/datatypes"

	"larder/internal/domain/person"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/mapper"
)

// PersonMapper handles the conversion between domain entities and persistence models.
type PersonMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.PersonModel) *person.Person

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *person.Person) *models.PersonModel

	// ToEntities converts multiple persistence models to domain entities.
	ToEntities(models []*models.PersonModel) []*person.Person
}

// PersonMapperImpl is the concrete implementation of PersonMapper.
type PersonMapperImpl struct{}

// NewPersonMapper creates a new person mapper.
func NewPersonMapper() PersonMapper {
	return &PersonMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *PersonMapperImpl) ToEntity(model *models.PersonModel) *person.Person {
	if model == nil {
		return nil
	}

	return person.Reconstruct(
		model.ID,
		model.SID,
		model.HouseholdID,
		model.Name,
		model.PortionFactor,
		[]string(model.DislikedIngredientIDs),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model. The disliked
// ingredient list is stored as a JSON array, never NULL.
func (m *PersonMapperImpl) ToModel(entity *person.Person) *models.PersonModel {
	if entity == nil {
		return nil
	}

	disliked := entity.DislikedIngredientIDs()
	if disliked == nil {
		disliked = []string{}
	}

	return &models.PersonModel{
		ID:                    entity.ID(),
		SID:                   entity.SID(),
		HouseholdID:           entity.HouseholdID(),
		Name:                  entity.Name(),
		PortionFactor:         entity.PortionFactor(),
		DislikedIngredientIDs: datatypes.NewJSONSlice(disliked),
		CreatedAt:             entity.CreatedAt(),
		UpdatedAt:             entity.UpdatedAt(),
	}
}

// ToEntities converts multiple persistence models to domain entities.
func (m *PersonMapperImpl) ToEntities(modelList []*models.PersonModel) []*person.Person {
	return mapper.MapSlicePtr(modelList, m.ToEntity)
}
