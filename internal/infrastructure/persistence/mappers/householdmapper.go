package mappers

import (
	"larder/internal/domain/household"
	"larder/internal/infrastructure/persistence/models"
)

// HouseholdMapper handles the conversion between domain entities and persistence models.
type HouseholdMapper interface {
	// ToEntity converts a persistence model to a domain entity.
	ToEntity(model *models.HouseholdModel) *household.Household

	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *household.Household) *models.HouseholdModel
}

// HouseholdMapperImpl is the concrete implementation of HouseholdMapper.
type HouseholdMapperImpl struct{}

// NewHouseholdMapper creates a new household mapper.
func NewHouseholdMapper() HouseholdMapper {
	return &HouseholdMapperImpl{}
}

// ToEntity converts a persistence model to a domain entity.
func (m *HouseholdMapperImpl) ToEntity(model *models.HouseholdModel) *household.Household {
	if model == nil {
		return nil
	}

	return household.Reconstruct(
		model.ID,
		model.SID,
		model.Name,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model.
func (m *HouseholdMapperImpl) ToModel(entity *household.Household) *models.HouseholdModel {
	if entity == nil {
		return nil
	}

	return &models.HouseholdModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
