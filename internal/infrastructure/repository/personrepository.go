package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"larder/internal/domain/person"
	"larder/internal/infrastructure/persistence/mappers"
	"larder/internal/infrastructure/persistence/models"
	"larder/internal/shared/db"
	"larder/internal/shared/logger"
)

// PersonRepositoryImpl implements the person.Repository interface.
type PersonRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PersonMapper
	logger logger.Interface
}

// NewPersonRepository creates a new person repository instance.
func NewPersonRepository(gdb *gorm.DB, log logger.Interface) person.Repository {
	return &PersonRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewPersonMapper(),
		logger: log,
	}
}

// ListByHousehold retrieves a household's members sorted by name.
func (r *PersonRepositoryImpl) ListByHousehold(ctx context.Context, householdID uint) ([]*person.Person, error) {
	var modelList []*models.PersonModel

	query := db.GetTxFromContext(ctx, r.db).
		Where("household_id = ?", householdID).
		Order("name ASC")
	if err := query.Find(&modelList).Error; err != nil {
		r.logger.Errorw("failed to list people", "household_id", householdID, "error", err)
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	return r.mapper.ToEntities(modelList), nil
}

// Create creates a new person in the database.
func (r *PersonRepositoryImpl) Create(ctx context.Context, p *person.Person) error {
	model := r.mapper.ToModel(p)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create person", "error", err)
		return fmt.Errorf("failed to create person: %w", err)
	}

	p.SetID(model.ID)

	r.logger.Infow("person created", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}
