package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/person/dto"
	"larder/internal/domain/person"
	"larder/internal/shared/logger"
)

// CreatePersonUseCase adds a member to the household.
type CreatePersonUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     person.Repository
	logger   logger.Interface
}

// NewCreatePersonUseCase creates a new CreatePersonUseCase.
func NewCreatePersonUseCase(resolver *householdUsecases.HouseholdResolver, repo person.Repository, logger logger.Interface) *CreatePersonUseCase {
	return &CreatePersonUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute creates the person with an empty disliked ingredient list.
func (uc *CreatePersonUseCase) Execute(ctx context.Context, req dto.CreatePersonRequest) (*dto.PersonResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	p, err := person.NewPerson(h.ID(), req.Name, req.PortionFactor)
	if err != nil {
		return nil, fmt.Errorf("failed to build person: %w", err)
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to create person", "error", err)
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	uc.logger.Infow("person created", "sid", p.SID(), "name", p.Name())

	resp := dto.FromPerson(p, h.SID())
	return &resp, nil
}
