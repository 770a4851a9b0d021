package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/person/dto"
	"larder/internal/domain/person"
	"larder/internal/shared/logger"
)

// ListPeopleUseCase lists a household's members.
type ListPeopleUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     person.Repository
	logger   logger.Interface
}

// NewListPeopleUseCase creates a new ListPeopleUseCase.
func NewListPeopleUseCase(resolver *householdUsecases.HouseholdResolver, repo person.Repository, logger logger.Interface) *ListPeopleUseCase {
	return &ListPeopleUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute returns the members ordered by name.
func (uc *ListPeopleUseCase) Execute(ctx context.Context) (*dto.ListPeopleResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	people, err := uc.repo.ListByHousehold(ctx, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to list people", "error", err)
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	return &dto.ListPeopleResponse{
		HouseholdID: h.SID(),
		People:      dto.FromPeople(people, h.SID()),
	}, nil
}
