package usecases

import (
	"context"

	"larder/internal/application/household/dto"
)

// GetHouseholdUseCase returns the default household, creating it on first
// access.
type GetHouseholdUseCase struct {
	resolver *HouseholdResolver
}

// NewGetHouseholdUseCase creates a new GetHouseholdUseCase.
func NewGetHouseholdUseCase(resolver *HouseholdResolver) *GetHouseholdUseCase {
	return &GetHouseholdUseCase{resolver: resolver}
}

// Execute resolves the household and returns its DTO.
func (uc *GetHouseholdUseCase) Execute(ctx context.Context) (*dto.HouseholdResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.HouseholdResponse{
		ID:   h.SID(),
		Name: h.Name(),
	}, nil
}
