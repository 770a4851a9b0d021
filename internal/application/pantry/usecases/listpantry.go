package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/pantry/dto"
	"larder/internal/domain/pantry"
	"larder/internal/shared/logger"
)

// ListPantryUseCase lists a household's pantry items.
type ListPantryUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     pantry.Repository
	logger   logger.Interface
}

// NewListPantryUseCase creates a new ListPantryUseCase.
func NewListPantryUseCase(resolver *householdUsecases.HouseholdResolver, repo pantry.Repository, logger logger.Interface) *ListPantryUseCase {
	return &ListPantryUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute returns the pantry ordered by ingredient name.
func (uc *ListPantryUseCase) Execute(ctx context.Context) (*dto.ListPantryResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	items, err := uc.repo.ListByHousehold(ctx, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to list pantry items", "error", err)
		return nil, fmt.Errorf("failed to list pantry items: %w", err)
	}

	return &dto.ListPantryResponse{
		HouseholdID: h.SID(),
		Items:       dto.FromPantryItems(items, h.SID()),
	}, nil
}
