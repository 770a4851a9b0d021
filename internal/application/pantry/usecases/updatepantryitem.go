package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/pantry/dto"
	"larder/internal/domain/pantry"
	"larder/internal/shared/logger"
)

// UpdatePantryItemUseCase changes the availability of a pantry item.
type UpdatePantryItemUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     pantry.Repository
	logger   logger.Interface
}

// NewUpdatePantryItemUseCase creates a new UpdatePantryItemUseCase.
func NewUpdatePantryItemUseCase(resolver *householdUsecases.HouseholdResolver, repo pantry.Repository, logger logger.Interface) *UpdatePantryItemUseCase {
	return &UpdatePantryItemUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute updates the availability. Items outside the household map to
// ErrPantryItemNotFound.
func (uc *UpdatePantryItemUseCase) Execute(ctx context.Context, sid string, availability pantry.Availability) (*dto.PantryItemResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	item, err := uc.repo.GetBySID(ctx, sid, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to get pantry item", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get pantry item: %w", err)
	}
	if item == nil {
		return nil, pantry.ErrPantryItemNotFound
	}

	if err := item.UpdateAvailability(availability); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to update pantry item", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to update pantry item: %w", err)
	}

	uc.logger.Infow("pantry item updated", "sid", item.SID(), "availability", item.Availability().String())

	resp := dto.FromPantryItem(item, h.SID())
	return &resp, nil
}
