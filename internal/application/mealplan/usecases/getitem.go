package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// GetItemUseCase retrieves one planned meal. Handlers use it to resolve
// the full plan/day/item path before touching the request body.
type GetItemUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewGetItemUseCase creates a new GetItemUseCase.
func NewGetItemUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *GetItemUseCase {
	return &GetItemUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute returns the item. Parent misses are reported top-down: plan,
// then day, then item.
func (uc *GetItemUseCase) Execute(ctx context.Context, planSID, daySID, itemSID string) (*dto.ItemResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := uc.repo.GetBySID(ctx, planSID, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to get meal plan", "sid", planSID, "error", err)
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	if plan == nil {
		return nil, mealplan.ErrMealPlanNotFound
	}

	day, err := uc.repo.GetDayBySID(ctx, daySID, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to get day", "sid", daySID, "error", err)
		return nil, fmt.Errorf("failed to get day: %w", err)
	}
	if day == nil {
		return nil, mealplan.ErrDayNotFound
	}

	item, err := uc.repo.GetItemBySID(ctx, itemSID, day.ID())
	if err != nil {
		uc.logger.Errorw("failed to get item", "sid", itemSID, "error", err)
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, mealplan.ErrItemNotFound
	}

	resp := dto.FromItem(item, day.SID())
	return &resp, nil
}
