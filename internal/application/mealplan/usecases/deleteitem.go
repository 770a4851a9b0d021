package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// DeleteItemUseCase removes a planned meal from a day.
type DeleteItemUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase.
func NewDeleteItemUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute deletes the item after resolving plan, day and item in order.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, planSID, daySID, itemSID string) error {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	plan, err := uc.repo.GetBySID(ctx, planSID, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to get meal plan", "sid", planSID, "error", err)
		return fmt.Errorf("failed to get meal plan: %w", err)
	}
	if plan == nil {
		return mealplan.ErrMealPlanNotFound
	}

	day, err := uc.repo.GetDayBySID(ctx, daySID, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to get day", "sid", daySID, "error", err)
		return fmt.Errorf("failed to get day: %w", err)
	}
	if day == nil {
		return mealplan.ErrDayNotFound
	}

	item, err := uc.repo.GetItemBySID(ctx, itemSID, day.ID())
	if err != nil {
		uc.logger.Errorw("failed to get item", "sid", itemSID, "error", err)
		return fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return mealplan.ErrItemNotFound
	}

	if err := uc.repo.DeleteItem(ctx, item.ID()); err != nil {
		uc.logger.Errorw("failed to delete item", "sid", itemSID, "error", err)
		return fmt.Errorf("failed to delete item: %w", err)
	}

	uc.logger.Infow("meal plan item deleted", "sid", itemSID, "day", daySID)
	return nil
}
