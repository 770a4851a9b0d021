package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// UpdateItemUseCase changes the meal type or servings of a planned meal.
type UpdateItemUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase.
func NewUpdateItemUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute applies the partial update. Each level of the path is resolved
// in order, so a missing plan is reported before a missing day or item.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, planSID, daySID, itemSID string, req dto.UpdateItemRequest) (*dto.ItemResponse, error) {
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

	if req.MealType != nil {
		if err := item.UpdateMealType(*req.MealType); err != nil {
			return nil, err
		}
	}
	if req.Servings != nil {
		if err := item.UpdateServings(*req.Servings); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.UpdateItem(ctx, item); err != nil {
		uc.logger.Errorw("failed to update item", "sid", itemSID, "error", err)
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	uc.logger.Infow("meal plan item updated", "sid", itemSID, "day", daySID)

	resp := dto.FromItem(item, day.SID())
	return &resp, nil
}
