package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// GetMealPlanUseCase retrieves one plan of the household.
type GetMealPlanUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewGetMealPlanUseCase creates a new GetMealPlanUseCase.
func NewGetMealPlanUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *GetMealPlanUseCase {
	return &GetMealPlanUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute returns the plan. Plans outside the household map to
// ErrMealPlanNotFound.
func (uc *GetMealPlanUseCase) Execute(ctx context.Context, sid string) (*dto.MealPlanDetailResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := uc.repo.GetBySID(ctx, sid, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to get meal plan", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get meal plan: %w", err)
	}
	if plan == nil {
		return nil, mealplan.ErrMealPlanNotFound
	}

	resp := dto.FromMealPlanDetail(plan, h.SID())
	return &resp, nil
}
