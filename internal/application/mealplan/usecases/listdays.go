package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// ListDaysUseCase lists the days of a plan with their items.
type ListDaysUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewListDaysUseCase creates a new ListDaysUseCase.
func NewListDaysUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *ListDaysUseCase {
	return &ListDaysUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute returns the plan's days in date order, each with its items.
func (uc *ListDaysUseCase) Execute(ctx context.Context, planSID string) (*dto.ListDaysResponse, error) {
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

	days, err := uc.repo.ListDays(ctx, plan.ID())
	if err != nil {
		uc.logger.Errorw("failed to list days", "plan", planSID, "error", err)
		return nil, fmt.Errorf("failed to list days: %w", err)
	}

	return &dto.ListDaysResponse{
		MealPlanID: plan.SID(),
		Days:       dto.FromDays(days, plan.SID()),
	}, nil
}
