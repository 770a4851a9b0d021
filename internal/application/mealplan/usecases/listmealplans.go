package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// ListMealPlansUseCase lists a household's meal plans.
type ListMealPlansUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewListMealPlansUseCase creates a new ListMealPlansUseCase.
func NewListMealPlansUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *ListMealPlansUseCase {
	return &ListMealPlansUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute returns the plans, newest first.
func (uc *ListMealPlansUseCase) Execute(ctx context.Context) (*dto.ListMealPlansResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	plans, err := uc.repo.ListByHousehold(ctx, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to list meal plans", "error", err)
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}

	return &dto.ListMealPlansResponse{
		HouseholdID: h.SID(),
		MealPlans:   dto.FromMealPlans(plans, h.SID()),
	}, nil
}
