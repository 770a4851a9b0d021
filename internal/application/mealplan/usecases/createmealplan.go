package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// CreateMealPlanUseCase creates a meal plan for the household.
type CreateMealPlanUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewCreateMealPlanUseCase creates a new CreateMealPlanUseCase.
func NewCreateMealPlanUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *CreateMealPlanUseCase {
	return &CreateMealPlanUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute creates the plan with no days or items.
func (uc *CreateMealPlanUseCase) Execute(ctx context.Context, req dto.CreateMealPlanRequest) (*dto.MealPlanResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := mealplan.NewMealPlan(h.ID(), req.Name, req.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to build meal plan: %w", err)
	}

	if err := uc.repo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to create meal plan", "error", err)
		return nil, fmt.Errorf("failed to create meal plan: %w", err)
	}

	uc.logger.Infow("meal plan created", "sid", plan.SID(), "name", plan.Name())

	resp := dto.FromMealPlan(plan, h.SID())
	return &resp, nil
}
