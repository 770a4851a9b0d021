package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// CreateDayUseCase adds a day to a plan. Duplicate dates within a plan are
// allowed.
type CreateDayUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewCreateDayUseCase creates a new CreateDayUseCase.
func NewCreateDayUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *CreateDayUseCase {
	return &CreateDayUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute creates the day under the plan with no items.
func (uc *CreateDayUseCase) Execute(ctx context.Context, planSID string, req dto.CreateDayRequest) (*dto.DayResponse, error) {
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

	day, err := mealplan.NewDay(plan.ID(), req.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to build day: %w", err)
	}

	if err := uc.repo.CreateDay(ctx, day); err != nil {
		uc.logger.Errorw("failed to create day", "plan", planSID, "error", err)
		return nil, fmt.Errorf("failed to create day: %w", err)
	}

	uc.logger.Infow("meal plan day created", "sid", day.SID(), "plan", plan.SID(), "date", day.Date())

	resp := dto.FromDay(day, plan.SID())
	return &resp, nil
}
