package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/logger"
)

// GetDayUseCase retrieves one day of a plan. Handlers use it to resolve
// the plan and day path segments before touching the request body.
type GetDayUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	logger   logger.Interface
}

// NewGetDayUseCase creates a new GetDayUseCase.
func NewGetDayUseCase(resolver *householdUsecases.HouseholdResolver, repo mealplan.Repository, logger logger.Interface) *GetDayUseCase {
	return &GetDayUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute returns the day. A missing plan is reported before a missing
// day.
func (uc *GetDayUseCase) Execute(ctx context.Context, planSID, daySID string) (*dto.DayResponse, error) {
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

	resp := dto.FromDay(day, plan.SID())
	return &resp, nil
}
