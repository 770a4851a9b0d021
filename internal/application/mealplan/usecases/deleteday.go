package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/domain/mealplan"
	"larder/internal/shared/db"
	"larder/internal/shared/logger"
)

// DeleteDayUseCase removes a day and everything planned on it.
type DeleteDayUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     mealplan.Repository
	tm       *db.TransactionManager
	logger   logger.Interface
}

// NewDeleteDayUseCase creates a new DeleteDayUseCase.
func NewDeleteDayUseCase(
	resolver *householdUsecases.HouseholdResolver,
	repo mealplan.Repository,
	tm *db.TransactionManager,
	logger logger.Interface,
) *DeleteDayUseCase {
	return &DeleteDayUseCase{
		resolver: resolver,
		repo:     repo,
		tm:       tm,
		logger:   logger,
	}
}

// Execute deletes the day. The item and day deletes run in one
// transaction.
func (uc *DeleteDayUseCase) Execute(ctx context.Context, planSID, daySID string) error {
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

	if err := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.repo.DeleteDay(txCtx, day.ID())
	}); err != nil {
		uc.logger.Errorw("failed to delete day", "sid", daySID, "error", err)
		return err
	}

	uc.logger.Infow("meal plan day deleted", "sid", daySID, "plan", planSID)
	return nil
}
