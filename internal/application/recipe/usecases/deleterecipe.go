package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/domain/recipe"
	"larder/internal/shared/db"
	"larder/internal/shared/logger"
)

// DeleteRecipeUseCase removes a recipe and its ingredient rows.
type DeleteRecipeUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     recipe.Repository
	tm       *db.TransactionManager
	logger   logger.Interface
}

// NewDeleteRecipeUseCase creates a new DeleteRecipeUseCase.
func NewDeleteRecipeUseCase(
	resolver *householdUsecases.HouseholdResolver,
	repo recipe.Repository,
	tm *db.TransactionManager,
	logger logger.Interface,
) *DeleteRecipeUseCase {
	return &DeleteRecipeUseCase{
		resolver: resolver,
		repo:     repo,
		tm:       tm,
		logger:   logger,
	}
}

// Execute deletes the recipe. The row lookup and the cascading deletes run
// in one transaction.
func (uc *DeleteRecipeUseCase) Execute(ctx context.Context, sid string) error {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return err
	}

	rec, err := uc.repo.GetBySID(ctx, sid, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to get recipe", "sid", sid, "error", err)
		return fmt.Errorf("failed to get recipe: %w", err)
	}
	if rec == nil {
		return recipe.ErrRecipeNotFound
	}

	if err := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.repo.Delete(txCtx, rec.ID())
	}); err != nil {
		uc.logger.Errorw("failed to delete recipe", "sid", sid, "error", err)
		return err
	}

	uc.logger.Infow("recipe deleted", "sid", sid)
	return nil
}
