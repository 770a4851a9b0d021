package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/recipe/dto"
	"larder/internal/domain/catalog"
	"larder/internal/domain/recipe"
	"larder/internal/shared/db"
	"larder/internal/shared/logger"
)

// ReplaceIngredientsUseCase replaces a recipe's entire ingredient list.
// Delete-then-insert runs in one transaction: on any failure the original
// list stays untouched.
type ReplaceIngredientsUseCase struct {
	resolver    *householdUsecases.HouseholdResolver
	repo        recipe.Repository
	catalogRepo catalog.Repository
	tm          *db.TransactionManager
	logger      logger.Interface
}

// NewReplaceIngredientsUseCase creates a new ReplaceIngredientsUseCase.
func NewReplaceIngredientsUseCase(
	resolver *householdUsecases.HouseholdResolver,
	repo recipe.Repository,
	catalogRepo catalog.Repository,
	tm *db.TransactionManager,
	logger logger.Interface,
) *ReplaceIngredientsUseCase {
	return &ReplaceIngredientsUseCase{
		resolver:    resolver,
		repo:        repo,
		catalogRepo: catalogRepo,
		tm:          tm,
		logger:      logger,
	}
}

// Execute validates the new list and swaps it in atomically. An empty list
// is valid and leaves the recipe with zero ingredients.
func (uc *ReplaceIngredientsUseCase) Execute(ctx context.Context, sid string, items []dto.IngredientLineRequest) (*dto.RecipeIngredientsResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := uc.repo.GetBySID(ctx, sid, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to get recipe", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if rec == nil {
		return nil, recipe.ErrRecipeNotFound
	}

	lines, err := resolveLines(ctx, uc.catalogRepo, items)
	if err != nil {
		return nil, err
	}

	if err := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.repo.ReplaceIngredients(txCtx, rec.ID(), lines)
	}); err != nil {
		uc.logger.Errorw("failed to replace recipe ingredients", "sid", sid, "error", err)
		return nil, err
	}

	full, err := uc.repo.GetBySID(ctx, sid, h.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to reload recipe: %w", err)
	}
	if full == nil {
		return nil, recipe.ErrRecipeNotFound
	}

	uc.logger.Infow("recipe ingredients replaced", "sid", sid, "count", len(lines))

	resp := dto.FromRecipeIngredients(full)
	return &resp, nil
}
