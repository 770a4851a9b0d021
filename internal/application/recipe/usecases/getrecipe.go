package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/recipe/dto"
	"larder/internal/domain/recipe"
	"larder/internal/shared/logger"
)

// GetRecipeUseCase returns one recipe scoped by household.
type GetRecipeUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     recipe.Repository
	logger   logger.Interface
}

// NewGetRecipeUseCase creates a new GetRecipeUseCase.
func NewGetRecipeUseCase(resolver *householdUsecases.HouseholdResolver, repo recipe.Repository, logger logger.Interface) *GetRecipeUseCase {
	return &GetRecipeUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute fetches the recipe. A SID under another household behaves
// exactly like a miss.
func (uc *GetRecipeUseCase) Execute(ctx context.Context, sid string) (*dto.RecipeResponse, error) {
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

	resp := dto.FromRecipe(rec, h.SID())
	return &resp, nil
}
