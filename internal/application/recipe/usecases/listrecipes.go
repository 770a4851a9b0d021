package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/recipe/dto"
	"larder/internal/domain/recipe"
	"larder/internal/shared/logger"
)

// ListRecipesUseCase returns the household's recipes sorted by name, each
// with its ordered ingredient list.
type ListRecipesUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     recipe.Repository
	logger   logger.Interface
}

// NewListRecipesUseCase creates a new ListRecipesUseCase.
func NewListRecipesUseCase(resolver *householdUsecases.HouseholdResolver, repo recipe.Repository, logger logger.Interface) *ListRecipesUseCase {
	return &ListRecipesUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute lists the household's recipes.
func (uc *ListRecipesUseCase) Execute(ctx context.Context) (*dto.ListRecipesResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	recipes, err := uc.repo.ListByHousehold(ctx, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to list recipes", "error", err)
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return &dto.ListRecipesResponse{
		Recipes: dto.FromRecipes(recipes, h.SID()),
	}, nil
}
