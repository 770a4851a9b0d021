package usecases

import (
	"context"
	"fmt"

	"larder/internal/application/ingredient/dto"
	"larder/internal/domain/catalog"
	"larder/internal/shared/logger"
)

// ListIngredientsUseCase returns the global ingredient catalog sorted by
// name.
type ListIngredientsUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

// NewListIngredientsUseCase creates a new ListIngredientsUseCase.
func NewListIngredientsUseCase(repo catalog.Repository, logger logger.Interface) *ListIngredientsUseCase {
	return &ListIngredientsUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute lists all ingredients.
func (uc *ListIngredientsUseCase) Execute(ctx context.Context) (*dto.ListIngredientsResponse, error) {
	ingredients, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ingredients", "error", err)
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	return &dto.ListIngredientsResponse{
		Ingredients: dto.FromIngredients(ingredients),
	}, nil
}
