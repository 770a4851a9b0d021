package usecases

import (
	"context"
	"fmt"

	"larder/internal/application/ingredient/dto"
	"larder/internal/domain/catalog"
	"larder/internal/shared/logger"
)

// CreateIngredientUseCase creates a catalog ingredient, enforcing the
// case-insensitive name uniqueness rule.
type CreateIngredientUseCase struct {
	repo   catalog.Repository
	logger logger.Interface
}

// NewCreateIngredientUseCase creates a new CreateIngredientUseCase.
func NewCreateIngredientUseCase(repo catalog.Repository, logger logger.Interface) *CreateIngredientUseCase {
	return &CreateIngredientUseCase{
		repo:   repo,
		logger: logger,
	}
}

// Execute creates the ingredient. Uniqueness is checked case-insensitively
// in application code first; the DB unique index catches the remaining
// race window and exact-case duplicates, both mapped to ErrNameExists.
func (uc *CreateIngredientUseCase) Execute(ctx context.Context, req dto.CreateIngredientRequest) (*dto.IngredientResponse, error) {
	existing, err := uc.repo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to check ingredient names", "error", err)
		return nil, fmt.Errorf("failed to check ingredient names: %w", err)
	}
	for _, ing := range existing {
		if ing.NameEquals(req.Name) {
			return nil, catalog.ErrNameExists
		}
	}

	ingredient, err := catalog.NewIngredient(req.Name, req.Unit)
	if err != nil {
		return nil, fmt.Errorf("failed to build ingredient: %w", err)
	}

	if err := uc.repo.Create(ctx, ingredient); err != nil {
		return nil, err
	}

	uc.logger.Infow("ingredient created", "sid", ingredient.SID(), "name", ingredient.Name())

	resp := dto.FromIngredient(ingredient)
	return &resp, nil
}
