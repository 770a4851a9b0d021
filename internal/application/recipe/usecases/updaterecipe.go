package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/recipe/dto"
	"larder/internal/domain/recipe"
	"larder/internal/shared/logger"
)

// UpdateRecipeUseCase applies a partial update to a recipe's own fields.
// The ingredient list has its own replacement flow.
type UpdateRecipeUseCase struct {
	resolver *householdUsecases.HouseholdResolver
	repo     recipe.Repository
	logger   logger.Interface
}

// NewUpdateRecipeUseCase creates a new UpdateRecipeUseCase.
func NewUpdateRecipeUseCase(resolver *householdUsecases.HouseholdResolver, repo recipe.Repository, logger logger.Interface) *UpdateRecipeUseCase {
	return &UpdateRecipeUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute applies the present fields and persists the recipe.
func (uc *UpdateRecipeUseCase) Execute(ctx context.Context, sid string, req dto.UpdateRecipeRequest) (*dto.RecipeResponse, error) {
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

	if req.Name != nil {
		if err := rec.Rename(*req.Name); err != nil {
			return nil, fmt.Errorf("failed to rename recipe: %w", err)
		}
	}
	if req.DescriptionSet {
		rec.UpdateDescription(req.Description)
	}
	if req.Servings != nil {
		if err := rec.UpdateServings(*req.Servings); err != nil {
			return nil, fmt.Errorf("failed to update servings: %w", err)
		}
	}
	if req.Instructions != nil {
		if err := rec.UpdateInstructions(*req.Instructions); err != nil {
			return nil, fmt.Errorf("failed to update instructions: %w", err)
		}
	}
	if req.NotesSet {
		rec.UpdateNotes(req.Notes)
	}

	if err := uc.repo.Update(ctx, rec); err != nil {
		uc.logger.Errorw("failed to update recipe", "sid", sid, "error", err)
		return nil, err
	}

	uc.logger.Infow("recipe updated", "sid", sid)

	resp := dto.FromRecipe(rec, h.SID())
	return &resp, nil
}
