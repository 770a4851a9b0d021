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

// CreateRecipeUseCase creates a recipe together with its ingredient line
// items in one transaction.
type CreateRecipeUseCase struct {
	resolver    *householdUsecases.HouseholdResolver
	repo        recipe.Repository
	catalogRepo catalog.Repository
	tm          *db.TransactionManager
	logger      logger.Interface
}

// NewCreateRecipeUseCase creates a new CreateRecipeUseCase.
func NewCreateRecipeUseCase(
	resolver *householdUsecases.HouseholdResolver,
	repo recipe.Repository,
	catalogRepo catalog.Repository,
	tm *db.TransactionManager,
	logger logger.Interface,
) *CreateRecipeUseCase {
	return &CreateRecipeUseCase{
		resolver:    resolver,
		repo:        repo,
		catalogRepo: catalogRepo,
		tm:          tm,
		logger:      logger,
	}
}

// Execute validates the ingredient list, then creates the recipe row and
// its line items atomically. Any failure leaves no recipe behind.
func (uc *CreateRecipeUseCase) Execute(ctx context.Context, req dto.CreateRecipeRequest) (*dto.RecipeResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	lines, err := resolveLines(ctx, uc.catalogRepo, req.Ingredients)
	if err != nil {
		return nil, err
	}

	rec, err := recipe.NewRecipe(h.ID(), req.Name, req.Description, req.Servings, req.Instructions, req.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to build recipe: %w", err)
	}
	rec.SetIngredients(lines)

	if err := uc.tm.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.repo.Create(txCtx, rec)
	}); err != nil {
		uc.logger.Errorw("failed to create recipe", "error", err)
		return nil, err
	}

	// Reload so the response carries the joined catalog fields in
	// ingredient-name order.
	full, err := uc.repo.GetBySID(ctx, rec.SID(), h.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to reload recipe: %w", err)
	}
	if full == nil {
		return nil, fmt.Errorf("recipe disappeared after create")
	}

	uc.logger.Infow("recipe created", "sid", rec.SID(), "name", rec.Name(), "ingredients", len(lines))

	resp := dto.FromRecipe(full, h.SID())
	return &resp, nil
}
