package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/mealplan/dto"
	"larder/internal/domain/mealplan"
	"larder/internal/domain/recipe"
	"larder/internal/shared/logger"
)

// CreateItemUseCase plans a recipe on a day.
type CreateItemUseCase struct {
	resolver   *householdUsecases.HouseholdResolver
	repo       mealplan.Repository
	recipeRepo recipe.Repository
	logger     logger.Interface
}

// NewCreateItemUseCase creates a new CreateItemUseCase.
func NewCreateItemUseCase(
	resolver *householdUsecases.HouseholdResolver,
	repo mealplan.Repository,
	recipeRepo recipe.Repository,
	logger logger.Interface,
) *CreateItemUseCase {
	return &CreateItemUseCase{
		resolver:   resolver,
		repo:       repo,
		recipeRepo: recipeRepo,
		logger:     logger,
	}
}

// Execute creates the item. The recipe lookup is scoped to the household,
// so a foreign recipe maps to ErrRecipeNotFound. The same recipe may be
// planned on a day more than once.
func (uc *CreateItemUseCase) Execute(ctx context.Context, planSID, daySID string, req dto.CreateItemRequest) (*dto.ItemResponse, error) {
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

	rec, err := uc.recipeRepo.GetBySID(ctx, req.RecipeID, h.ID())
	if err != nil {
		uc.logger.Errorw("failed to get recipe", "sid", req.RecipeID, "error", err)
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	if rec == nil {
		return nil, recipe.ErrRecipeNotFound
	}

	item, err := mealplan.NewItem(day.ID(), rec.ID(), req.MealType, req.Servings)
	if err != nil {
		return nil, fmt.Errorf("failed to build item: %w", err)
	}

	if err := uc.repo.CreateItem(ctx, item); err != nil {
		uc.logger.Errorw("failed to create item", "day", daySID, "error", err)
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	uc.logger.Infow("meal plan item created", "sid", item.SID(), "day", daySID, "recipe", rec.SID())

	// Reload so the recipe reference is populated.
	created, err := uc.repo.GetItemBySID(ctx, item.SID(), day.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to reload item: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("item %s missing after create", item.SID())
	}

	resp := dto.FromItem(created, day.SID())
	return &resp, nil
}
