package usecases

import (
	"context"
	"fmt"

	householdUsecases "larder/internal/application/household/usecases"
	"larder/internal/application/pantry/dto"
	"larder/internal/domain/catalog"
	"larder/internal/domain/pantry"
	"larder/internal/shared/logger"
)

// CreatePantryItemUseCase adds a catalog ingredient to the household pantry.
type CreatePantryItemUseCase struct {
	resolver    *householdUsecases.HouseholdResolver
	repo        pantry.Repository
	catalogRepo catalog.Repository
	logger      logger.Interface
}

// NewCreatePantryItemUseCase creates a new CreatePantryItemUseCase.
func NewCreatePantryItemUseCase(
	resolver *householdUsecases.HouseholdResolver,
	repo pantry.Repository,
	catalogRepo catalog.Repository,
	logger logger.Interface,
) *CreatePantryItemUseCase {
	return &CreatePantryItemUseCase{
		resolver:    resolver,
		repo:        repo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute creates the pantry entry. An unknown ingredient maps to
// ErrIngredientNotFound, a (household, ingredient) duplicate to
// ErrAlreadyInPantry.
func (uc *CreatePantryItemUseCase) Execute(ctx context.Context, req dto.CreatePantryItemRequest) (*dto.PantryItemResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	ingredient, err := uc.catalogRepo.GetBySID(ctx, req.IngredientID)
	if err != nil {
		uc.logger.Errorw("failed to look up ingredient", "sid", req.IngredientID, "error", err)
		return nil, fmt.Errorf("failed to look up ingredient: %w", err)
	}
	if ingredient == nil {
		return nil, catalog.ErrIngredientNotFound
	}

	item, err := pantry.NewPantryItem(h.ID(), ingredient.ID(), req.Availability)
	if err != nil {
		return nil, fmt.Errorf("failed to build pantry item: %w", err)
	}

	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	uc.logger.Infow("pantry item created", "sid", item.SID(), "ingredient", ingredient.SID())

	// Reload so the ingredient reference is populated.
	created, err := uc.repo.GetBySID(ctx, item.SID(), h.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to reload pantry item: %w", err)
	}
	if created == nil {
		return nil, fmt.Errorf("pantry item %s missing after create", item.SID())
	}

	resp := dto.FromPantryItem(created, h.SID())
	return &resp, nil
}
