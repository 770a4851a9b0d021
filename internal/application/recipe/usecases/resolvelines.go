package usecases

import (
	"context"
	"strings"

	"larder/internal/application/recipe/dto"
	"larder/internal/domain/catalog"
	"larder/internal/domain/recipe"
)

// resolveLines validates a requested ingredient list and builds the domain
// line items, defaulting each unit from the referenced catalog ingredient.
// Shared by the create and replace flows.
func resolveLines(ctx context.Context, catalogRepo catalog.Repository, items []dto.IngredientLineRequest) ([]*recipe.RecipeIngredient, error) {
	if len(items) == 0 {
		return nil, nil
	}

	sids := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		if _, dup := seen[item.IngredientID]; dup {
			return nil, recipe.ErrDuplicateIngredient
		}
		seen[item.IngredientID] = struct{}{}
		sids = append(sids, item.IngredientID)
	}

	found, err := catalogRepo.GetBySIDs(ctx, sids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(sids) {
		return nil, recipe.ErrUnknownIngredient
	}
	bySID := make(map[string]*catalog.Ingredient, len(found))
	for _, ing := range found {
		bySID[ing.SID()] = ing
	}

	lines := make([]*recipe.RecipeIngredient, 0, len(items))
	for _, item := range items {
		ing := bySID[item.IngredientID]

		unit := ""
		if item.Unit != nil {
			unit = strings.TrimSpace(*item.Unit)
		}
		if unit == "" {
			unit = ing.Unit()
		}
		if unit == "" {
			return nil, recipe.ErrUnitMissing
		}

		line, err := recipe.NewRecipeIngredient(ing.ID(), item.Quantity, unit)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	return lines, nil
}
