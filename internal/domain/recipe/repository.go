package recipe

import "context"

// Repository defines the interface for recipe persistence operations.
// All lookups are scoped by household ID; a match under the wrong
// household behaves exactly like a miss.
type Repository interface {
	// ListByHousehold retrieves all recipes of a household sorted by
	// name, each with its ingredient list ordered by ingredient name
	ListByHousehold(ctx context.Context, householdID uint) ([]*Recipe, error)

	// GetBySID retrieves one recipe with its ingredient list, nil on miss
	GetBySID(ctx context.Context, sid string, householdID uint) (*Recipe, error)

	// Create persists the recipe row and its ingredient rows
	Create(ctx context.Context, r *Recipe) error

	// Update persists changed recipe fields (not the ingredient list)
	Update(ctx context.Context, r *Recipe) error

	// Delete removes the recipe and cascades to its ingredient rows
	Delete(ctx context.Context, recipeID uint) error

	// ReplaceIngredients deletes every ingredient row of the recipe and
	// inserts the given ones. Callers wrap this in a transaction.
	ReplaceIngredients(ctx context.Context, recipeID uint, items []*RecipeIngredient) error
}
