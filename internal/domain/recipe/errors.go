package recipe

import "errors"

var (
	// ErrRecipeNotFound indicates the recipe is absent or belongs to a
	// different household
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrDuplicateIngredient indicates the submitted list references the
	// same ingredient twice
	ErrDuplicateIngredient = errors.New("duplicate ingredient in list")

	// ErrUnknownIngredient indicates the list references an ingredient
	// that does not exist in the catalog
	ErrUnknownIngredient = errors.New("unknown ingredient reference")

	// ErrUnitMissing indicates no unit could be resolved for a line item
	ErrUnitMissing = errors.New("ingredient unit missing")
)
