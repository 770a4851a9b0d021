package catalog

import "errors"

var (
	// ErrIngredientNotFound indicates the ingredient was not found
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrNameExists indicates an ingredient with the name already exists
	// (names are unique case-insensitively)
	ErrNameExists = errors.New("ingredient name already exists")
)
