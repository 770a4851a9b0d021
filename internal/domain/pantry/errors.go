package pantry

import "errors"

var (
	// ErrPantryItemNotFound indicates the pantry item is absent or
	// belongs to a different household
	ErrPantryItemNotFound = errors.New("pantry item not found")

	// ErrAlreadyInPantry indicates the ingredient is already tracked by
	// this household's pantry
	ErrAlreadyInPantry = errors.New("ingredient already in pantry")
)
