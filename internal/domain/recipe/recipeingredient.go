package recipe

import (
	"fmt"
	"time"

	"larder/internal/shared/id"
)

// RecipeIngredient is one line item of a recipe's ingredient list. The
// unit defaults to the catalog ingredient's canonical unit when the caller
// does not override it; resolving that default happens in the usecase
// before construction.
type RecipeIngredient struct {
	id             uint
	sid            string
	recipeID       uint
	ingredientID   uint
	ingredientSID  string
	ingredientName string
	ingredientUnit string
	quantity       float64
	unit           string
	createdAt      time.Time
	updatedAt      time.Time
}

// NewRecipeIngredient creates a line item with an already-resolved unit.
func NewRecipeIngredient(ingredientID uint, quantity float64, unit string) (*RecipeIngredient, error) {
	if ingredientID == 0 {
		return nil, fmt.Errorf("ingredient ID is required")
	}
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be > 0")
	}
	if unit == "" {
		return nil, fmt.Errorf("unit is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixRecipeIngredient, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &RecipeIngredient{
		sid:          sid,
		ingredientID: ingredientID,
		quantity:     quantity,
		unit:         unit,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructRecipeIngredient rebuilds a line item from the persistence
// layer, carrying the joined catalog ingredient fields for serialization.
func ReconstructRecipeIngredient(
	id uint,
	sid string,
	recipeID uint,
	ingredientID uint,
	ingredientSID string,
	ingredientName string,
	ingredientUnit string,
	quantity float64,
	unit string,
	createdAt, updatedAt time.Time,
) *RecipeIngredient {
	return &RecipeIngredient{
		id:             id,
		sid:            sid,
		recipeID:       recipeID,
		ingredientID:   ingredientID,
		ingredientSID:  ingredientSID,
		ingredientName: ingredientName,
		ingredientUnit: ingredientUnit,
		quantity:       quantity,
		unit:           unit,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (ri *RecipeIngredient) ID() uint               { return ri.id }
func (ri *RecipeIngredient) SID() string            { return ri.sid }
func (ri *RecipeIngredient) RecipeID() uint         { return ri.recipeID }
func (ri *RecipeIngredient) IngredientID() uint     { return ri.ingredientID }
func (ri *RecipeIngredient) IngredientSID() string  { return ri.ingredientSID }
func (ri *RecipeIngredient) IngredientName() string { return ri.ingredientName }
func (ri *RecipeIngredient) IngredientUnit() string { return ri.ingredientUnit }
func (ri *RecipeIngredient) Quantity() float64      { return ri.quantity }
func (ri *RecipeIngredient) Unit() string           { return ri.unit }
func (ri *RecipeIngredient) CreatedAt() time.Time   { return ri.createdAt }
func (ri *RecipeIngredient) UpdatedAt() time.Time   { return ri.updatedAt }
