// Package recipe holds household recipes and their ingredient line items.
package recipe

import (
	"fmt"
	"strings"
	"time"

	"larder/internal/shared/id"
)

// Recipe is a household-owned recipe with an ordered ingredient list.
type Recipe struct {
	id           uint
	sid          string
	householdID  uint
	name         string
	description  *string
	servings     float64
	instructions string
	notes        *string
	createdAt    time.Time
	updatedAt    time.Time
	ingredients  []*RecipeIngredient
}

// NewRecipe creates a recipe. The ingredient list is attached separately
// through SetIngredients before the transactional create.
func NewRecipe(householdID uint, name string, description *string, servings float64, instructions string, notes *string) (*Recipe, error) {
	name = strings.TrimSpace(name)
	instructions = strings.TrimSpace(instructions)
	if householdID == 0 {
		return nil, fmt.Errorf("household ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if instructions == "" {
		return nil, fmt.Errorf("instructions are required")
	}
	if servings <= 0 {
		return nil, fmt.Errorf("servings must be > 0")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixRecipe, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Recipe{
		sid:          sid,
		householdID:  householdID,
		name:         name,
		description:  description,
		servings:     servings,
		instructions: instructions,
		notes:        notes,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a Recipe from the persistence layer.
func Reconstruct(
	id uint,
	sid string,
	householdID uint,
	name string,
	description *string,
	servings float64,
	instructions string,
	notes *string,
	createdAt, updatedAt time.Time,
	ingredients []*RecipeIngredient,
) *Recipe {
	return &Recipe{
		id:           id,
		sid:          sid,
		householdID:  householdID,
		name:         name,
		description:  description,
		servings:     servings,
		instructions: instructions,
		notes:        notes,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
		ingredients:  ingredients,
	}
}

func (r *Recipe) ID() uint                          { return r.id }
func (r *Recipe) SID() string                       { return r.sid }
func (r *Recipe) HouseholdID() uint                 { return r.householdID }
func (r *Recipe) Name() string                      { return r.name }
func (r *Recipe) Description() *string              { return r.description }
func (r *Recipe) Servings() float64                 { return r.servings }
func (r *Recipe) Instructions() string              { return r.instructions }
func (r *Recipe) Notes() *string                    { return r.notes }
func (r *Recipe) CreatedAt() time.Time              { return r.createdAt }
func (r *Recipe) UpdatedAt() time.Time              { return r.updatedAt }
func (r *Recipe) Ingredients() []*RecipeIngredient  { return r.ingredients }

// SetID sets the recipe ID (persistence layer use only).
func (r *Recipe) SetID(id uint) { r.id = id }

// SetIngredients attaches the ingredient line items.
func (r *Recipe) SetIngredients(items []*RecipeIngredient) { r.ingredients = items }

func (r *Recipe) touch() { r.updatedAt = time.Now().UTC() }

// Rename updates the recipe name.
func (r *Recipe) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	r.name = name
	r.touch()
	return nil
}

// UpdateDescription sets or clears the description.
func (r *Recipe) UpdateDescription(description *string) {
	r.description = description
	r.touch()
}

// UpdateServings updates the servings count.
func (r *Recipe) UpdateServings(servings float64) error {
	if servings <= 0 {
		return fmt.Errorf("servings must be > 0")
	}
	r.servings = servings
	r.touch()
	return nil
}

// UpdateInstructions updates the instructions text.
func (r *Recipe) UpdateInstructions(instructions string) error {
	instructions = strings.TrimSpace(instructions)
	if instructions == "" {
		return fmt.Errorf("instructions are required")
	}
	r.instructions = instructions
	r.touch()
	return nil
}

// UpdateNotes sets or clears the notes.
func (r *Recipe) UpdateNotes(notes *string) {
	r.notes = notes
	r.touch()
}
