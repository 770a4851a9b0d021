package mealplan

import (
	"fmt"
	"time"

	"larder/internal/shared/id"
)

// MealType is the meal slot of a plan item.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// IsValid reports whether the value is one of breakfast, lunch, dinner, snack.
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// String returns the string representation.
func (m MealType) String() string {
	return string(m)
}

// Item schedules a recipe into a plan day. The recipe must belong to the
// same household as the plan; that check happens before construction.
type Item struct {
	id         uint
	sid        string
	dayID      uint
	recipeID   uint
	recipeSID  string
	recipeName string
	mealType   MealType
	servings   float64
	createdAt  time.Time
	updatedAt  time.Time
}

// NewItem creates a plan item.
func NewItem(dayID, recipeID uint, mealType MealType, servings float64) (*Item, error) {
	if dayID == 0 {
		return nil, fmt.Errorf("day ID is required")
	}
	if recipeID == 0 {
		return nil, fmt.Errorf("recipe ID is required")
	}
	if !mealType.IsValid() {
		return nil, fmt.Errorf("invalid meal type: %s", mealType)
	}
	if servings <= 0 {
		return nil, fmt.Errorf("servings must be > 0")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixMealPlanItem, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Item{
		sid:       sid,
		dayID:     dayID,
		recipeID:  recipeID,
		mealType:  mealType,
		servings:  servings,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructItem rebuilds an Item from the persistence layer.
func ReconstructItem(
	id uint,
	sid string,
	dayID uint,
	recipeID uint,
	recipeSID string,
	recipeName string,
	mealType MealType,
	servings float64,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:         id,
		sid:        sid,
		dayID:      dayID,
		recipeID:   recipeID,
		recipeSID:  recipeSID,
		recipeName: recipeName,
		mealType:   mealType,
		servings:   servings,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (i *Item) ID() uint             { return i.id }
func (i *Item) SID() string          { return i.sid }
func (i *Item) DayID() uint          { return i.dayID }
func (i *Item) RecipeID() uint       { return i.recipeID }
func (i *Item) RecipeSID() string    { return i.recipeSID }
func (i *Item) RecipeName() string   { return i.recipeName }
func (i *Item) MealType() MealType   { return i.mealType }
func (i *Item) Servings() float64    { return i.servings }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }

// SetID sets the item ID (persistence layer use only).
func (i *Item) SetID(id uint) { i.id = id }

func (i *Item) touch() { i.updatedAt = time.Now().UTC() }

// UpdateMealType changes the meal slot.
func (i *Item) UpdateMealType(mealType MealType) error {
	if !mealType.IsValid() {
		return fmt.Errorf("invalid meal type: %s", mealType)
	}
	i.mealType = mealType
	i.touch()
	return nil
}

// UpdateServings changes the servings count.
func (i *Item) UpdateServings(servings float64) error {
	if servings <= 0 {
		return fmt.Errorf("servings must be > 0")
	}
	i.servings = servings
	i.touch()
	return nil
}
