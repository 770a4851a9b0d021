package models

import (
	"time"
)

// RecipeIngredientModel represents one ingredient line item of a recipe.
// The composite unique index keeps an ingredient from appearing twice in
// the same recipe.
type RecipeIngredientModel struct {
	ID           uint    `gorm:"primarykey"`
	SID          string  `gorm:"not null;size:32;uniqueIndex:idx_recipe_ingredient_sid"` // Stripe-style ID: ri_xxxxxxxx
	RecipeID     uint    `gorm:"not null;uniqueIndex:idx_recipe_ingredient_pair"`
	IngredientID uint    `gorm:"not null;uniqueIndex:idx_recipe_ingredient_pair"`
	Quantity     float64 `gorm:"not null"`
	Unit         string  `gorm:"not null;size:30"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName specifies the table name for GORM.
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}
