package models

import (
	"time"
)

// RecipeModel represents the database persistence model for recipes.
type RecipeModel struct {
	ID           uint    `gorm:"primarykey"`
	SID          string  `gorm:"not null;size:32;uniqueIndex:idx_recipe_sid"` // Stripe-style ID: rcp_xxxxxxxx
	HouseholdID  uint    `gorm:"not null;index:idx_recipe_household_id"`
	Name         string  `gorm:"not null;size:200"`
	Description  *string `gorm:"size:1000"`
	Servings     float64 `gorm:"not null"`
	Instructions string  `gorm:"not null;type:text"`
	Notes        *string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	Household   *HouseholdModel         `gorm:"foreignKey:HouseholdID"`
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
