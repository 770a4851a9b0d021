package models

import (
	"time"
)

// PantryItemModel represents the database persistence model for pantry items.
// Each household tracks an ingredient at most once.
type PantryItemModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"not null;size:32;uniqueIndex:idx_pantry_item_sid"` // Stripe-style ID: pan_xxxxxxxx
	HouseholdID  uint   `gorm:"not null;uniqueIndex:idx_pantry_household_ingredient"`
	IngredientID uint   `gorm:"not null;uniqueIndex:idx_pantry_household_ingredient"`
	Availability string `gorm:"not null;default:HAVE;size:10"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Relationships
	Ingredient *IngredientModel `gorm:"foreignKey:IngredientID"`
}

// TableName specifies the table name for GORM.
func (PantryItemModel) TableName() string {
	return "pantry_items"
}
