package models

import (
	"time"
)

// IngredientModel represents the database persistence model for the global
// ingredient catalog. The unique index on Name backs up the case-insensitive
// duplicate check done in the application layer.
type IngredientModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"not null;size:32;uniqueIndex:idx_ingredient_sid"` // Stripe-style ID: ing_xxxxxxxx
	Name      string `gorm:"not null;size:100;uniqueIndex:idx_ingredient_name"`
	Unit      string `gorm:"not null;size:30"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}
