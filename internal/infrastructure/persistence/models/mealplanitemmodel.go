package models

import (
	"time"
)

// MealPlanItemModel represents one planned meal on a day.
type MealPlanItemModel struct {
	ID        uint    `gorm:"primarykey"`
	SID       string  `gorm:"not null;size:32;uniqueIndex:idx_meal_plan_item_sid"` // Stripe-style ID: mpi_xxxxxxxx
	DayID     uint    `gorm:"not null;index:idx_meal_plan_item_day_id"`
	RecipeID  uint    `gorm:"not null;index:idx_meal_plan_item_recipe_id"`
	MealType  string  `gorm:"not null;size:20"`
	Servings  float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Recipe *RecipeModel `gorm:"foreignKey:RecipeID"`
}

// TableName specifies the table name for GORM.
func (MealPlanItemModel) TableName() string {
	return "meal_plan_items"
}
