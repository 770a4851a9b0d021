package models

import (
	"time"
)

// MealPlanModel represents the database persistence model for meal plans.
type MealPlanModel struct {
	ID          uint   `gorm:"primarykey"`
	SID         string `gorm:"not null;size:32;uniqueIndex:idx_meal_plan_sid"` // Stripe-style ID: mp_xxxxxxxx
	HouseholdID uint   `gorm:"not null;index:idx_meal_plan_household_id"`
	Name        string `gorm:"not null;size:200"`
	Status      string `gorm:"not null;default:draft;size:20"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM.
func (MealPlanModel) TableName() string {
	return "meal_plans"
}
