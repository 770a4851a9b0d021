package models

import (
	"time"
)

// MealPlanDayModel represents one calendar day inside a meal plan. Dates are
// stored as YYYY-MM-DD strings so lexicographic order matches date order.
type MealPlanDayModel struct {
	ID         uint   `gorm:"primarykey"`
	SID        string `gorm:"not null;size:32;uniqueIndex:idx_meal_plan_day_sid"` // Stripe-style ID: mpd_xxxxxxxx
	MealPlanID uint   `gorm:"not null;index:idx_meal_plan_day_plan_id"`
	Date       string `gorm:"not null;size:10"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Relationships
	Items []MealPlanItemModel `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM.
func (MealPlanDayModel) TableName() string {
	return "meal_plan_days"
}
