package models

import (
	"time"

	"gorm.io/datatypes"
)

// PersonModel represents the database persistence model for household members.
// Disliked ingredients are stored as a JSON array of ingredient SIDs.
type PersonModel struct {
	ID                    uint                         `gorm:"primarykey"`
	SID                   string                       `gorm:"not null;size:32;uniqueIndex:idx_person_sid"` // Stripe-style ID: per_xxxxxxxx
	HouseholdID           uint                         `gorm:"not null;index:idx_person_household_id"`
	Name                  string                       `gorm:"not null;size:100"`
	PortionFactor         float64                      `gorm:"not null;default:1"`
	DislikedIngredientIDs datatypes.JSONSlice[string]  `gorm:"not null"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName specifies the table name for GORM.
func (PersonModel) TableName() string {
	return "people"
}
