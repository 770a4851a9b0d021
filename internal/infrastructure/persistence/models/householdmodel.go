package models

import (
	"time"
)

// HouseholdModel represents the database persistence model for households.
type HouseholdModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"not null;size:32;uniqueIndex:idx_household_sid"` // Stripe-style ID: hh_xxxxxxxx
	Name      string `gorm:"not null;size:100"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM.
func (HouseholdModel) TableName() string {
	return "households"
}
