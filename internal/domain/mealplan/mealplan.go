// Package mealplan holds meal plans with their nested days and items.
package mealplan

import (
	"fmt"
	"strings"
	"time"

	"larder/internal/shared/id"
)

// Status is the lifecycle state of a meal plan.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// IsValid reports whether the value is one of draft, active, completed.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation.
func (s Status) String() string {
	return string(s)
}

// MealPlan is a household-owned plan owning an ordered set of days.
type MealPlan struct {
	id           uint
	sid          string
	householdID  uint
	name         string
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

// NewMealPlan creates a meal plan.
func NewMealPlan(householdID uint, name string, status Status) (*MealPlan, error) {
	name = strings.TrimSpace(name)
	if householdID == 0 {
		return nil, fmt.Errorf("household ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixMealPlan, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &MealPlan{
		sid:         sid,
		householdID: householdID,
		name:        name,
		status:      status,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructMealPlan rebuilds a MealPlan from the persistence layer.
func ReconstructMealPlan(
	id uint,
	sid string,
	householdID uint,
	name string,
	status Status,
	createdAt, updatedAt time.Time,
) *MealPlan {
	return &MealPlan{
		id:           id,
		sid:          sid,
		householdID:  householdID,
		name:         name,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *MealPlan) ID() uint             { return m.id }
func (m *MealPlan) SID() string          { return m.sid }
func (m *MealPlan) HouseholdID() uint    { return m.householdID }
func (m *MealPlan) Name() string         { return m.name }
func (m *MealPlan) Status() Status       { return m.status }
func (m *MealPlan) CreatedAt() time.Time { return m.createdAt }
func (m *MealPlan) UpdatedAt() time.Time { return m.updatedAt }

// SetID sets the meal plan ID (persistence layer use only).
func (m *MealPlan) SetID(id uint) { m.id = id }
