// Package pantry tracks which catalog ingredients a household has on hand.
package pantry

import (
	"fmt"
	"time"

	"larder/internal/shared/id"
)

// Availability is the pantry stock level.
type Availability string

const (
	AvailabilityHave Availability = "HAVE"
	AvailabilityLow  Availability = "LOW"
	AvailabilityOut  Availability = "OUT"
)

// IsValid reports whether the value is one of HAVE, LOW, OUT.
func (a Availability) IsValid() bool {
	switch a {
	case AvailabilityHave, AvailabilityLow, AvailabilityOut:
		return true
	}
	return false
}

// String returns the string representation.
func (a Availability) String() string {
	return string(a)
}

// PantryItem links a household to a catalog ingredient with a stock level.
// Unique per (household, ingredient).
type PantryItem struct {
	id             uint
	sid            string
	householdID    uint
	ingredientID   uint
	ingredientSID  string
	ingredientName string
	ingredientUnit string
	availability   Availability
	createdAt      time.Time
	updatedAt      time.Time
}

// NewPantryItem creates a pantry entry. Availability defaults to HAVE.
func NewPantryItem(householdID, ingredientID uint, availability Availability) (*PantryItem, error) {
	if householdID == 0 {
		return nil, fmt.Errorf("household ID is required")
	}
	if ingredientID == 0 {
		return nil, fmt.Errorf("ingredient ID is required")
	}
	if availability == "" {
		availability = AvailabilityHave
	}
	if !availability.IsValid() {
		return nil, fmt.Errorf("invalid availability: %s", availability)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixPantryItem, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &PantryItem{
		sid:          sid,
		householdID:  householdID,
		ingredientID: ingredientID,
		availability: availability,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a PantryItem from the persistence layer.
func Reconstruct(
	id uint,
	sid string,
	householdID uint,
	ingredientID uint,
	ingredientSID string,
	ingredientName string,
	ingredientUnit string,
	availability Availability,
	createdAt, updatedAt time.Time,
) *PantryItem {
	return &PantryItem{
		id:             id,
		sid:            sid,
		householdID:    householdID,
		ingredientID:   ingredientID,
		ingredientSID:  ingredientSID,
		ingredientName: ingredientName,
		ingredientUnit: ingredientUnit,
		availability:   availability,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *PantryItem) ID() uint                   { return p.id }
func (p *PantryItem) SID() string                { return p.sid }
func (p *PantryItem) HouseholdID() uint          { return p.householdID }
func (p *PantryItem) IngredientID() uint         { return p.ingredientID }
func (p *PantryItem) IngredientSID() string      { return p.ingredientSID }
func (p *PantryItem) IngredientName() string     { return p.ingredientName }
func (p *PantryItem) IngredientUnit() string     { return p.ingredientUnit }
func (p *PantryItem) Availability() Availability { return p.availability }
func (p *PantryItem) CreatedAt() time.Time       { return p.createdAt }
func (p *PantryItem) UpdatedAt() time.Time       { return p.updatedAt }

// SetID sets the pantry item ID (persistence layer use only).
func (p *PantryItem) SetID(id uint) { p.id = id }

// UpdateAvailability changes the stock level.
func (p *PantryItem) UpdateAvailability(availability Availability) error {
	if !availability.IsValid() {
		return fmt.Errorf("invalid availability: %s", availability)
	}
	p.availability = availability
	p.updatedAt = time.Now().UTC()
	return nil
}
