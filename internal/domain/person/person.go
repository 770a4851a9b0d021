// Package person holds household members and their portion preferences.
package person

import (
	"fmt"
	"strings"
	"time"

	"larder/internal/shared/id"
)

// DefaultPortionFactor is used when a person is created without one.
const DefaultPortionFactor = 1.0

// Person is a household member. The disliked ingredient list is internal
// state and never leaves the API.
type Person struct {
	id                    uint
	sid                   string
	householdID           uint
	name                  string
	portionFactor         float64
	dislikedIngredientIDs []string
	createdAt             time.Time
	updatedAt             time.Time
}

// NewPerson creates a household member.
func NewPerson(householdID uint, name string, portionFactor float64) (*Person, error) {
	name = strings.TrimSpace(name)
	if householdID == 0 {
		return nil, fmt.Errorf("household ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if portionFactor <= 0 {
		return nil, fmt.Errorf("portion factor must be > 0")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixPerson, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Person{
		sid:                   sid,
		householdID:           householdID,
		name:                  name,
		portionFactor:         portionFactor,
		dislikedIngredientIDs: []string{},
		createdAt:             now,
		updatedAt:             now,
	}, nil
}

// Reconstruct rebuilds a Person from the persistence layer.
func Reconstruct(
	id uint,
	sid string,
	householdID uint,
	name string,
	portionFactor float64,
	dislikedIngredientIDs []string,
	createdAt, updatedAt time.Time,
) *Person {
	return &Person{
		id:                    id,
		sid:                   sid,
		householdID:           householdID,
		name:                  name,
		portionFactor:         portionFactor,
		dislikedIngredientIDs: dislikedIngredientIDs,
		createdAt:             createdAt,
		updatedAt:             updatedAt,
	}
}

func (p *Person) ID() uint                        { return p.id }
func (p *Person) SID() string                     { return p.sid }
func (p *Person) HouseholdID() uint               { return p.householdID }
func (p *Person) Name() string                    { return p.name }
func (p *Person) PortionFactor() float64          { return p.portionFactor }
func (p *Person) DislikedIngredientIDs() []string { return p.dislikedIngredientIDs }
func (p *Person) CreatedAt() time.Time            { return p.createdAt }
func (p *Person) UpdatedAt() time.Time            { return p.updatedAt }

// SetID sets the person ID (persistence layer use only).
func (p *Person) SetID(id uint) { p.id = id }
