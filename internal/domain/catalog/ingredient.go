// Package catalog holds the global ingredient catalog. Ingredients are the
// only resource not scoped to a household.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"larder/internal/shared/id"
)

var folder = cases.Fold()

// Ingredient is a globally shared catalog entry with a canonical unit.
type Ingredient struct {
	id        uint
	sid       string
	name      string
	unit      string
	createdAt time.Time
	updatedAt time.Time
}

// NewIngredient creates a catalog ingredient.
func NewIngredient(name, unit string) (*Ingredient, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if unit == "" {
		return nil, fmt.Errorf("unit is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixIngredient, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Ingredient{
		sid:       sid,
		name:      name,
		unit:      unit,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds an Ingredient from the persistence layer.
func Reconstruct(id uint, sid, name, unit string, createdAt, updatedAt time.Time) *Ingredient {
	return &Ingredient{
		id:        id,
		sid:       sid,
		name:      name,
		unit:      unit,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (i *Ingredient) ID() uint             { return i.id }
func (i *Ingredient) SID() string          { return i.sid }
func (i *Ingredient) Name() string         { return i.name }
func (i *Ingredient) Unit() string         { return i.unit }
func (i *Ingredient) CreatedAt() time.Time { return i.createdAt }
func (i *Ingredient) UpdatedAt() time.Time { return i.updatedAt }

// SetID sets the ingredient ID (persistence layer use only).
func (i *Ingredient) SetID(id uint) { i.id = id }

// NameEquals reports whether the ingredient name matches the candidate
// under Unicode case folding. Name uniqueness is case-insensitive.
func (i *Ingredient) NameEquals(candidate string) bool {
	return folder.String(i.name) == folder.String(candidate)
}
