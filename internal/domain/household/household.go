// Package household holds the single-tenant scoping entity. All data
// except the global ingredient catalog belongs to exactly one household.
package household

import (
	"fmt"
	"strings"
	"time"

	"larder/internal/shared/id"
)

// DefaultName is the name given to the household created on first access.
const DefaultName = "Household"

// Household is the scoping entity every other resource hangs off.
type Household struct {
	id        uint
	sid       string
	name      string
	createdAt time.Time
	updatedAt time.Time
}

// NewHousehold creates a household with the given name.
func NewHousehold(name string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixHousehold, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate SID: %w", err)
	}

	now := time.Now().UTC()
	return &Household{
		sid:       sid,
		name:      name,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a Household from the persistence layer.
func Reconstruct(id uint, sid, name string, createdAt, updatedAt time.Time) *Household {
	return &Household{
		id:        id,
		sid:       sid,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (h *Household) ID() uint             { return h.id }
func (h *Household) SID() string          { return h.sid }
func (h *Household) Name() string         { return h.name }
func (h *Household) CreatedAt() time.Time { return h.createdAt }
func (h *Household) UpdatedAt() time.Time { return h.updatedAt }

// SetID sets the household ID (persistence layer use only).
func (h *Household) SetID(id uint) { h.id = id }

// Rename updates the household name.
func (h *Household) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	h.name = name
	h.updatedAt = time.Now().UTC()
	return nil
}
