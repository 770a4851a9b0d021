package pantry

import "context"

// Repository defines the interface for pantry persistence operations
type Repository interface {
	// ListByHousehold retrieves a household's pantry ordered by the
	// referenced ingredient's name
	ListByHousehold(ctx context.Context, householdID uint) ([]*PantryItem, error)

	// Create creates a pantry entry. A (household, ingredient) duplicate
	// maps to ErrAlreadyInPantry.
	Create(ctx context.Context, item *PantryItem) error

	// GetBySID retrieves a pantry item scoped by household, nil on miss
	GetBySID(ctx context.Context, sid string, householdID uint) (*PantryItem, error)

	// Update persists a changed pantry item
	Update(ctx context.Context, item *PantryItem) error
}
