package catalog

import "context"

// Repository defines the interface for ingredient persistence operations
type Repository interface {
	// List retrieves all ingredients sorted by name
	List(ctx context.Context) ([]*Ingredient, error)

	// Create creates a new ingredient. A unique-constraint violation on
	// the name maps to ErrNameExists.
	Create(ctx context.Context, ingredient *Ingredient) error

	// GetBySID retrieves an ingredient by its public ID, nil on miss
	GetBySID(ctx context.Context, sid string) (*Ingredient, error)

	// GetBySIDs retrieves ingredients for the given public IDs. Missing
	// IDs are simply absent from the result.
	GetBySIDs(ctx context.Context, sids []string) ([]*Ingredient, error)
}
