package person

import "context"

// Repository defines the interface for person persistence operations
type Repository interface {
	// ListByHousehold retrieves a household's members sorted by name
	ListByHousehold(ctx context.Context, householdID uint) ([]*Person, error)

	// Create creates a new person
	Create(ctx context.Context, p *Person) error
}
