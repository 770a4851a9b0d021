package household

import "context"

// Repository defines the interface for household persistence operations
type Repository interface {
	// FindFirst retrieves any existing household, nil when none exists yet
	FindFirst(ctx context.Context) (*Household, error)

	// Create creates a new household
	Create(ctx context.Context, h *Household) error

	// Update updates an existing household
	Update(ctx context.Context, h *Household) error
}
