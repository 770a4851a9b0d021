package usecases

import (
	"context"
	"fmt"

	"larder/internal/domain/household"
	"larder/internal/shared/logger"
)

// HouseholdResolver ensures exactly one household row exists, creating the
// default one on first access. Every other usecase resolves its scoping
// household through this.
//
// The find-then-create step is not atomic: two concurrent first calls can
// both miss and create two rows. Accepted race, not closed with locking.
type HouseholdResolver struct {
	repo   household.Repository
	logger logger.Interface
}

// NewHouseholdResolver creates a new HouseholdResolver.
func NewHouseholdResolver(repo household.Repository, logger logger.Interface) *HouseholdResolver {
	return &HouseholdResolver{
		repo:   repo,
		logger: logger,
	}
}

// Resolve returns the existing household or creates the default one.
func (r *HouseholdResolver) Resolve(ctx context.Context) (*household.Household, error) {
	existing, err := r.repo.FindFirst(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve household: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	h, err := household.NewHousehold(household.DefaultName)
	if err != nil {
		return nil, fmt.Errorf("failed to build default household: %w", err)
	}

	if err := r.repo.Create(ctx, h); err != nil {
		return nil, fmt.Errorf("failed to create default household: %w", err)
	}

	r.logger.Infow("default household created", "sid", h.SID())
	return h, nil
}
