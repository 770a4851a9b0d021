package usecases

import (
	"context"
	"fmt"

	"larder/internal/application/household/dto"
	"larder/internal/domain/household"
	"larder/internal/shared/logger"
)

// RenameHouseholdUseCase renames the default household.
type RenameHouseholdUseCase struct {
	resolver *HouseholdResolver
	repo     household.Repository
	logger   logger.Interface
}

// NewRenameHouseholdUseCase creates a new RenameHouseholdUseCase.
func NewRenameHouseholdUseCase(resolver *HouseholdResolver, repo household.Repository, logger logger.Interface) *RenameHouseholdUseCase {
	return &RenameHouseholdUseCase{
		resolver: resolver,
		repo:     repo,
		logger:   logger,
	}
}

// Execute renames the household. The name arrives already validated and
// trimmed.
func (uc *RenameHouseholdUseCase) Execute(ctx context.Context, name string) (*dto.HouseholdResponse, error) {
	h, err := uc.resolver.Resolve(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.Rename(name); err != nil {
		return nil, fmt.Errorf("failed to rename household: %w", err)
	}

	if err := uc.repo.Update(ctx, h); err != nil {
		uc.logger.Errorw("failed to update household", "error", err)
		return nil, fmt.Errorf("failed to update household: %w", err)
	}

	uc.logger.Infow("household renamed", "sid", h.SID(), "name", h.Name())

	return &dto.HouseholdResponse{
		ID:   h.SID(),
		Name: h.Name(),
	}, nil
}
