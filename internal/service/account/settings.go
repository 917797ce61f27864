package account

import (
	"context"
	"fmt"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// Me returns the caller's account, the resolved role and whether another
// profile fits the plan.
func (s *Service) Me(ctx context.Context, caller domain.Caller) (*domain.AccountOverview, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	acc, err := s.accounts.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("account.Me: %w", err)
	}
	can, err := s.gate.CanCreateProfile(ctx, caller)
	if err != nil {
		return nil, fmt.Errorf("account.Me: %w", err)
	}
	return &domain.AccountOverview{
		AccountWithRole:  domain.AccountWithRole{Account: *acc, Role: caller.Role},
		CanCreateProfile: can,
	}, nil
}

// UpdateSettings changes the caller's display fields.
func (s *Service) UpdateSettings(ctx context.Context, caller domain.Caller, in UpdateSettingsInput) (*domain.Account, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}

	acc, err := s.accounts.UpdateSettings(ctx, caller.UserID, in.FullName, in.CompanyName)
	if err != nil {
		return nil, fmt.Errorf("account.UpdateSettings: %w", err)
	}
	return acc, nil
}
