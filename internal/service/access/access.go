package access

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// Resolve turns a verified identity into a Caller. The first time an identity
// is seen its account and role assignment are provisioned in one transaction.
func (s *Service) Resolve(ctx context.Context, id domain.Identity) (domain.Caller, error) {
	if id.UserID == uuid.Nil {
		return domain.Caller{}, domain.ErrUnauthorized
	}

	acc, err := s.accounts.GetByID(ctx, id.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		acc, err = s.provision(ctx, id)
		if err != nil {
			return domain.Caller{}, fmt.Errorf("access.Resolve: %w", err)
		}
	case err != nil:
		return domain.Caller{}, fmt.Errorf("access.Resolve: %w", err)
	}

	role, err := s.roles.Get(ctx, id.UserID)
	if err != nil {
		return domain.Caller{}, fmt.Errorf("access.Resolve: %w", err)
	}

	email := id.Email
	if email == "" {
		email = acc.Email
	}

	return domain.Caller{UserID: acc.ID, Email: email, Role: role}, nil
}

func (s *Service) provision(ctx context.Context, id domain.Identity) (*domain.Account, error) {
	var acc *domain.Account

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		acc, err = s.accounts.Create(ctx, domain.Account{
			ID:               id.UserID,
			Email:            id.Email,
			SubscriptionPlan: domain.PlanFree,
			ProfileLimit:     s.limits.LimitFor(domain.PlanFree),
		})
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}
		if err := s.roles.AssignIfMissing(ctx, id.UserID, domain.RoleUser); err != nil {
			return fmt.Errorf("assign role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "account provisioned",
		slog.String("user_id", id.UserID.String()),
		slog.String("plan", string(acc.SubscriptionPlan)),
	)
	return acc, nil
}

// CanAccess reports whether the caller holds required or is an admin.
func CanAccess(c domain.Caller, required domain.Role) bool {
	return c.Role == required || c.IsAdmin()
}

// RequireRole is the guard form of CanAccess: ErrUnauthorized for anonymous
// callers, ErrForbidden when the role is missing.
func RequireRole(c domain.Caller, required domain.Role) error {
	if !c.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	if !CanAccess(c, required) {
		return domain.ErrForbidden
	}
	return nil
}

// CanCreateProfile reports whether the caller's account has room for another
// profile. It only reads; the slot is taken when the profile is created.
func (s *Service) CanCreateProfile(ctx context.Context, c domain.Caller) (bool, error) {
	if !c.IsAuthenticated() {
		return false, domain.ErrUnauthorized
	}

	acc, err := s.accounts.GetByID(ctx, c.UserID)
	if err != nil {
		return false, fmt.Errorf("access.CanCreateProfile: %w", err)
	}
	return acc.CanCreateProfile(), nil
}

// RequireOwner returns nil when the caller owns ownerID's resources or is an
// admin, ErrUnauthorized for anonymous callers, and ErrForbidden otherwise.
func RequireOwner(c domain.Caller, ownerID uuid.UUID) error {
	if !c.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	if !c.Owns(ownerID) {
		return domain.ErrForbidden
	}
	return nil
}
