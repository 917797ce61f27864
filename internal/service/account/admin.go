package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/access"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

// ListAccounts returns a page of accounts, newest first, and the total count (admin only).
func (s *Service) ListAccounts(ctx context.Context, caller domain.Caller, limit, offset int) ([]domain.AccountWithRole, int, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, 0, err
	}

	if limit <= 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)
	offset = max(offset, 0)

	accounts, err := s.accounts.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("account.ListAccounts: %w", err)
	}

	total, err := s.accounts.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("account.ListAccounts: %w", err)
	}

	return accounts, total, nil
}

// Stats returns platform totals (admin only).
func (s *Service) Stats(ctx context.Context, caller domain.Caller) (*domain.PlatformStats, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	var stats domain.PlatformStats
	var err error

	if stats.TotalAccounts, err = s.accounts.Count(ctx); err != nil {
		return nil, fmt.Errorf("account.Stats: accounts: %w", err)
	}
	if stats.TotalProfiles, err = s.profiles.Count(ctx); err != nil {
		return nil, fmt.Errorf("account.Stats: profiles: %w", err)
	}
	if stats.TotalAIRequests, err = s.usage.Count(ctx); err != nil {
		return nil, fmt.Errorf("account.Stats: usage: %w", err)
	}

	return &stats, nil
}

// ChangePlan sets an account's plan and the matching profile limit (admin only).
// Existing profiles above a lowered limit are kept.
func (s *Service) ChangePlan(ctx context.Context, caller domain.Caller, userID uuid.UUID, plan domain.Plan) (*domain.Account, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if !plan.IsValid() {
		return nil, domain.NewValidationError("plan", "must be free, pro or agency")
	}

	limit := s.limits.LimitFor(plan)
	acc, err := s.accounts.UpdatePlan(ctx, userID, plan, limit)
	if err != nil {
		return nil, fmt.Errorf("account.ChangePlan: %w", err)
	}

	s.log.InfoContext(ctx, "plan changed",
		slog.String("admin_id", caller.UserID.String()),
		slog.String("user_id", userID.String()),
		slog.String("plan", string(plan)),
		slog.Int("profile_limit", limit),
	)
	return acc, nil
}

// SetRole assigns a role to an account (admin only). Admins cannot demote themselves.
func (s *Service) SetRole(ctx context.Context, caller domain.Caller, userID uuid.UUID, role domain.Role) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if !role.IsValid() {
		return domain.NewValidationError("role", "must be user, pro, agency or admin")
	}
	if userID == caller.UserID && role != domain.RoleAdmin {
		return domain.NewValidationError("role", "cannot demote yourself")
	}

	if _, err := s.accounts.GetByID(ctx, userID); err != nil {
		return fmt.Errorf("account.SetRole: %w", err)
	}
	if err := s.roles.Assign(ctx, userID, role); err != nil {
		return fmt.Errorf("account.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "role changed",
		slog.String("admin_id", caller.UserID.String()),
		slog.String("user_id", userID.String()),
		slog.String("role", string(role)),
	)
	return nil
}

func requireAdmin(c domain.Caller) error {
	return access.RequireRole(c, domain.RoleAdmin)
}
