// Package access resolves callers and answers authorization questions.
package access

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

//go:generate moq -out mock_test.go . accountRepo roleRepo txManager

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	Create(ctx context.Context, a domain.Account) (*domain.Account, error)
}

type roleRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (domain.Role, error)
	AssignIfMissing(ctx context.Context, userID uuid.UUID, role domain.Role) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements caller resolution and access checks.
type Service struct {
	log      *slog.Logger
	accounts accountRepo
	roles    roleRepo
	tx       txManager
	limits   domain.PlanLimits
}

// NewService creates a new access service.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	roles roleRepo,
	tx txManager,
	limits domain.PlanLimits,
) *Service {
	return &Service{
		log:      logger.With("service", "access"),
		accounts: accounts,
		roles:    roles,
		tx:       tx,
		limits:   limits,
	}
}
