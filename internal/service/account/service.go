// Package account implements account settings, billing and the admin views.
package account

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

//go:generate moq -out mock_test.go . accountRepo roleRepo profileCounter usageCounter billingRepo checkoutGateway profileGate

type accountRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	UpdateSettings(ctx context.Context, id uuid.UUID, fullName, companyName *string) (*domain.Account, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, plan domain.Plan, limit int) (*domain.Account, error)
	List(ctx context.Context, limit, offset int) ([]domain.AccountWithRole, error)
	Count(ctx context.Context) (int, error)
}

type roleRepo interface {
	Assign(ctx context.Context, userID uuid.UUID, role domain.Role) error
}

type profileCounter interface {
	Count(ctx context.Context) (int, error)
}

type usageCounter interface {
	Count(ctx context.Context) (int, error)
}

type billingRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.BillingRecord, error)
}

type checkoutGateway interface {
	Configured() bool
	CreateSession(ctx context.Context, plan domain.Plan, userID uuid.UUID, email string) (string, error)
}

type profileGate interface {
	CanCreateProfile(ctx context.Context, c domain.Caller) (bool, error)
}

// Service implements account operations.
type Service struct {
	log         *slog.Logger
	accounts    accountRepo
	roles       roleRepo
	profiles    profileCounter
	usage       usageCounter
	billing     billingRepo
	checkout    checkoutGateway
	gate        profileGate
	limits      domain.PlanLimits
	historySize int
}

// NewService creates a new account service.
func NewService(
	logger *slog.Logger,
	accounts accountRepo,
	roles roleRepo,
	profiles profileCounter,
	usage usageCounter,
	billing billingRepo,
	checkout checkoutGateway,
	gate profileGate,
	limits domain.PlanLimits,
	historySize int,
) *Service {
	if historySize <= 0 {
		historySize = 10
	}
	return &Service{
		log:         logger.With("service", "account"),
		accounts:    accounts,
		roles:       roles,
		profiles:    profiles,
		usage:       usage,
		billing:     billing,
		checkout:    checkout,
		gate:        gate,
		limits:      limits,
		historySize: historySize,
	}
}
