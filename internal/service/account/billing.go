package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// CheckoutNotConfiguredMessage is returned when no checkout endpoint is set.
const CheckoutNotConfiguredMessage = "Payment integration is not configured. Plan would be updated upon payment."

// BillingHistory returns the caller's most recent billing records, newest first.
func (s *Service) BillingHistory(ctx context.Context, caller domain.Caller) ([]domain.BillingRecord, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.billing.ListByUser(ctx, caller.UserID, s.historySize)
	if err != nil {
		return nil, fmt.Errorf("account.BillingHistory: %w", err)
	}
	return records, nil
}

// Checkout starts a plan upgrade. The plan itself changes only once the
// payment provider confirms, which is outside this service.
func (s *Service) Checkout(ctx context.Context, caller domain.Caller, plan domain.Plan) (*domain.CheckoutSession, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	if !plan.IsValid() || plan == domain.PlanFree {
		return nil, domain.NewValidationError("plan", "must be pro or agency")
	}

	acc, err := s.accounts.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("account.Checkout: %w", err)
	}
	if acc.SubscriptionPlan == plan {
		return nil, domain.NewValidationError("plan", "already on this plan")
	}

	if !s.checkout.Configured() {
		return &domain.CheckoutSession{Plan: plan, Message: CheckoutNotConfiguredMessage}, nil
	}

	url, err := s.checkout.CreateSession(ctx, plan, caller.UserID, caller.Email)
	if err != nil {
		return nil, fmt.Errorf("account.Checkout: %w", err)
	}

	s.log.InfoContext(ctx, "checkout started",
		slog.String("user_id", caller.UserID.String()),
		slog.String("plan", string(plan)),
	)
	return &domain.CheckoutSession{Plan: plan, Configured: true, CheckoutURL: url}, nil
}
