package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/account"
)

type accountService interface {
	Me(ctx context.Context, caller domain.Caller) (*domain.AccountOverview, error)
	UpdateSettings(ctx context.Context, caller domain.Caller, in account.UpdateSettingsInput) (*domain.Account, error)
	BillingHistory(ctx context.Context, caller domain.Caller) ([]domain.BillingRecord, error)
	Checkout(ctx context.Context, caller domain.Caller, plan domain.Plan) (*domain.CheckoutSession, error)
}

// AccountHandler serves the caller's own account and billing endpoints.
type AccountHandler struct {
	svc accountService
	log *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(svc accountService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: logger.With("handler", "account")}
}

// Me handles GET /me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.Me(r.Context(), callerOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, meResponse{
		accountResponse:  toAccount(acc.Account, acc.Role),
		CanCreateProfile: acc.CanCreateProfile,
	})
}

type settingsRequest struct {
	FullName    *string `json:"fullName"`
	CompanyName *string `json:"companyName"`
}

// UpdateSettings handles PATCH /me/settings.
func (h *AccountHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	caller := callerOf(r)
	acc, err := h.svc.UpdateSettings(r.Context(), caller, account.UpdateSettingsInput{
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccount(*acc, caller.Role))
}

// BillingHistory handles GET /billing/history.
func (h *AccountHandler) BillingHistory(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.BillingHistory(r.Context(), callerOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBillingRecords(records))
}

type checkoutRequest struct {
	PlanID string `json:"planId"`
}

// Checkout handles POST /billing/checkout.
func (h *AccountHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	sess, err := h.svc.Checkout(r.Context(), callerOf(r), domain.Plan(req.PlanID))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, checkoutResponse{
		Plan:        sess.Plan.String(),
		Configured:  sess.Configured,
		CheckoutURL: sess.CheckoutURL,
		Message:     sess.Message,
	})
}
