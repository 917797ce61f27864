package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

type adminService interface {
	ListAccounts(ctx context.Context, caller domain.Caller, limit, offset int) ([]domain.AccountWithRole, int, error)
	Stats(ctx context.Context, caller domain.Caller) (*domain.PlatformStats, error)
	ChangePlan(ctx context.Context, caller domain.Caller, userID uuid.UUID, plan domain.Plan) (*domain.Account, error)
	SetRole(ctx context.Context, caller domain.Caller, userID uuid.UUID, role domain.Role) error
}

// AdminHandler serves admin REST endpoints. Authorization is enforced by the service.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

type accountListResponse struct {
	Accounts []accountResponse `json:"accounts"`
	Total    int               `json:"total"`
}

// ListAccounts handles GET /admin/accounts?limit=50&offset=0.
func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	accounts, total, err := h.svc.ListAccounts(r.Context(), callerOf(r), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := accountListResponse{Accounts: make([]accountResponse, 0, len(accounts)), Total: total}
	for _, a := range accounts {
		resp.Accounts = append(resp.Accounts, toAccount(a.Account, a.Role))
	}
	writeJSON(w, http.StatusOK, resp)
}

type statsResponse struct {
	TotalAccounts   int `json:"totalAccounts"`
	TotalProfiles   int `json:"totalProfiles"`
	TotalAIRequests int `json:"totalAiRequests"`
}

// Stats handles GET /admin/stats.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context(), callerOf(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, statsResponse{
		TotalAccounts:   stats.TotalAccounts,
		TotalProfiles:   stats.TotalProfiles,
		TotalAIRequests: stats.TotalAIRequests,
	})
}

type planRequest struct {
	Plan string `json:"plan"`
}

// ChangePlan handles PUT /admin/accounts/{id}/plan.
func (h *AdminHandler) ChangePlan(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req planRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	acc, err := h.svc.ChangePlan(r.Context(), callerOf(r), id, domain.Plan(req.Plan))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccount(*acc, ""))
}

type roleRequest struct {
	Role string `json:"role"`
}

// SetRole handles PUT /admin/accounts/{id}/role.
func (h *AdminHandler) SetRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req roleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.SetRole(r.Context(), callerOf(r), id, domain.Role(req.Role)); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
