package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

type templateService interface {
	ListTemplates(ctx context.Context, caller domain.Caller, templateType string) ([]domain.Template, error)
}

// TemplateHandler serves the template catalogue.
type TemplateHandler struct {
	svc templateService
	log *slog.Logger
}

// NewTemplateHandler creates a TemplateHandler.
func NewTemplateHandler(svc templateService, logger *slog.Logger) *TemplateHandler {
	return &TemplateHandler{svc: svc, log: logger.With("handler", "template")}
}

// List handles GET /templates?type=.
func (h *TemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListTemplates(r.Context(), callerOf(r), r.URL.Query().Get("type"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toTemplates(list))
}
