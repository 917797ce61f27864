package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

type schemaService interface {
	GenerateSchema(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.SchemaSnippet, error)
	GetSchema(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.SchemaSnippet, error)
}

// SchemaHandler serves JSON-LD snippets.
type SchemaHandler struct {
	svc schemaService
	log *slog.Logger
}

// NewSchemaHandler creates a SchemaHandler.
func NewSchemaHandler(svc schemaService, logger *slog.Logger) *SchemaHandler {
	return &SchemaHandler{svc: svc, log: logger.With("handler", "schema")}
}

// Get handles GET /profiles/{id}/schema.
func (h *SchemaHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.GetSchema)
}

// Generate handles POST /profiles/{id}/schema.
func (h *SchemaHandler) Generate(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.svc.GenerateSchema)
}

func (h *SchemaHandler) serve(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, domain.Caller, uuid.UUID) (*domain.SchemaSnippet, error),
) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	snippet, err := op(r.Context(), callerOf(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toSchema(*snippet))
}
