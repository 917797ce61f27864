package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

type pressKitService interface {
	PublishPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID, settings domain.PressKitSettings) (*domain.PressKit, error)
	UnpublishPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.PressKit, error)
	GetPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.PressKit, error)
}

// PressKitHandler serves the owner's press kit endpoints.
type PressKitHandler struct {
	svc pressKitService
	log *slog.Logger
}

// NewPressKitHandler creates a PressKitHandler.
func NewPressKitHandler(svc pressKitService, logger *slog.Logger) *PressKitHandler {
	return &PressKitHandler{svc: svc, log: logger.With("handler", "press_kit")}
}

// pressKitRequest flags default to true when omitted.
type pressKitRequest struct {
	IncludeShortBio *bool `json:"includeShortBio"`
	IncludeLongBio  *bool `json:"includeLongBio"`
	IncludeImages   *bool `json:"includeImages"`
	IncludeContacts *bool `json:"includeContacts"`
}

func (req pressKitRequest) settings() domain.PressKitSettings {
	s := domain.DefaultPressKitSettings()
	set := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	set(&s.IncludeShortBio, req.IncludeShortBio)
	set(&s.IncludeLongBio, req.IncludeLongBio)
	set(&s.IncludeImages, req.IncludeImages)
	set(&s.IncludeContacts, req.IncludeContacts)
	return s
}

// Get handles GET /profiles/{id}/press-kit.
func (h *PressKitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	kit, err := h.svc.GetPressKit(r.Context(), callerOf(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPressKit(*kit))
}

// Publish handles PUT /profiles/{id}/press-kit.
func (h *PressKitHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req pressKitRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	kit, err := h.svc.PublishPressKit(r.Context(), callerOf(r), id, req.settings())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPressKit(*kit))
}

// Unpublish handles DELETE /profiles/{id}/press-kit. The kit row is kept.
func (h *PressKitHandler) Unpublish(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	kit, err := h.svc.UnpublishPressKit(r.Context(), callerOf(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPressKit(*kit))
}
