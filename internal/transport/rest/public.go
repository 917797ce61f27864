package rest

import (
	"context"
	"log/slog"
	"mime"
	"net/http"

	"github.com/heartmarshall/biokit-backend/internal/service/publication"
	"github.com/heartmarshall/biokit-backend/internal/transport/middleware"
)

type publicService interface {
	GetPublicProfile(ctx context.Context, slug, visitor string) (*publication.PublicProfile, error)
	GetPublicPressKit(ctx context.Context, slug string) (*publication.PublicPressKit, error)
	DownloadPressKit(ctx context.Context, slug string) (*publication.PressKitDocument, error)
}

// PublicHandler serves anonymous read endpoints for published content.
type PublicHandler struct {
	svc        publicService
	log        *slog.Logger
	trustProxy bool
}

// NewPublicHandler creates a PublicHandler. trustProxy selects whether
// X-Forwarded-For identifies the visitor.
func NewPublicHandler(svc publicService, logger *slog.Logger, trustProxy bool) *PublicHandler {
	return &PublicHandler{svc: svc, log: logger.With("handler", "public"), trustProxy: trustProxy}
}

// Profile handles GET /public/profiles/{slug}.
func (h *PublicHandler) Profile(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.GetPublicProfile(r.Context(), r.PathValue("slug"), h.visitor(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPublicProfilePage(page))
}

// PressKit handles GET /public/press-kits/{slug}.
func (h *PublicHandler) PressKit(w http.ResponseWriter, r *http.Request) {
	kit, err := h.svc.GetPublicPressKit(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPublicPressKit(kit))
}

// Download handles GET /public/press-kits/{slug}/download.
func (h *PublicHandler) Download(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.DownloadPressKit(r.Context(), r.PathValue("slug"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.Filename}))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc.Content))
}

// visitor fingerprints the client for unique-visitor counting. The tracker
// hashes it before storage.
func (h *PublicHandler) visitor(r *http.Request) string {
	return middleware.ClientIP(r, h.trustProxy) + "|" + r.UserAgent()
}
