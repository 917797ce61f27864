package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/profile"
)

type profileService interface {
	CreateProfile(ctx context.Context, caller domain.Caller, in profile.CreateProfileInput) (*domain.Profile, error)
	GetProfile(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Profile, error)
	ListProfiles(ctx context.Context, caller domain.Caller, in profile.ListProfilesInput) ([]domain.Profile, error)
	UpdateProfile(ctx context.Context, caller domain.Caller, id uuid.UUID, in profile.UpdateProfileInput) (*domain.Profile, error)
	DeleteProfile(ctx context.Context, caller domain.Caller, id uuid.UUID) error
	SetProfilePublished(ctx context.Context, caller domain.Caller, id uuid.UUID, published bool) (*domain.Profile, error)
	ListBiographies(ctx context.Context, caller domain.Caller, id uuid.UUID) ([]domain.Biography, error)
	GetAnalytics(ctx context.Context, caller domain.Caller, id uuid.UUID, days int) ([]domain.DailyViews, error)
}

// ProfileHandler serves the owner's profile endpoints.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(svc profileService, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: logger.With("handler", "profile")}
}

type createProfileRequest struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	JobTitle    string   `json:"jobTitle"`
	Website     string   `json:"website"`
	BioNotes    string   `json:"bioNotes"`
	SocialLinks []string `json:"socialLinks"`
	MainImage   *string  `json:"mainImage"`
}

type updateProfileRequest struct {
	Type        *string   `json:"type"`
	Name        *string   `json:"name"`
	JobTitle    *string   `json:"jobTitle"`
	Website     *string   `json:"website"`
	BioNotes    *string   `json:"bioNotes"`
	SocialLinks *[]string `json:"socialLinks"`
	Slug        *string   `json:"slug"`
	MainImage   *string   `json:"mainImage"`
}

type publishedRequest struct {
	Published bool `json:"published"`
}

// List handles GET /profiles. Admins may pass ?owner=<uuid>.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	var in profile.ListProfilesInput
	if v := r.URL.Query().Get("owner"); v != "" {
		owner, err := uuid.Parse(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("owner", "must be a UUID"))
			return
		}
		in.OwnerID = &owner
	}

	list, err := h.svc.ListProfiles(r.Context(), callerOf(r), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]profileResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProfile(p))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /profiles.
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.CreateProfile(r.Context(), callerOf(r), profile.CreateProfileInput{
		Type:        domain.ProfileType(req.Type),
		Name:        req.Name,
		JobTitle:    req.JobTitle,
		Website:     req.Website,
		BioNotes:    req.BioNotes,
		SocialLinks: req.SocialLinks,
		MainImage:   req.MainImage,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProfile(*p))
}

// Get handles GET /profiles/{id}.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.GetProfile(r.Context(), callerOf(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(*p))
}

// Update handles PATCH /profiles/{id}.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in := profile.UpdateProfileInput{
		Name:        req.Name,
		JobTitle:    req.JobTitle,
		Website:     req.Website,
		BioNotes:    req.BioNotes,
		SocialLinks: req.SocialLinks,
		Slug:        req.Slug,
		MainImage:   req.MainImage,
	}
	if req.Type != nil {
		t := domain.ProfileType(*req.Type)
		in.Type = &t
	}

	p, err := h.svc.UpdateProfile(r.Context(), callerOf(r), id, in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(*p))
}

// Delete handles DELETE /profiles/{id}.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.DeleteProfile(r.Context(), callerOf(r), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetPublished handles PUT /profiles/{id}/published.
func (h *ProfileHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req publishedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := h.svc.SetProfilePublished(r.Context(), callerOf(r), id, req.Published)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(*p))
}

// Biographies handles GET /profiles/{id}/biographies.
func (h *ProfileHandler) Biographies(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	bios, err := h.svc.ListBiographies(r.Context(), callerOf(r), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBiographies(bios))
}

// Analytics handles GET /profiles/{id}/analytics?days=30.
func (h *ProfileHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	days, err := queryInt(r, "days", 0)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	rows, err := h.svc.GetAnalytics(r.Context(), callerOf(r), id, days)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDailyViews(rows))
}
