package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/generation"
)

type generationService interface {
	GenerateBiographies(ctx context.Context, caller domain.Caller, in generation.GenerateInput) (generation.GenerateResult, error)
}

// GenerationHandler serves biography generation.
type GenerationHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerationHandler creates a GenerationHandler.
func NewGenerationHandler(svc generationService, logger *slog.Logger) *GenerationHandler {
	return &GenerationHandler{svc: svc, log: logger.With("handler", "generation")}
}

type snapshotRequest struct {
	Name        string   `json:"name"`
	JobTitle    string   `json:"jobTitle"`
	Website     string   `json:"website"`
	BioNotes    string   `json:"bioNotes"`
	SocialLinks []string `json:"socialLinks"`
}

type generateRequest struct {
	Variants []string         `json:"variants"`
	Tone     string           `json:"tone"`
	Profile  *snapshotRequest `json:"profile"`
}

type generateFailedResponse struct {
	Error    string                   `json:"error"`
	Failures []variantFailureResponse `json:"failures"`
}

// Generate handles POST /profiles/{id}/biographies/generate. Partial success
// is 200 with the failed variants listed; total failure is 502.
func (h *GenerationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in := generation.GenerateInput{
		ProfileID: id,
		Variants:  make([]domain.BioType, 0, len(req.Variants)),
		Tone:      domain.Tone(req.Tone),
	}
	for _, v := range req.Variants {
		in.Variants = append(in.Variants, domain.BioType(v))
	}
	if req.Profile != nil {
		in.Snapshot = &generation.ProfileSnapshot{
			Name:        req.Profile.Name,
			JobTitle:    req.Profile.JobTitle,
			Website:     req.Profile.Website,
			BioNotes:    req.Profile.BioNotes,
			SocialLinks: req.Profile.SocialLinks,
		}
	}

	res, err := h.svc.GenerateBiographies(r.Context(), callerOf(r), in)
	if err != nil {
		if errors.Is(err, domain.ErrCollaborator) && len(res.Failures) > 0 {
			writeJSON(w, http.StatusBadGateway, generateFailedResponse{
				Error:    "all variants failed",
				Failures: toGenerateResult(res).Failures,
			})
			return
		}
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toGenerateResult(res))
}
