package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/access"
)

const summaryRunes = 200

// GenerateBiographies produces each requested variant in order. A failing
// variant is reported in the result and does not stop the others. When every
// variant fails the result is returned together with domain.ErrCollaborator.
func (s *Service) GenerateBiographies(ctx context.Context, caller domain.Caller, in GenerateInput) (GenerateResult, error) {
	if !caller.IsAuthenticated() {
		return GenerateResult{}, domain.ErrUnauthorized
	}
	if err := in.Validate(); err != nil {
		return GenerateResult{}, err
	}

	p, err := s.profiles.GetByID(ctx, in.ProfileID)
	if err != nil {
		return GenerateResult{}, fmt.Errorf("generation.GenerateBiographies: %w", err)
	}
	if err := access.RequireOwner(caller, p.OwnerID); err != nil {
		return GenerateResult{}, err
	}

	snap := snapshotOf(p)
	if in.Snapshot != nil {
		snap = *in.Snapshot
	}
	if snap.Name == "" {
		return GenerateResult{}, domain.NewValidationError("profile.name", "required")
	}

	res := GenerateResult{
		Biographies: make([]domain.Biography, 0, len(in.Variants)),
	}
	for _, kind := range in.Variants {
		if err := ctx.Err(); err != nil {
			res.Failures = append(res.Failures, VariantFailure{Kind: kind, Message: "request cancelled"})
			continue
		}

		bio, err := s.generateOne(ctx, caller, p.ID, kind, in.Tone, snap)
		if err != nil {
			res.Failures = append(res.Failures, VariantFailure{Kind: kind, Message: err.Error()})
			continue
		}
		res.Biographies = append(res.Biographies, *bio)
	}

	s.log.InfoContext(ctx, "biographies generated",
		slog.String("user_id", caller.UserID.String()),
		slog.String("profile_id", p.ID.String()),
		slog.Int("requested", len(in.Variants)),
		slog.Int("failed", len(res.Failures)),
	)

	if len(res.Biographies) == 0 {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("generation.GenerateBiographies: %w", err)
		}
		return res, fmt.Errorf("generation.GenerateBiographies: all %d variants failed: %w", len(in.Variants), domain.ErrCollaborator)
	}
	return res, nil
}

// generateOne runs one variant: completion, upsert, usage entry. The returned
// error message is safe to show to the caller.
func (s *Service) generateOne(
	ctx context.Context,
	caller domain.Caller,
	profileID uuid.UUID,
	kind domain.BioType,
	tone domain.Tone,
	snap ProfileSnapshot,
) (*domain.Biography, error) {
	prompt := BuildPrompt(kind, tone, snap)
	entry := domain.UsageLogEntry{
		UserID:    caller.UserID,
		ProfileID: &profileID,
		Action:    fmt.Sprintf("generate_%s_bio", kind),
		Status:    domain.UsageStatusFailed,
		RawPrompt: prompt,
	}
	defer func() { s.logUsage(ctx, entry) }()

	start := time.Now()
	out, err := s.llm.Complete(ctx, domain.CompletionRequest{
		System:    SystemPrompt,
		Prompt:    prompt,
		MaxTokens: s.maxTokens,
	})
	s.observe(kind, err == nil, out.TokensUsed, time.Since(start))
	if err != nil {
		s.log.ErrorContext(ctx, "completion failed",
			slog.String("profile_id", profileID.String()),
			slog.String("variant", string(kind)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("completion failed")
	}

	entry.TokensUsed = out.TokensUsed

	bio, err := s.bios.Upsert(ctx, domain.Biography{
		ProfileID:   profileID,
		Type:        kind,
		Tone:        tone,
		Content:     out.Text,
		GeneratedAt: s.now().UTC(),
	})
	if err != nil {
		s.log.ErrorContext(ctx, "store biography failed",
			slog.String("profile_id", profileID.String()),
			slog.String("variant", string(kind)),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("storing biography failed")
	}

	entry.Status = domain.UsageStatusSuccess
	entry.ResponseSummary = summarize(out.Text, summaryRunes)
	return bio, nil
}

// logUsage writes the entry even after the request context is cancelled.
func (s *Service) logUsage(ctx context.Context, e domain.UsageLogEntry) {
	if err := s.usage.Create(context.WithoutCancel(ctx), e); err != nil {
		s.log.WarnContext(ctx, "usage log write failed",
			slog.String("action", e.Action),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) observe(kind domain.BioType, ok bool, tokens int, elapsed time.Duration) {
	if s.metrics != nil {
		s.metrics.ObserveVariant(string(kind), ok, tokens, elapsed)
	}
}
