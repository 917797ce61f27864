package publication

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// PublicProfile is the anonymous view of a published profile.
type PublicProfile struct {
	Profile     domain.Profile
	Biographies []domain.Biography
	Schema      *domain.SchemaSnippet
}

// PublicPressKit is the anonymous view of a published press kit.
type PublicPressKit struct {
	PressKit    domain.PressKit
	Profile     domain.Profile
	Biographies []domain.Biography
}

// GetPublicProfile returns a published profile by slug and counts the view.
// Unpublished profiles are reported as not found. visitor is an opaque
// fingerprint used to count unique visitors per day; it may be empty.
func (s *Service) GetPublicProfile(ctx context.Context, slug, visitor string) (*PublicProfile, error) {
	p, err := s.profiles.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("publication.GetPublicProfile: %w", err)
	}

	bios, err := s.bios.ListByProfile(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("publication.GetPublicProfile: %w", err)
	}

	snippet, err := s.snippets.GetByProfile(ctx, p.ID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		snippet = nil
	case err != nil:
		return nil, fmt.Errorf("publication.GetPublicProfile: %w", err)
	}

	s.recordView(ctx, p, visitor)

	return &PublicProfile{Profile: *p, Biographies: bios, Schema: snippet}, nil
}

// recordView bumps the daily counters. Failures are logged and never fail the view.
func (s *Service) recordView(ctx context.Context, p *domain.Profile, visitor string) {
	day := s.now().UTC().Truncate(24 * time.Hour)

	unique, err := s.visitors.FirstVisit(ctx, p.ID, visitor, day)
	if err != nil {
		s.log.WarnContext(ctx, "visitor lookup failed",
			slog.String("profile_id", p.ID.String()),
			slog.String("error", err.Error()),
		)
		unique = false
	}

	if err := s.analytics.RecordView(ctx, p.ID, day, unique); err != nil {
		s.log.WarnContext(ctx, "record view failed",
			slog.String("profile_id", p.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// GetPublicPressKit returns a published press kit by slug and increments its
// view counter.
func (s *Service) GetPublicPressKit(ctx context.Context, slug string) (*PublicPressKit, error) {
	kit, err := s.kits.TrackView(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("publication.GetPublicPressKit: %w", err)
	}

	view, err := s.kitView(ctx, kit)
	if err != nil {
		return nil, fmt.Errorf("publication.GetPublicPressKit: %w", err)
	}
	return view, nil
}

// DownloadPressKit renders a published press kit as plain text and
// increments its download counter.
func (s *Service) DownloadPressKit(ctx context.Context, slug string) (*PressKitDocument, error) {
	kit, err := s.kits.TrackDownload(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("publication.DownloadPressKit: %w", err)
	}

	view, err := s.kitView(ctx, kit)
	if err != nil {
		return nil, fmt.Errorf("publication.DownloadPressKit: %w", err)
	}

	doc := RenderPressKit(view.PressKit, view.Profile, view.Biographies)
	return &doc, nil
}

func (s *Service) kitView(ctx context.Context, kit *domain.PressKit) (*PublicPressKit, error) {
	p, err := s.profiles.GetByID(ctx, kit.ProfileID)
	if err != nil {
		return nil, err
	}
	bios, err := s.bios.ListByProfile(ctx, kit.ProfileID)
	if err != nil {
		return nil, err
	}
	return &PublicPressKit{PressKit: *kit, Profile: *p, Biographies: bios}, nil
}
