package publication

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/access"
)

// PublishPressKit creates or updates the profile's press kit with the given
// settings and publishes it. The kit slug is derived from the profile slug.
func (s *Service) PublishPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID, settings domain.PressKitSettings) (*domain.PressKit, error) {
	p, err := s.owned(ctx, caller, profileID)
	if err != nil {
		return nil, fmt.Errorf("publication.PublishPressKit: %w", err)
	}

	kit, err := s.kits.Upsert(ctx, domain.PressKit{
		ProfileID:        p.ID,
		Slug:             domain.PressKitSlug(p.Slug),
		PressKitSettings: settings,
		IsPublished:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("publication.PublishPressKit: %w", err)
	}

	s.log.InfoContext(ctx, "press kit published",
		slog.String("profile_id", p.ID.String()),
		slog.String("slug", kit.Slug),
	)
	return kit, nil
}

// UnpublishPressKit hides the profile's press kit. Settings and counters are kept.
func (s *Service) UnpublishPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.PressKit, error) {
	if _, err := s.owned(ctx, caller, profileID); err != nil {
		return nil, fmt.Errorf("publication.UnpublishPressKit: %w", err)
	}

	kit, err := s.kits.SetPublished(ctx, profileID, false)
	if err != nil {
		return nil, fmt.Errorf("publication.UnpublishPressKit: %w", err)
	}
	return kit, nil
}

// GetPressKit returns the owner's view of the press kit, published or not.
func (s *Service) GetPressKit(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.PressKit, error) {
	if _, err := s.owned(ctx, caller, profileID); err != nil {
		return nil, fmt.Errorf("publication.GetPressKit: %w", err)
	}

	kit, err := s.kits.GetByProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("publication.GetPressKit: %w", err)
	}
	return kit, nil
}

func (s *Service) owned(ctx context.Context, caller domain.Caller, profileID uuid.UUID) (*domain.Profile, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	p, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(caller, p.OwnerID); err != nil {
		return nil, err
	}
	return p, nil
}
