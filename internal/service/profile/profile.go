package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
	"github.com/heartmarshall/biokit-backend/internal/service/access"
)

const slugAttempts = 3

// CreateProfile stores a new profile for the caller. The profile slot is taken
// by a conditional update in the same transaction as the insert, so two
// concurrent creates can never both pass the plan limit.
func (s *Service) CreateProfile(ctx context.Context, caller domain.Caller, in CreateProfileInput) (*domain.Profile, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	links, err := in.Validate()
	if err != nil {
		return nil, err
	}

	var created *domain.Profile
	for attempt := 1; ; attempt++ {
		created, err = s.createOnce(ctx, caller.UserID, in, links)
		if err == nil || !errors.Is(err, domain.ErrAlreadyExists) || attempt == slugAttempts {
			break
		}
		s.log.WarnContext(ctx, "slug collision, retrying", slog.Int("attempt", attempt))
	}
	if err != nil {
		return nil, fmt.Errorf("profile.CreateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile created",
		slog.String("user_id", caller.UserID.String()),
		slog.String("profile_id", created.ID.String()),
		slog.String("slug", created.Slug),
	)
	return created, nil
}

func (s *Service) createOnce(ctx context.Context, ownerID uuid.UUID, in CreateProfileInput, links domain.SocialLinks) (*domain.Profile, error) {
	var created *domain.Profile

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		ok, err := s.accounts.ReserveProfileSlot(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("reserve slot: %w", err)
		}
		if !ok {
			return domain.NewValidationError("profile", "profile limit reached")
		}

		created, err = s.profiles.Create(ctx, domain.Profile{
			OwnerID:     ownerID,
			Type:        in.Type,
			Name:        in.Name,
			JobTitle:    in.JobTitle,
			Website:     in.Website,
			BioNotes:    in.BioNotes,
			SocialLinks: links,
			Slug:        domain.BuildSlug(in.Name, s.slugSuffix()),
			MainImage:   in.MainImage,
		})
		if err != nil {
			return fmt.Errorf("insert: %w", err)
		}
		return nil
	})
	return created, err
}

// GetProfile returns a profile the caller owns.
func (s *Service) GetProfile(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Profile, error) {
	p, err := s.owned(ctx, caller, id)
	if err != nil {
		return nil, fmt.Errorf("profile.GetProfile: %w", err)
	}
	return p, nil
}

// ListProfiles returns the caller's profiles, most recently updated first.
// Admins may list another owner's profiles.
func (s *Service) ListProfiles(ctx context.Context, caller domain.Caller, in ListProfilesInput) ([]domain.Profile, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	ownerID := caller.UserID
	if in.OwnerID != nil {
		if err := access.RequireOwner(caller, *in.OwnerID); err != nil {
			return nil, err
		}
		ownerID = *in.OwnerID
	}

	profiles, err := s.profiles.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("profile.ListProfiles: %w", err)
	}
	return profiles, nil
}

// UpdateProfile applies a partial update. A slug change moves the press kit
// slug along with it in the same transaction.
func (s *Service) UpdateProfile(ctx context.Context, caller domain.Caller, id uuid.UUID, in UpdateProfileInput) (*domain.Profile, error) {
	u, err := in.Validate()
	if err != nil {
		return nil, err
	}

	var updated *domain.Profile
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.owned(ctx, caller, id); err != nil {
			return err
		}

		p, err := s.profiles.Update(ctx, id, u)
		if err != nil {
			return err
		}
		if u.Slug != nil {
			if err := s.kits.SyncSlug(ctx, id, p.Slug); err != nil {
				return fmt.Errorf("sync press kit slug: %w", err)
			}
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("profile.UpdateProfile: %w", err)
	}
	return updated, nil
}

// DeleteProfile removes the profile with all of its artifacts and frees the
// owner's profile slot, atomically.
func (s *Service) DeleteProfile(ctx context.Context, caller domain.Caller, id uuid.UUID) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := s.owned(ctx, caller, id)
		if err != nil {
			return err
		}
		if err := s.profiles.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		if err := s.accounts.ReleaseProfileSlot(ctx, p.OwnerID); err != nil {
			return fmt.Errorf("release slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("profile.DeleteProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile deleted",
		slog.String("user_id", caller.UserID.String()),
		slog.String("profile_id", id.String()),
	)
	return nil
}

// SetProfilePublished sets the public visibility of a profile. Repeating the
// same value is a no-op for the caller.
func (s *Service) SetProfilePublished(ctx context.Context, caller domain.Caller, id uuid.UUID, published bool) (*domain.Profile, error) {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return nil, fmt.Errorf("profile.SetProfilePublished: %w", err)
	}

	p, err := s.profiles.SetPublished(ctx, id, published)
	if err != nil {
		return nil, fmt.Errorf("profile.SetProfilePublished: %w", err)
	}
	return p, nil
}

// ListBiographies returns the stored biographies of a profile, newest first.
func (s *Service) ListBiographies(ctx context.Context, caller domain.Caller, id uuid.UUID) ([]domain.Biography, error) {
	if _, err := s.owned(ctx, caller, id); err != nil {
		return nil, fmt.Errorf("profile.ListBiographies: %w", err)
	}

	bios, err := s.bios.ListByProfile(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("profile.ListBiographies: %w", err)
	}
	return bios, nil
}

// owned loads a profile and checks that the caller may act on it.
func (s *Service) owned(ctx context.Context, caller domain.Caller, id uuid.UUID) (*domain.Profile, error) {
	if !caller.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(caller, p.OwnerID); err != nil {
		return nil, err
	}
	return p, nil
}
