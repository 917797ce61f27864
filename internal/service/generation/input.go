package generation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// ProfileSnapshot is the profile data a prompt is built from. Callers may
// pass unsaved edits instead of the stored profile.
type ProfileSnapshot struct {
	Name        string
	JobTitle    string
	Website     string
	BioNotes    string
	SocialLinks []string
}

func snapshotOf(p *domain.Profile) ProfileSnapshot {
	return ProfileSnapshot{
		Name:        p.Name,
		JobTitle:    p.JobTitle,
		Website:     p.Website,
		BioNotes:    p.BioNotes,
		SocialLinks: p.SocialLinks.Strings(),
	}
}

// GenerateInput holds parameters for a generation request. A nil Snapshot
// means the stored profile fields are used. Empty Tone means professional.
type GenerateInput struct {
	ProfileID uuid.UUID
	Variants  []domain.BioType
	Tone      domain.Tone
	Snapshot  *ProfileSnapshot
}

// Validate checks the variant list and tone and fills in the default tone.
func (i *GenerateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}

	if len(i.Variants) == 0 {
		errs = append(errs, domain.FieldError{Field: "variants", Message: "at least one variant is required"})
	}
	seen := make(map[domain.BioType]struct{}, len(i.Variants))
	for idx, v := range i.Variants {
		field := fmt.Sprintf("variants[%d]", idx)
		if !v.IsValid() {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("unknown variant %q", v)})
			continue
		}
		if _, dup := seen[v]; dup {
			errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("duplicate variant %q", v)})
			continue
		}
		seen[v] = struct{}{}
	}

	if i.Tone == "" {
		i.Tone = domain.ToneProfessional
	}
	if !i.Tone.IsValid() {
		errs = append(errs, domain.FieldError{Field: "tone", Message: fmt.Sprintf("unknown tone %q", i.Tone)})
	}

	if i.Snapshot != nil {
		i.Snapshot.Name = domain.NormalizeText(i.Snapshot.Name)
		links, err := domain.NewSocialLinks(i.Snapshot.SocialLinks)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "profile.social_links", Message: "must be absolute http(s) URLs"})
		} else {
			i.Snapshot.SocialLinks = links.Strings()
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// VariantFailure names a requested variant that did not produce a biography.
type VariantFailure struct {
	Kind    domain.BioType
	Message string
}

// GenerateResult lists stored biographies in request order and the variants
// that failed.
type GenerateResult struct {
	Biographies []domain.Biography
	Failures    []VariantFailure
}
