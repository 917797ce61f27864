package profile

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

const (
	maxNameLen     = 200
	maxJobTitleLen = 200
	maxWebsiteLen  = 512
	maxNotesLen    = 10000
)

// CreateProfileInput holds the fields of a new profile. Empty Name and Type
// fall back to defaults.
type CreateProfileInput struct {
	Type        domain.ProfileType
	Name        string
	JobTitle    string
	Website     string
	BioNotes    string
	SocialLinks []string
	MainImage   *string
}

// Validate normalizes the input and returns the validated social links.
func (i *CreateProfileInput) Validate() (domain.SocialLinks, error) {
	var errs []domain.FieldError

	i.Name = domain.NormalizeText(i.Name)
	if i.Name == "" {
		i.Name = domain.DefaultProfileName
	}
	if i.Type == "" {
		i.Type = domain.ProfileTypePerson
	}
	i.JobTitle = strings.TrimSpace(i.JobTitle)
	i.Website = strings.TrimSpace(i.Website)

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be person, organization or brand"})
	}
	errs = append(errs, checkLengths(i.Name, i.JobTitle, i.Website, i.BioNotes)...)

	links, err := domain.NewSocialLinks(i.SocialLinks)
	if err != nil {
		errs = append(errs, fieldErrors(err)...)
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return links, nil
}

// UpdateProfileInput holds a partial update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Type        *domain.ProfileType
	Name        *string
	JobTitle    *string
	Website     *string
	BioNotes    *string
	SocialLinks *[]string
	Slug        *string
	MainImage   *string
}

// Validate checks the input and converts it into a store update.
func (i UpdateProfileInput) Validate() (domain.ProfileUpdate, error) {
	var errs []domain.FieldError
	u := domain.ProfileUpdate{
		Type:      i.Type,
		BioNotes:  i.BioNotes,
		MainImage: i.MainImage,
	}

	if i.Type != nil && !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "must be person, organization or brand"})
	}
	if i.Name != nil {
		name := domain.NormalizeText(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		u.Name = &name
	}
	if i.JobTitle != nil {
		v := strings.TrimSpace(*i.JobTitle)
		u.JobTitle = &v
	}
	if i.Website != nil {
		v := strings.TrimSpace(*i.Website)
		u.Website = &v
	}
	errs = append(errs, checkLengths(deref(u.Name), deref(u.JobTitle), deref(u.Website), deref(i.BioNotes))...)

	if i.SocialLinks != nil {
		links, err := domain.NewSocialLinks(*i.SocialLinks)
		if err != nil {
			errs = append(errs, fieldErrors(err)...)
		}
		u.SocialLinks = &links
	}
	if i.Slug != nil {
		if !domain.IsValidSlug(*i.Slug) {
			errs = append(errs, domain.FieldError{Field: "slug", Message: "must be lowercase letters and digits separated by single hyphens"})
		}
		u.Slug = i.Slug
	}

	if len(errs) > 0 {
		return domain.ProfileUpdate{}, &domain.ValidationError{Errors: errs}
	}
	return u, nil
}

// ListProfilesInput selects whose profiles to list. A nil OwnerID means the caller.
type ListProfilesInput struct {
	OwnerID *uuid.UUID
}

func checkLengths(name, jobTitle, website, notes string) []domain.FieldError {
	var errs []domain.FieldError
	if len(name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}
	if len(jobTitle) > maxJobTitleLen {
		errs = append(errs, domain.FieldError{Field: "job_title", Message: "too long"})
	}
	if len(website) > maxWebsiteLen {
		errs = append(errs, domain.FieldError{Field: "website", Message: "too long"})
	}
	if len(notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "bio_notes", Message: "too long"})
	}
	return errs
}

func fieldErrors(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "social_links", Message: err.Error()}}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
