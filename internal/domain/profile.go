package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProfileType is the kind of subject a biography profile describes.
type ProfileType string

const (
	ProfileTypePerson       ProfileType = "person"
	ProfileTypeOrganization ProfileType = "organization"
	ProfileTypeBrand        ProfileType = "brand"
)

func (t ProfileType) String() string { return string(t) }

func (t ProfileType) IsValid() bool {
	switch t {
	case ProfileTypePerson, ProfileTypeOrganization, ProfileTypeBrand:
		return true
	}
	return false
}

// DefaultProfileName is used when a profile is created without a name.
const DefaultProfileName = "Untitled Profile"

// Profile is one biography subject owned by an account.
type Profile struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Type        ProfileType
	Name        string
	JobTitle    string
	Website     string
	BioNotes    string
	SocialLinks SocialLinks
	Slug        string
	MainImage   *string
	Published   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DailyViews is one row of profile analytics.
type DailyViews struct {
	ProfileID      uuid.UUID
	Date           time.Time
	Views          int
	UniqueVisitors int
}

// ProfileUpdate carries the profile fields to change. Nil fields are left untouched.
type ProfileUpdate struct {
	Type        *ProfileType
	Name        *string
	JobTitle    *string
	Website     *string
	BioNotes    *string
	SocialLinks *SocialLinks
	Slug        *string
	MainImage   *string
}
