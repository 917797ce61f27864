package domain

import (
	"time"

	"github.com/google/uuid"
)

// SchemaType is the schema.org @type of a structured-data snippet.
type SchemaType string

const (
	SchemaTypePerson       SchemaType = "Person"
	SchemaTypeOrganization SchemaType = "Organization"
)

func (t SchemaType) String() string { return string(t) }

// SchemaSnippet is the single JSON-LD document stored for a profile.
type SchemaSnippet struct {
	ID                uuid.UUID
	ProfileID         uuid.UUID
	SchemaType        SchemaType
	SchemaText        string
	Validated         bool
	ValidationMessage string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// PressKitSettings are the inclusion flags chosen by the owner.
type PressKitSettings struct {
	IncludeShortBio bool
	IncludeLongBio  bool
	IncludeImages   bool
	IncludeContacts bool
}

// DefaultPressKitSettings matches the defaults of a freshly created kit.
func DefaultPressKitSettings() PressKitSettings {
	return PressKitSettings{
		IncludeShortBio: true,
		IncludeLongBio:  true,
		IncludeImages:   true,
		IncludeContacts: true,
	}
}

// PressKit is the single press kit of a profile.
type PressKit struct {
	ID        uuid.UUID
	ProfileID uuid.UUID
	Slug      string
	PressKitSettings
	IsPublished    bool
	ViewsCount     int64
	DownloadsCount int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PressKitSlug derives the press kit slug from its profile slug.
func PressKitSlug(profileSlug string) string {
	return profileSlug + "-kit"
}

// SchemaDocument is a rendered JSON-LD document and its schema.org type.
type SchemaDocument struct {
	Type SchemaType
	Text string
}
