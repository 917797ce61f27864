package domain

import (
	"time"

	"github.com/google/uuid"
)

// BioType is a biography variant kind.
type BioType string

const (
	BioTypeShort    BioType = "short"
	BioTypeMedium   BioType = "medium"
	BioTypeLong     BioType = "long"
	BioTypeLinkedIn BioType = "linkedin"
	BioTypeSpeaker  BioType = "speaker"
	BioTypePress    BioType = "press"
	BioTypeX        BioType = "x_bio"
	BioTypeFacebook BioType = "facebook_bio"
)

// AllBioTypes lists every variant kind in display order.
var AllBioTypes = []BioType{
	BioTypeShort, BioTypeMedium, BioTypeLong, BioTypeLinkedIn,
	BioTypeSpeaker, BioTypePress, BioTypeX, BioTypeFacebook,
}

func (t BioType) String() string { return string(t) }

func (t BioType) IsValid() bool {
	switch t {
	case BioTypeShort, BioTypeMedium, BioTypeLong, BioTypeLinkedIn,
		BioTypeSpeaker, BioTypePress, BioTypeX, BioTypeFacebook:
		return true
	}
	return false
}

// Tone is the writing style applied to a generation request.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneFriendly     Tone = "friendly"
	ToneFormal       Tone = "formal"
	ToneCasual       Tone = "casual"
	ToneAcademic     Tone = "academic"
	ToneStorytelling Tone = "storytelling"
)

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	switch t {
	case ToneProfessional, ToneFriendly, ToneFormal, ToneCasual, ToneAcademic, ToneStorytelling:
		return true
	}
	return false
}

// Biography is one generated text, unique per (ProfileID, Type).
type Biography struct {
	ID          uuid.UUID
	ProfileID   uuid.UUID
	Type        BioType
	Tone        Tone
	Content     string
	IsLocked    bool
	GeneratedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FindBiography returns the first biography of the given type, or nil.
func FindBiography(bios []Biography, t BioType) *Biography {
	for i := range bios {
		if bios[i].Type == t {
			return &bios[i]
		}
	}
	return nil
}
