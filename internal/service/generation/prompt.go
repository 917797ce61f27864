package generation

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// DefaultMaxTokens is the completion budget of one variant.
const DefaultMaxTokens = 1000

// SystemPrompt is sent with every variant request.
const SystemPrompt = "You are an experienced biography writer. Write professional, engaging biographies " +
	"based on the provided information. Do not hallucinate or add fictional details."

var lengths = map[domain.BioType]string{
	domain.BioTypeShort:    "max 120 words",
	domain.BioTypeMedium:   "about 300 words",
	domain.BioTypeLong:     "500-700 words",
	domain.BioTypeLinkedIn: "max 300 words, suitable for LinkedIn summary",
	domain.BioTypeSpeaker:  "max 200 words, suitable for conference introductions",
	domain.BioTypePress:    "max 400 words, suitable for press releases",
	domain.BioTypeX:        "max 160 characters",
	domain.BioTypeFacebook: "max 200 words",
}

// BuildPrompt renders the user prompt of one variant. Equal inputs always
// produce the same prompt.
func BuildPrompt(kind domain.BioType, tone domain.Tone, p ProfileSnapshot) string {
	length, ok := lengths[kind]
	if !ok {
		length = "medium length"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write a %s biography (%s) with a %s tone.\n\n", kind, length, tone)
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Title: %s\n", orDefault(p.JobTitle, "Not specified"))
	fmt.Fprintf(&b, "Website: %s\n", orDefault(p.Website, "Not specified"))
	fmt.Fprintf(&b, "Notes: %s\n", orDefault(p.BioNotes, "No additional notes"))
	fmt.Fprintf(&b, "Social Links: %s\n\n", orDefault(strings.Join(p.SocialLinks, ", "), "None"))
	b.WriteString("Return only the biography text, no headers or labels.")
	return b.String()
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// summarize returns the first n runes of s.
func summarize(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
