package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

const schemaContext = "https://schema.org"

// document fixes the key order of the rendered JSON-LD.
type document struct {
	Context  string   `json:"@context"`
	Type     string   `json:"@type"`
	Name     string   `json:"name"`
	JobTitle string   `json:"jobTitle,omitempty"`
	URL      string   `json:"url,omitempty"`
	SameAs   []string `json:"sameAs,omitempty"`
}

// TypeFor maps a profile type to its schema.org type.
func TypeFor(t domain.ProfileType) domain.SchemaType {
	if t == domain.ProfileTypeOrganization {
		return domain.SchemaTypeOrganization
	}
	return domain.SchemaTypePerson
}

// Build renders the JSON-LD document of a profile with two-space
// indentation. It has no side effects and is byte-stable for equal input.
func Build(p domain.Profile) (domain.SchemaDocument, error) {
	typ := TypeFor(p.Type)

	doc := document{
		Context:  schemaContext,
		Type:     typ.String(),
		Name:     p.Name,
		JobTitle: p.JobTitle,
		URL:      p.Website,
		SameAs:   p.SocialLinks,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return domain.SchemaDocument{}, fmt.Errorf("encode json-ld: %w", err)
	}

	return domain.SchemaDocument{
		Type: typ,
		Text: string(bytes.TrimRight(buf.Bytes(), "\n")),
	}, nil
}
