package domain

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// MaxSocialLinks caps the number of links a profile may carry.
const MaxSocialLinks = 20

// SocialLinks is an ordered list of absolute http(s) URLs.
type SocialLinks []string

// NewSocialLinks trims, validates, and de-duplicates raw link strings while
// preserving their order. Blank entries are dropped.
func NewSocialLinks(raw []string) (SocialLinks, error) {
	links := make(SocialLinks, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for i, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if err := validateLink(r); err != nil {
			return nil, NewValidationError(fmt.Sprintf("social_links[%d]", i), err.Error())
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		links = append(links, r)
	}

	if len(links) > MaxSocialLinks {
		return nil, NewValidationError("social_links", fmt.Sprintf("at most %d links allowed", MaxSocialLinks))
	}
	return links, nil
}

// ParseSocialLinks decodes the stored JSON array and re-validates it.
// Empty or null input yields an empty list.
func ParseSocialLinks(data []byte) (SocialLinks, error) {
	if len(data) == 0 || string(data) == "null" {
		return SocialLinks{}, nil
	}
	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode social links: %w", err)
	}
	return NewSocialLinks(raw)
}

// JSON encodes the list as a JSON array; a nil list encodes as [].
func (l SocialLinks) JSON() []byte {
	if l == nil {
		return []byte("[]")
	}
	b, _ := json.Marshal([]string(l))
	return b
}

// Strings returns the links as a plain slice, never nil.
func (l SocialLinks) Strings() []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}

func validateLink(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must be an http or https URL")
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
