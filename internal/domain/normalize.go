package domain

import (
	"regexp"
	"strings"
	"unicode"
)

const maxSlugBase = 48

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Slugify turns free text into a URL-safe slug base:
//   - lowercases ASCII letters and keeps digits
//   - collapses every other run of characters into a single hyphen
//   - trims leading/trailing hyphens and caps the length
//
// Non-ASCII letters are dropped. May return an empty string.
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	pendingHyphen := false

	for _, r := range strings.ToLower(text) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
			continue
		}
		pendingHyphen = true
	}

	s := b.String()
	if len(s) > maxSlugBase {
		s = strings.TrimRight(s[:maxSlugBase], "-")
	}
	return s
}

// BuildSlug joins a slugified name and a random suffix. An empty base falls
// back to "profile".
func BuildSlug(name, suffix string) string {
	base := Slugify(name)
	if base == "" {
		base = "profile"
	}
	return base + "-" + suffix
}

// IsValidSlug reports whether s is lowercase alphanumerics separated by single hyphens.
func IsValidSlug(s string) bool {
	return len(s) <= 100 && slugPattern.MatchString(s)
}

// NormalizeText trims s and collapses internal whitespace runs into single spaces.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
