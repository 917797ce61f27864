package publication

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/biokit-backend/internal/domain"
)

// PressKitDocument is a downloadable press kit.
type PressKitDocument struct {
	Filename string
	Content  string
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// RenderPressKit lays out the plain-text press kit. Sections are included
// according to the kit settings and the biographies that exist.
func RenderPressKit(kit domain.PressKit, p domain.Profile, bios []domain.Biography) PressKitDocument {
	var b strings.Builder

	b.WriteString("PRESS KIT\n")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	b.WriteString(p.Name + "\n")
	if p.JobTitle != "" {
		b.WriteString(p.JobTitle + "\n")
	}
	b.WriteString("\n")

	if short := domain.FindBiography(bios, domain.BioTypeShort); kit.IncludeShortBio && short != nil && short.Content != "" {
		section(&b, "SHORT BIOGRAPHY", short.Content)
	}
	if long := domain.FindBiography(bios, domain.BioTypeLong); kit.IncludeLongBio && long != nil && long.Content != "" {
		section(&b, "FULL BIOGRAPHY", long.Content)
	}

	if kit.IncludeContacts {
		b.WriteString("CONTACT INFORMATION\n")
		b.WriteString(strings.Repeat("-", 30) + "\n")
		if p.Website != "" {
			b.WriteString("Website: " + p.Website + "\n")
		}
		for _, link := range p.SocialLinks {
			b.WriteString(link + "\n")
		}
	}

	return PressKitDocument{
		Filename: PressKitFilename(p.Name),
		Content:  b.String(),
	}
}

func section(b *strings.Builder, title, body string) {
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	b.WriteString(body + "\n\n")
}

// PressKitFilename lowercases name, replaces whitespace runs with hyphens and
// appends "-press-kit.txt".
func PressKitFilename(name string) string {
	return strings.ToLower(whitespaceRun.ReplaceAllString(name, "-")) + "-press-kit.txt"
}
