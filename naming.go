package razorgen

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	pascalBoundaryRe = regexp.MustCompile(`(?:[ _-]+|^)([a-zA-Z])`)
	acronymRe        = regexp.MustCompile(`(\p{Lu}+)(\p{Lu}\p{Ll})`)
	wordBoundaryRe   = regexp.MustCompile(`([\p{Ll}\d])(\p{Lu})`)
	separatorRe      = regexp.MustCompile(`[-\s]`)
)

// Pascalize converts a slug-like name into a C# identifier.
// Letters following a space, underscore or hyphen are upper-cased and the
// separators dropped; characters that cannot appear in an identifier are removed.
// Example: "hero-banner title" → "HeroBannerTitle"
func Pascalize(name string) string {
	s := pascalBoundaryRe.ReplaceAllStringFunc(strings.TrimSpace(name), func(m string) string {
		return strings.ToUpper(m[len(m)-1:])
	})

	var sb strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Kebaberize converts a name into a lower-case, hyphen-separated URL slug.
// Example: "OurTeam" → "our-team"
func Kebaberize(name string) string {
	s := acronymRe.ReplaceAllString(name, "${1}_${2}")
	s = wordBoundaryRe.ReplaceAllString(s, "${1}_${2}")
	s = separatorRe.ReplaceAllString(s, "_")
	return strings.ReplaceAll(strings.ToLower(s), "_", "-")
}
