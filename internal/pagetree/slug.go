package pagetree

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a stable anchor ID from header text: accents stripped,
// lowercased, runs of non-alphanumerics collapsed to single dashes.
func Slug(text string) string {
	flattened, _, err := transform.String(deaccent, text)
	if err != nil {
		flattened = text
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(flattened) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
