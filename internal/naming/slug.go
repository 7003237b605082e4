package naming

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugDropPattern       = regexp.MustCompile(`[^\w\s-]`)
	slugWhitespacePattern = regexp.MustCompile(`\s+`)
)

// asciiFold decomposes accented characters and drops the combining marks so
// names like "Beyoncé" slug to "beyonce" rather than losing the letter.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify converts free text into the canonical slug segment: lowercase,
// word characters and hyphens only, whitespace runs collapsed to single
// hyphens. Pure and deterministic; both file naming and matching rely on it
// producing identical output for identical input.
func Slugify(text string) string {
	folded, _, err := transform.String(asciiFold, text)
	if err == nil {
		text = folded
	}
	text = strings.ToLower(text)
	text = slugDropPattern.ReplaceAllString(text, "")
	text = slugWhitespacePattern.ReplaceAllString(strings.TrimSpace(text), "-")
	return text
}

// RecordSlug builds the primary key for a content record.
func RecordSlug(year, artist, title string) string {
	return year + "-" + Slugify(artist) + "-" + Slugify(title)
}
