package ingest

import (
	"regexp"
	"strings"

	"mvault/internal/naming"
)

// labelKeywords mark uploader names that belong to labels or channel
// networks rather than artists.
var labelKeywords = []string{
	"LABEL", "ENTERTAINMENT", "SMTOWN", "JYP", "YG", "HYBE", "VEVO", "OFFICIAL",
	"RECORDS", "MUSIC", "LLOUD", "RCA", "ATLANTIC", "COLUMBIA", "INTERSCOPE",
}

// fanRepostPatterns recognize channels that carry an artist's name plus a
// repost suffix ("ASAPROCKYUPTOWN", "gambinoarchive").
var fanRepostPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(.+?)(?:UPTOWN|ARCHIVE|FAN|LIVE|VIDEOS?|CHANNEL|HD|OFFICIAL)$`),
	regexp.MustCompile(`(?i)^(.+?)(?:Music|Videos?|Channel|Archive|Fan|Live|HD)$`),
}

var (
	titleArtistDash   = regexp.MustCompile(`^([^-–—\[\(]+?)\s*[-–—]\s*`)
	titleArtistMV     = regexp.MustCompile(`^\[MV\]\s*(.+?)\s*[-–—]\s*`)
	titleArtistQuoted = regexp.MustCompile("^['\"“‘]([^'\"”’]+)['\"”’]?\\s*[-–—]?\\s*")
)

func isLabelChannel(channel string) bool {
	upper := strings.ToUpper(channel)
	for _, keyword := range labelKeywords {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}

func artistFromRepostChannel(channel string) (string, bool) {
	for _, pattern := range fanRepostPatterns {
		if m := pattern.FindStringSubmatch(channel); m != nil {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) > 2 {
				return candidate, true
			}
		}
	}
	return "", false
}

func artistFromTitle(rawTitle string) (string, bool) {
	if m := titleArtistDash.FindStringSubmatch(rawTitle); m != nil {
		candidate := strings.TrimSpace(m[1])
		if len(candidate) > 1 && len(candidate) < 50 {
			return candidate, true
		}
	}
	if m := titleArtistMV.FindStringSubmatch(rawTitle); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	if m := titleArtistQuoted.FindStringSubmatch(rawTitle); m != nil {
		return strings.TrimSpace(m[1]), true
	}
	return "", false
}

// ResolveArtist decides the artist for a video given its uploader channel
// and raw title. Known channels map directly; label channels and fan
// reposts are not artists, so for those the artist is recovered from the
// title (or from the repost channel name as a last resort). The result
// goes through capitalization normalization either way.
func ResolveArtist(channel, rawTitle string) string {
	mapped, isArtist := naming.NormalizeChannel(channel)

	artist := mapped
	if !isArtist {
		if fromTitle, ok := artistFromTitle(rawTitle); ok {
			artist = fromTitle
		}
	} else {
		repostArtist, isRepost := artistFromRepostChannel(mapped)
		if isLabelChannel(mapped) || isRepost {
			if fromTitle, ok := artistFromTitle(rawTitle); ok {
				artist = fromTitle
			} else if isRepost {
				artist = repostArtist
			}
		}
	}
	return naming.NormalizeArtist(artist)
}
