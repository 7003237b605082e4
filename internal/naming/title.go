package naming

import (
	"regexp"
	"strings"
)

// titleNoisePatterns remove locale markers and bracketed official-video tags
// before any structural parsing happens.
var titleNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\[?CLIP OFFICIEL\]?`),
	regexp.MustCompile(`(?i)\(CLIP OFFICIEL\)`),
	regexp.MustCompile(`(?i)\[Official Video\]`),
	regexp.MustCompile(`(?i)\(Official Video\)`),
	regexp.MustCompile(`(?i)\[4K\]`),
	regexp.MustCompile(`(?i)\(4K\)`),
	regexp.MustCompile(`(?i)\[HD\]`),
	regexp.MustCompile(`(?i)\(HD\)`),
	regexp.MustCompile(`(?i)\[8K\]`),
	regexp.MustCompile(`(?i)\(8K\)`),
	regexp.MustCompile(`(?i)\[UHD\]`),
	regexp.MustCompile(`(?i)\(UHD\)`),
}

var (
	mvPrefixPattern     = regexp.MustCompile(`(?i)^\[MV\]\s*`)
	qualityTagPattern   = regexp.MustCompile(`(?i)\s*[\(\[]?\s*(?:HD|4K|8K|UHD|FHD|1080p|720p|480p|60fps|120fps|DTS-HD|DTS\s+HD)\s*[\)\]]?\s*`)
	resolutionPattern   = regexp.MustCompile(`(?i)\s*[\[\(]\s*\d+K\s*[\]\)]\s*`)
	audioFormatPattern  = regexp.MustCompile(`(?i)\s*[\(\[]?\s*(?:\d+\.\d+|Dolby|Atmos)\s*[\)\]]?\s*`)
	collabPrefixPattern = regexp.MustCompile(`^([^-–—]+?)\s*[-–—]\s*`)
	leadingJunkPattern  = regexp.MustCompile(`^[,\s-]+`)
	quotedTitlePattern  = regexp.MustCompile("['‘’\"“”]([^'‘’\"“”]+)['‘’\"“”]")
	leadingSepPattern   = regexp.MustCompile(`^[-:,–—]\s*`)
	featuringPattern    = regexp.MustCompile(`(?i)\s*[\(\[]?\s*(?:feat\.|featuring|ft\.|with)[\s.]+[^\)\]]+[\)\]]?\s*$`)
	whitespaceRuns      = regexp.MustCompile(`\s{2,}`)
	lastSeparatorGrab   = regexp.MustCompile(`[-–—]\s*([^-–—\[\(]+?)(?:\s*[\[\(]|$)`)
	basicQualityTags    = regexp.MustCompile(`(?i)\s*[\(\[]?\s*(?:HD|4K|8K|UHD|FHD)\s*[\)\]]?\s*`)
)

// trailing suffix markers removed in order after the structural passes
var titleSuffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*[\(\[]?\s*Official\s*(?:Music\s*)?Video\s*[\)\]]?\s*$`),
	regexp.MustCompile(`(?i)\s*[\(\[]?\s*Official\s*MV\s*[\)\]]?\s*$`),
	regexp.MustCompile(`(?i)\s*[\[\(]\s*MV\s*[\]\)]\s*$`),
	regexp.MustCompile(`(?i)\s*\(MV\)\s*$`),
	regexp.MustCompile(`(?i)\s*\[MV\]\s*$`),
	regexp.MustCompile(`(?i)\s*M/V\s*$`),
	regexp.MustCompile(`(?i)\s*[-:–—]\s*Official\s*(?:Music\s*)?Video$`),
	regexp.MustCompile(`(?i)\s*[-:–—]\s*Official\s*MV$`),
	regexp.MustCompile(`(?i)\s*\[[^\]]*Official[^\]]*\]`),
	regexp.MustCompile(`(?i)\s*\([^)]*Official[^)]*\)`),
	regexp.MustCompile(`(?i)\s*[\(\[]?\s*Explicit\s*[\)\]]?\s*$`),
}

// CleanTitle strips platform noise and redundant artist mentions from a raw
// video title. The passes are order-significant and individually idempotent;
// running the cleaner on its own output is a no-op.
func CleanTitle(originalTitle, artistName string) string {
	if originalTitle == "" {
		return ""
	}
	title := strings.TrimSpace(originalTitle)

	for _, pattern := range titleNoisePatterns {
		title = pattern.ReplaceAllString(title, " ")
	}
	title = strings.TrimSpace(whitespaceRuns.ReplaceAllString(title, " "))

	title = mvPrefixPattern.ReplaceAllString(title, "")

	title = qualityTagPattern.ReplaceAllString(title, " ")
	title = resolutionPattern.ReplaceAllString(title, " ")
	title = audioFormatPattern.ReplaceAllString(title, " ")
	title = strings.TrimSpace(whitespaceRuns.ReplaceAllString(title, " "))

	// Redundancy removal: drop an "Artist -" or "Artist1 & Artist2 -" prefix
	// when it starts with the known artist. The prefix may contain
	// collaborators, so the whole segment before the dash goes.
	if artistName != "" {
		if m := collabPrefixPattern.FindStringSubmatch(title); m != nil {
			prefixLower := strings.ToLower(strings.TrimSpace(m[1]))
			artistLower := strings.ToLower(artistName)
			trimmedArtist := strings.TrimRight(artistLower, ".")
			if strings.HasPrefix(prefixLower, artistLower) || strings.HasPrefix(prefixLower, trimmedArtist) {
				title = collabPrefixPattern.ReplaceAllString(title, "")
			}
		}
	}

	title = leadingJunkPattern.ReplaceAllString(title, "")

	if m := quotedTitlePattern.FindStringSubmatch(title); m != nil && strings.TrimSpace(m[1]) != "" {
		// Quoted substring is the highest-confidence explicit title marker.
		title = strings.TrimSpace(m[1])
	} else if artistName != "" {
		escaped := regexp.QuoteMeta(artistName)

		pipePattern := regexp.MustCompile(`(?i)^` + escaped + `\s*[|]\s*`)
		title = pipePattern.ReplaceAllString(title, "")

		beginPattern := regexp.MustCompile(`(?i)^` + escaped + `\s*[-:,–—]\s*`)
		title = beginPattern.ReplaceAllString(title, "")

		endPattern := regexp.MustCompile(`(?i)\s*[-:,–—]\s*` + escaped + `$`)
		title = endPattern.ReplaceAllString(title, "")

		duplicatePattern := regexp.MustCompile(`(?i)` + escaped + `\s*[,&]\s*`)
		title = duplicatePattern.ReplaceAllString(title, "")

		title = leadingSepPattern.ReplaceAllString(title, "")

		title = featuringPattern.ReplaceAllString(title, "")
	}

	for _, pattern := range titleSuffixPatterns {
		title = pattern.ReplaceAllString(title, "")
	}
	title = strings.Trim(title, "-–—,: \t")
	title = strings.TrimSpace(whitespaceRuns.ReplaceAllString(title, " "))

	// Safety fallback: an artist name appearing twice (duplicated separators)
	// can leave nothing behind, or leave just the artist. Re-derive from the
	// text after the last separator in the original title.
	if title == "" || strings.EqualFold(title, artistName) {
		if m := lastSeparatorGrab.FindStringSubmatch(originalTitle); m != nil && strings.TrimSpace(m[1]) != "" {
			title = strings.TrimSpace(basicQualityTags.ReplaceAllString(strings.TrimSpace(m[1]), ""))
		}
	}

	return title
}
