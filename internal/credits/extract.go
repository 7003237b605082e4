package credits

import (
	"regexp"
	"strings"
)

// Record holds the credits extracted from one video description. Every field
// is independently optional; an empty string means no confident extraction,
// not an error.
type Record struct {
	Director   string
	Production string
	Label      string
}

// IsZero reports whether no field was extracted.
func (r Record) IsZero() bool {
	return r == Record{}
}

// Director extraction patterns, tried in priority order. The bare "Director"
// label is handled separately in findLabeledDirector because it needs
// negative context checks that regular expressions here cannot express.
var (
	directedByPattern         = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Directed[ \t]+by|Dir)[ \t]*[:.\-][ \t]*([^\n]+)`)
	writtenAndDirectedPattern = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*Written[ \t]*(?:and|&)[ \t]*Directed[ \t]*by[ \t]*[:.\-]?[ \t]*([^\n]+)`)
	videoByPattern            = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Video|Film)[ \t]+by[ \t]+([^\n]+)`)

	bareDirectorLine   = regexp.MustCompile(`(?i)^[ \t]*Director[ \t]*[:.\-]?[ \t]*(.+)$`)
	directorBadContext = regexp.MustCompile(`(?i)^[ \t]*Director(?:'s[ \t]+(?:Assistant|Rep)|[ \t]+of[ \t]+Photography)`)
)

// directorTier pairs a tier name with its matcher so the ladder stays an
// ordered list with first-success-wins semantics.
type directorTier struct {
	name string
	find func(text string) string
}

var directorTiers = []directorTier{
	{name: "directed_by", find: firstCapture(directedByPattern)},
	{name: "director_label", find: findLabeledDirector},
	{name: "written_and_directed", find: firstCapture(writtenAndDirectedPattern)},
	{name: "video_by", find: firstCapture(videoByPattern)},
}

func firstCapture(pattern *regexp.Regexp) func(string) string {
	return func(text string) string {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
		return ""
	}
}

// findLabeledDirector matches a line-leading "Director" label. Lines where
// "Director" is part of another role ("Director of Photography",
// "Director's Rep", "Director's Assistant") are skipped entirely. Modifier
// roles such as "Art Director" or "Creative Director" never match because
// the label is anchored to the start of the line.
func findLabeledDirector(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if directorBadContext.MatchString(line) {
			continue
		}
		if m := bareDirectorLine.FindStringSubmatch(line); m != nil {
			return m[1]
		}
	}
	return ""
}

// candidate cleanup patterns shared between fields
var (
	leadingConnector    = regexp.MustCompile(`(?i)^(?:by|and|with|&)\s+`)
	leadingConnectorOn  = regexp.MustCompile(`(?i)^(?:by|and|with|&|on)\s+`)
	embeddedURL         = regexp.MustCompile(`\s*https?://\S+`)
	socialHandle        = regexp.MustCompile(`\s*@[\w.]+`)
	leakedRolePrefix    = regexp.MustCompile(`(?i)^(?:Editor|Producer|DOP|Cinematographer)\s*[:.\-]?\s*`)
	parenthetical       = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	roleContinuation    = regexp.MustCompile(`(?i)\s+and\s+(?:Producer|Editor|DOP|Cinematographer):.*$`)
	trailingPunctuation = regexp.MustCompile(`[,.\-–—:]+$`)
)

func cleanDirectorCandidate(raw string) string {
	c := strings.TrimSpace(raw)
	c = edgePunctuationLeading.ReplaceAllString(c, "")
	c = leadingConnector.ReplaceAllString(c, "")
	c = embeddedURL.ReplaceAllString(c, "")
	c = socialHandle.ReplaceAllString(c, "")
	c = leakedRolePrefix.ReplaceAllString(c, "")
	c = parenthetical.ReplaceAllString(c, " ")
	if idx := strings.IndexByte(c, '\n'); idx >= 0 {
		c = c[:idx]
	}
	c = roleContinuation.ReplaceAllString(c, "")
	c = strings.TrimSpace(c)
	c = trailingPunctuation.ReplaceAllString(c, "")
	return strings.TrimSpace(c)
}

func cleanEntityCandidate(raw string) string {
	c := strings.TrimSpace(raw)
	c = edgePunctuationLeading.ReplaceAllString(c, "")
	c = leadingConnector.ReplaceAllString(c, "")
	c = embeddedURL.ReplaceAllString(c, "")
	c = socialHandle.ReplaceAllString(c, "")
	c = parenthetical.ReplaceAllString(c, " ")
	if idx := strings.IndexByte(c, '\n'); idx >= 0 {
		c = c[:idx]
	}
	c = strings.TrimSpace(c)
	c = trailingPunctuation.ReplaceAllString(c, "")
	return strings.TrimSpace(c)
}

// Production extraction: a three-tier waterfall. A candidate line containing
// an adjacent-role keyword is discarded outright, not deprioritized — a
// looser match here captures coordinators instead of the actual producer.
var (
	productionCompanyPattern = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*(?:Production[ \t]+(?:Company|Co|House)|Prod[ \t]+Co)[ \t]*[:.\-]?[ \t]*([^\n]+)`)
	producedByPattern        = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*Produced[ \t]+by[ \t]+([A-Z][^\n,]*?)(?:[ \t]*\n|$|,|[ \t]+for[ \t])`)
	producerPattern          = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*\bProducer[ \t]*[:.\-]?[ \t]*([^\n]+)`)
	executiveProducerPattern = regexp.MustCompile(`(?i)(?:^|\n)[ \t]*Executive[ \t]+Producers?[ \t]*[:.\-]?[ \t]*([^\n]+)`)
)

var productionRoleBlacklist = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bCoordinator\b`),
	regexp.MustCompile(`(?i)\bCo-ordinator\b`),
	regexp.MustCompile(`(?i)\bManager\b`),
	regexp.MustCompile(`(?i)\bSupervisor\b`),
	regexp.MustCompile(`(?i)\bAssistant\b`),
	regexp.MustCompile(`(?i)\bLine\s+Producer\b`),
	regexp.MustCompile(`(?i)\bAssociate\b`),
}

func hasBlacklistedRole(line string) bool {
	for _, pattern := range productionRoleBlacklist {
		if pattern.MatchString(line) {
			return true
		}
	}
	return false
}

var productionTiers = []*regexp.Regexp{
	productionCompanyPattern,
	producedByPattern,
	producerPattern,
	executiveProducerPattern,
}

// Label extraction: single tier.
var labelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:Label|Record[ \t]+Label)[ \t]*[:.\-]?[ \t]*([^\n]+)`),
	regexp.MustCompile(`(?i)\b(?:Released[ \t]+(?:by|on)|Distributed[ \t]+by)[ \t]*[:.\-]?[ \t]*([^\n]+)`),
}

// Extract pulls director, production, and label credits out of a free-text
// video description. Each field runs its own priority ladder; a tier that
// finds nothing, or whose candidate fails validation, falls through to the
// next tier. A description can yield any subset of fields, including none.
func Extract(description string) Record {
	var rec Record

	for _, tier := range directorTiers {
		raw := tier.find(description)
		if raw == "" {
			continue
		}
		if validated := ValidateDirector(cleanDirectorCandidate(raw)); validated != "" {
			rec.Director = validated
			break
		}
	}

	for _, pattern := range productionTiers {
		found := ""
		for _, m := range pattern.FindAllStringSubmatch(description, -1) {
			if hasBlacklistedRole(m[0]) {
				continue
			}
			candidate := cleanEntityCandidate(m[1])
			if len(candidate) >= 2 && len(candidate) <= 80 {
				found = candidate
				break
			}
		}
		if found != "" {
			rec.Production = found
			break
		}
	}

	for _, pattern := range labelPatterns {
		m := pattern.FindStringSubmatch(description)
		if m == nil {
			continue
		}
		candidate := cleanLabelCandidate(m[1])
		if len(candidate) >= 2 && len(candidate) <= 80 {
			rec.Label = candidate
			break
		}
	}

	return rec
}

func cleanLabelCandidate(raw string) string {
	c := strings.TrimSpace(raw)
	c = edgePunctuationLeading.ReplaceAllString(c, "")
	c = leadingConnectorOn.ReplaceAllString(c, "")
	c = embeddedURL.ReplaceAllString(c, "")
	if idx := strings.IndexByte(c, '\n'); idx >= 0 {
		c = c[:idx]
	}
	c = strings.TrimSpace(c)
	c = trailingPunctuation.ReplaceAllString(c, "")
	return strings.TrimSpace(c)
}
