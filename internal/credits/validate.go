package credits

import (
	"regexp"
	"strings"
)

// directorBlocklist rejects candidates that are job titles or fragments
// leaked from adjacent credit lines rather than director names. Matched as
// case-insensitive substrings.
var directorBlocklist = []string{
	"assistant",
	"rep",
	"executive",
	"photography",
	"dop",
	"producer",
	"editor",
	"production",
	"commissioner",
	"creative",
	"anim",
	"coordinator",
	"manager",
	"supervisor",
	"associate",
	"casting",
	"technical",
	"music",
	"art",
	"cinematographer",
	"videographer",
	"camera",
}

var (
	edgePunctuationLeading  = regexp.MustCompile(`^[-–—:.\s]+`)
	edgePunctuationTrailing = regexp.MustCompile(`[-–—:.\s]+$`)
	functionWordPrefix      = regexp.MustCompile(`(?i)^(?:the|a|an|is|this|official|music|video|album|song)\b`)
)

// ValidateDirector is the accept/reject gate for an extracted director
// candidate. It returns the cleaned name, or "" when the candidate is a role
// label, a sentence fragment, or otherwise not plausibly a name. Pure
// function; logging is the caller's concern.
func ValidateDirector(candidate string) string {
	if strings.TrimSpace(candidate) == "" {
		return ""
	}

	lower := strings.ToLower(candidate)
	for _, blocked := range directorBlocklist {
		if strings.Contains(lower, blocked) {
			return ""
		}
	}

	cleaned := edgePunctuationLeading.ReplaceAllString(candidate, "")
	cleaned = edgePunctuationTrailing.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	// Too short is noise, too long is a captured sentence, not a name.
	if len(cleaned) < 2 || len(cleaned) > 50 {
		return ""
	}

	if functionWordPrefix.MatchString(cleaned) {
		return ""
	}

	return cleaned
}
