package naming

import (
	"regexp"
	"strings"
)

// channelMappings forces correct artist names when channel names do not
// match. A present key with an empty value means the channel is a label and
// the artist should be extracted from the title instead.
var channelMappings = map[string]string{
	// Fan channels
	"jungle4eva":      "Jungle",
	"pp_rocksxx":      "PinkPantheress",
	"asaprockyuptown": "A$AP Rocky",
	"gambinoarchive":  "Childish Gambino",

	// Labels that should not be used as the artist
	"foreign family collective": "",

	// Band names that legitimately match their channel name
	"the shoes": "The Shoes",
}

// channelNoisePatterns are common fan-channel suffixes stripped before
// retrying the mapping table.
var channelNoisePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)4eva$`),
	regexp.MustCompile(`(?i)VEVO$`),
	regexp.MustCompile(`(?i)Official$`),
	regexp.MustCompile(`(?i)Music$`),
	regexp.MustCompile(`(?i)TV$`),
	regexp.MustCompile(`(?i)HD$`),
	regexp.MustCompile(`(?i)Videos?$`),
	regexp.MustCompile(`(?i)Channel$`),
	regexp.MustCompile(`(?i)Archive$`),
	regexp.MustCompile(`(?i)Fan$`),
	regexp.MustCompile(`(?i)Live$`),
	regexp.MustCompile(`(?i)Uptown$`),
}

// NormalizeChannel resolves a channel name to an artist name. The second
// return value is false when the channel is a known label and the artist must
// be derived from the video title instead. Unknown channels come back
// unchanged.
func NormalizeChannel(channelName string) (string, bool) {
	if strings.TrimSpace(channelName) == "" {
		return "", false
	}
	lower := strings.ToLower(strings.TrimSpace(channelName))

	if mapped, ok := channelMappings[lower]; ok {
		if mapped == "" {
			return "", false
		}
		return mapped, true
	}

	for _, pattern := range channelNoisePatterns {
		cleaned := strings.TrimSpace(pattern.ReplaceAllString(channelName, ""))
		if cleaned == channelName || cleaned == "" {
			continue
		}
		if mapped, ok := channelMappings[strings.ToLower(cleaned)]; ok {
			if mapped == "" {
				return "", false
			}
			return mapped, true
		}
		return cleaned, true
	}

	return channelName, true
}
