package ingest

import "strings"

// junkBlocklist rejects video titles that are clearly not official music
// videos: compilations, reactions, live cuts, award clips.
var junkBlocklist = []string{
	"highlight",
	"highlights",
	"compilation",
	"best of",
	"teaser",
	"trailer",
	"react",
	"reacts",
	"reaction",
	"review",
	"behind the scene",
	"behind the scenes",
	"making of",
	"making-of",
	"makingof",
	"interview",
	"documentary",
	"awards ceremony",
	"music video awards",
	"award winner",
	"best director",
	"best music video",
	"live performance",
	"concert",
	"recap",
	"preview",
	"announcement",
	"mashup",
	"mix",
	"remix collection",
	"playlist",
	"top 10",
	"top 5",
}

// IsJunkTitle reports whether title trips the blocklist. Keywords that
// appear in the requested target title are exempt, so a song legitimately
// called "Mixtape" is not rejected for containing "mix".
func IsJunkTitle(title, targetTitle string) bool {
	lower := strings.ToLower(title)
	lowerTarget := strings.ToLower(targetTitle)
	for _, keyword := range junkBlocklist {
		if !strings.Contains(lower, keyword) {
			continue
		}
		if lowerTarget != "" && strings.Contains(lowerTarget, keyword) {
			continue
		}
		return true
	}
	return false
}

// pure-audio keywords: a title carrying one of these is an audio asset, not
// a music video, and is skipped before any download happens.
var audioKeywords = []string{
	"audio", "lyric video", "lyrics", "visualizer", "audio only", "official audio",
}

func isPureAudio(title string) bool {
	lower := strings.ToLower(title)
	for _, keyword := range audioKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
