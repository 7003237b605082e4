package metadata

import "regexp"

// Platform names the video host a URL belongs to.
type Platform string

const (
	PlatformYouTube Platform = "youtube"
	PlatformVimeo   Platform = "vimeo"
)

var (
	youtubeIDPattern = regexp.MustCompile(`(?:v=|/)([\w-]{11})(?:\?|&|/|$)`)
	vimeoIDPattern   = regexp.MustCompile(`vimeo\.com/(\d+)`)
)

// ExtractVideoID pulls the platform video ID out of a URL. YouTube IDs are
// exactly 11 characters; Vimeo IDs are numeric.
func ExtractVideoID(videoURL string) (string, Platform, bool) {
	if m := youtubeIDPattern.FindStringSubmatch(videoURL); m != nil {
		return m[1], PlatformYouTube, true
	}
	if m := vimeoIDPattern.FindStringSubmatch(videoURL); m != nil {
		return m[1], PlatformVimeo, true
	}
	return "", "", false
}
