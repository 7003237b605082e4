package metadata

import (
	"fmt"
	"sort"
	"strings"
)

// CoverSource is the chosen thumbnail URL plus a fallback to try when the
// primary download fails or turns out to be a placeholder.
type CoverSource struct {
	URL      string
	Fallback string
}

// SelectCover picks the best thumbnail for a video. The provider's
// thumbnail list wins when present, ranked by preference and then by
// pixel area; a bare thumbnail field comes next; as a last resort the URL
// is constructed from the platform and video ID. YouTube maxresdefault
// covers get the guaranteed-present hqdefault variant as fallback because
// maxresdefault 404s or serves a gray placeholder for older videos.
func SelectCover(video *Video, platform Platform, videoID string) (CoverSource, error) {
	if len(video.Thumbnails) > 0 {
		ranked := make([]Thumbnail, len(video.Thumbnails))
		copy(ranked, video.Thumbnails)
		sort.SliceStable(ranked, func(i, j int) bool {
			a, b := ranked[i], ranked[j]
			if a.Preference != nil && b.Preference != nil {
				return *a.Preference > *b.Preference
			}
			return a.Height*a.Width > b.Height*b.Width
		})

		source := CoverSource{URL: ranked[0].URL}
		if fallback, ok := maxresFallback(platform, source.URL, videoID); ok {
			source.Fallback = fallback
		} else if len(ranked) > 1 {
			source.Fallback = ranked[1].URL
		} else {
			source.Fallback = source.URL
		}
		return source, nil
	}

	if video.Thumbnail != "" {
		source := CoverSource{URL: video.Thumbnail, Fallback: video.Thumbnail}
		if fallback, ok := maxresFallback(platform, video.Thumbnail, videoID); ok {
			source.Fallback = fallback
		}
		return source, nil
	}

	switch platform {
	case PlatformYouTube:
		return CoverSource{
			URL:      fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", videoID),
			Fallback: fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID),
		}, nil
	case PlatformVimeo:
		url := fmt.Sprintf("https://vumbnail.com/%s.jpg", videoID)
		return CoverSource{URL: url, Fallback: url}, nil
	}
	return CoverSource{}, fmt.Errorf("no thumbnail data available for platform %q", platform)
}

func maxresFallback(platform Platform, url, videoID string) (string, bool) {
	if platform == PlatformYouTube && strings.Contains(url, "maxresdefault") {
		return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", videoID), true
	}
	return "", false
}
