package content

import (
	"mvault/internal/credits"
)

// Record is the persisted unit, one video page. The slug doubles as the
// filename stem and the primary key of the content set; it must always be
// reproducible from (year, artist, title).
type Record struct {
	Slug        string
	Title       string
	Artist      string
	VideoURL    string
	PublishDate string
	Cover       string
	CuratorNote string
	Credits     credits.Record
	Tags        []string
}

// Year returns the four-digit year prefix of the slug, or "" when the slug
// does not carry one.
func (r Record) Year() string {
	if len(r.Slug) < 5 || r.Slug[4] != '-' {
		return ""
	}
	for _, c := range r.Slug[:4] {
		if c < '0' || c > '9' {
			return ""
		}
	}
	return r.Slug[:4]
}
