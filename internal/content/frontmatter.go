package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedHeader marks a record whose metadata header cannot be parsed.
// A missing header is data corruption, not an empty record, and must never
// be silently treated as "all fields absent".
var ErrMalformedHeader = errors.New("malformed metadata header")

var headerLinePattern = regexp.MustCompile(`^(\w+):\s*(.*?)\s*$`)

// ParseRecord decodes one persisted document. The header sits between two
// "---" delimiter lines at the top of the document; everything after the
// closing delimiter is free-form body and ignored here.
func ParseRecord(slug string, data []byte) (Record, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")

	if !strings.HasPrefix(text, "---\n") {
		return Record{}, fmt.Errorf("record %s: missing opening delimiter: %w", slug, ErrMalformedHeader)
	}
	rest := text[len("---\n"):]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return Record{}, fmt.Errorf("record %s: missing closing delimiter: %w", slug, ErrMalformedHeader)
	}

	rec := Record{Slug: slug}
	for _, line := range strings.Split(rest[:end], "\n") {
		m := headerLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		key, value := m[1], m[2]
		switch key {
		case "title":
			rec.Title = unquote(value)
		case "artist":
			rec.Artist = unquote(value)
		case "video_url":
			rec.VideoURL = unquote(value)
		case "publishDate":
			rec.PublishDate = unquote(value)
		case "cover":
			rec.Cover = unquote(value)
		case "curator_note":
			rec.CuratorNote = unquote(value)
		case "director":
			rec.Credits.Director = unquote(value)
		case "production":
			rec.Credits.Production = unquote(value)
		case "label":
			rec.Credits.Label = unquote(value)
		case "tags":
			rec.Tags = parseTags(value)
		}
	}
	return rec, nil
}

// unquote reverses the writer's %q encoding. Double-quoted values go
// through strconv.Unquote so escaped characters survive the round trip;
// hand-edited values that fail strict unquoting just lose the outer quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	if value[0] == '"' && value[len(value)-1] == '"' {
		if unquoted, err := strconv.Unquote(value); err == nil {
			return unquoted
		}
		return value[1 : len(value)-1]
	}
	if value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}
	return value
}

// parseTags accepts the bracketed list form the writer emits. A value that
// fails to decode yields no tags rather than an error; tags are advisory.
func parseTags(value string) []string {
	var tags []string
	if err := json.Unmarshal([]byte(value), &tags); err != nil {
		return nil
	}
	return tags
}

// MarshalRecord renders the document form of a record. Credit fields are
// only written when present, so an absent credit stays distinguishable from
// an empty one.
func MarshalRecord(rec Record) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", rec.Title)
	fmt.Fprintf(&b, "artist: %q\n", rec.Artist)
	fmt.Fprintf(&b, "video_url: %q\n", rec.VideoURL)
	fmt.Fprintf(&b, "publishDate: %s\n", rec.PublishDate)
	fmt.Fprintf(&b, "cover: %q\n", rec.Cover)
	if rec.CuratorNote != "" {
		fmt.Fprintf(&b, "curator_note: %q\n", rec.CuratorNote)
	}
	if rec.Credits.Director != "" {
		fmt.Fprintf(&b, "director: %q\n", rec.Credits.Director)
	}
	if rec.Credits.Production != "" {
		fmt.Fprintf(&b, "production: %q\n", rec.Credits.Production)
	}
	if rec.Credits.Label != "" {
		fmt.Fprintf(&b, "label: %q\n", rec.Credits.Label)
	}
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	encoded, _ := json.Marshal(tags)
	fmt.Fprintf(&b, "tags: %s\n", encoded)
	b.WriteString("---\n")
	return []byte(b.String())
}
