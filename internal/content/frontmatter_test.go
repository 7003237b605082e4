package content

import (
	"errors"
	"strings"
	"testing"

	"mvault/internal/credits"
)

const sampleDocument = `---
title: "Lite Spots"
artist: "Kaytranada"
video_url: "https://www.youtube.com/watch?v=q0sGMsH1Ny8"
publishDate: 2016-04-05
cover: "/covers/2016/kaytranada-lite-spots.jpg"
director: "Martin C. Pariseau"
production: "Kidnap Films"
tags: ["dance","choreography"]
---

Body text is ignored by the header parser.
`

func TestParseRecord(t *testing.T) {
	rec, err := ParseRecord("2016-kaytranada-lite-spots", []byte(sampleDocument))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if rec.Title != "Lite Spots" || rec.Artist != "Kaytranada" {
		t.Fatalf("unexpected identity fields: %+v", rec)
	}
	if rec.PublishDate != "2016-04-05" {
		t.Fatalf("unexpected publishDate: %q", rec.PublishDate)
	}
	if rec.Credits.Director != "Martin C. Pariseau" {
		t.Fatalf("unexpected director: %q", rec.Credits.Director)
	}
	if rec.Credits.Label != "" {
		t.Fatalf("absent label must stay empty, got %q", rec.Credits.Label)
	}
	if len(rec.Tags) != 2 || rec.Tags[0] != "dance" {
		t.Fatalf("unexpected tags: %v", rec.Tags)
	}
	if rec.Year() != "2016" {
		t.Fatalf("unexpected year: %q", rec.Year())
	}
}

func TestQuotedValuesRoundTrip(t *testing.T) {
	original := Record{
		Slug:        "2019-slowthai-doorman",
		Title:       `Doorman "Live Cut"`,
		Artist:      "slowthai",
		VideoURL:    "https://www.youtube.com/watch?v=u0WcHIQq6PA",
		PublishDate: "2019-01-22",
		Cover:       "/covers/2019/slowthai-doorman.jpg",
		CuratorNote: `described as "feral" by the label`,
	}

	rec, err := ParseRecord(original.Slug, MarshalRecord(original))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if rec.Title != original.Title {
		t.Fatalf("title round trip lost escapes: %q", rec.Title)
	}
	if rec.CuratorNote != original.CuratorNote {
		t.Fatalf("curator note round trip lost escapes: %q", rec.CuratorNote)
	}
}

func TestParseRecordMissingOpeningDelimiter(t *testing.T) {
	_, err := ParseRecord("x", []byte("title: \"No Header\"\n"))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestParseRecordMissingClosingDelimiter(t *testing.T) {
	_, err := ParseRecord("x", []byte("---\ntitle: \"Dangling\"\n"))
	if !errors.Is(err, ErrMalformedHeader) {
		t.Fatalf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	original := Record{
		Slug:        "2019-fka-twigs-cellophane",
		Title:       "Cellophane",
		Artist:      "FKA twigs",
		VideoURL:    "https://www.youtube.com/watch?v=YkLjqFpBh84",
		PublishDate: "2019-04-24",
		Cover:       "/covers/2019/fka-twigs-cellophane.jpg",
		Credits: credits.Record{
			Director: "Andrew Thomas Huang",
			Label:    "Young Turks",
		},
		Tags: []string{"performance"},
	}
	parsed, err := ParseRecord(original.Slug, MarshalRecord(original))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed.Credits != original.Credits {
		t.Fatalf("credits changed: %+v vs %+v", parsed.Credits, original.Credits)
	}
	if parsed.Title != original.Title || parsed.Artist != original.Artist {
		t.Fatalf("identity changed: %+v", parsed)
	}
}

func TestMarshalOmitsAbsentCredits(t *testing.T) {
	data := string(MarshalRecord(Record{Slug: "2020-a-b", Title: "B", Artist: "A"}))
	for _, key := range []string{"director:", "production:", "label:"} {
		if strings.Contains(data, key) {
			t.Fatalf("absent credit field %q must not be written:\n%s", key, data)
		}
	}
}
