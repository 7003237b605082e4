// Package tags converts curatorial hints into taxonomy tags. The visual
// hook column of the source tables is free prose; this maps it onto a
// fixed, reusable vocabulary so records stay browsable by style.
package tags

import (
	"strings"

	"mvault/internal/credits"
	"mvault/internal/naming"
)

// Uncategorized is the fallback tag when nothing else applies.
const Uncategorized = "uncategorized"

type hookPattern struct {
	keywords []string
	tags     []string
}

var hookPatterns = []hookPattern{
	{[]string{"choreography", "dance", "dancing"}, []string{"dance-choreography"}},
	{[]string{"one-shot", "one-take", "single take"}, []string{"one-take"}},
	{[]string{"surreal", "surrealism"}, []string{"surreal"}},
	{[]string{"black and white", "monochrome", "noir"}, []string{"black-and-white"}},
	{[]string{"animation", "animated"}, []string{"animation"}},
	{[]string{"stop-motion"}, []string{"stop-motion"}},
	{[]string{"vfx", "cgi", "visual effects"}, []string{"vfx-heavy"}},
	{[]string{"narrative", "story"}, []string{"narrative"}},
	{[]string{"abstract"}, []string{"abstract"}},
	{[]string{"performance"}, []string{"performance"}},
	{[]string{"dystopian", "dystopia"}, []string{"dystopian"}},
	{[]string{"cyberpunk", "cyber"}, []string{"cyberpunk"}},
	{[]string{"horror"}, []string{"horror"}},
	{[]string{"reverse", "backwards"}, []string{"reverse-motion"}},
	{[]string{"time-lapse", "timelapse"}, []string{"time-lapse"}},
	{[]string{"slow-motion", "slow motion"}, []string{"slow-motion"}},
	{[]string{"mixed media", "mixed-media"}, []string{"mixed-media"}},
	{[]string{"anime"}, []string{"anime-style"}},
	{[]string{"desert"}, []string{"desert"}},
	{[]string{"urban", "city"}, []string{"urban"}},
	{[]string{"nature", "natural"}, []string{"nature"}},
	{[]string{"office"}, []string{"office-setting"}},
	{[]string{"stunt", "stunts", "action"}, []string{"action-stunts"}},
	{[]string{"synchronized", "sync"}, []string{"synchronized"}},
	{[]string{"crowd"}, []string{"crowd-scene"}},
	{[]string{"meta"}, []string{"meta"}},
}

// exactHooks maps hand-written hook phrases the tables already use onto
// curated tag sets. Exact hits beat keyword scanning.
var exactHooks = map[string][]string{
	"Era-Defining Internet Panopticon": {"meta", "crowd-scene", "synchronized", "social-commentary"},
	"Manic Spitting Montage":           {"rapid-editing", "performance", "high-energy", "urban"},
	"Surreal Office Maze":              {"surreal", "narrative", "office-setting", "dystopian"},
	"Robot Sextape Sci-Fi":             {"sci-fi", "vfx-heavy", "surreal", "provocative"},
	"Stone Skipping Physics":           {"vfx-heavy", "nature", "abstract", "slow-motion"},
	"Alpine Rap Stunt":                 {"action-stunts", "nature", "performance", "extreme-sports"},
	"Deepfake Kid Courtroom":           {"vfx-heavy", "narrative", "social-commentary", "political"},
	"Pop Star Life Cycle":              {"narrative", "meta", "performance"},
	"Noir Social Realism":              {"black-and-white", "narrative", "social-commentary", "cinematic"},
	"Melting Face Horror":              {"vfx-heavy", "horror", "body-horror", "surreal"},
	"Infinite Stop-Motion Loop":        {"stop-motion", "loop", "animation", "abstract"},
	"Polish Folk Surrealism":           {"surreal", "folk-art", "cultural", "narrative"},
	"Liquid Choreography":              {"dance-choreography", "vfx-heavy", "synchronized", "fluid"},
	"Ballroom Dance Narrative":         {"dance-choreography", "narrative", "ballroom", "cultural"},
	"Suburban Surrealism":              {"surreal", "suburban", "social-commentary"},
	"Afro-Surrealist Tableau":          {"surreal", "cultural", "tableaux-vivants", "afrofuturism"},
	"Hyper-Pop Anime Mixed Media":      {"mixed-media", "anime-style", "maximalist", "colorful"},
	"One-Shot Desert Ride":             {"one-take", "desert", "action", "vehicle"},
	"Reverse Body Horror":              {"reverse-motion", "body-horror", "horror", "vfx-heavy"},
	"Cinematic Car Time-Lapse":         {"time-lapse", "vehicle", "cinematic", "narrative"},
	"Noir Monochrome Reveal":           {"black-and-white", "reveal", "minimalist", "artistic"},
	"West Coast Cultural Victory":      {"cultural", "political", "social-commentary", "celebration"},
	"Bangkok Cyberpunk Choreography":   {"cyberpunk", "dance-choreography", "urban", "neon-lights"},
}

// FromVisualHook maps a hook phrase onto taxonomy tags. Exact phrases win;
// otherwise every keyword pattern that appears contributes its tags, in
// pattern order without duplicates.
func FromVisualHook(hook string) []string {
	if hook == "" {
		return []string{Uncategorized}
	}
	if tags, ok := exactHooks[hook]; ok {
		return tags
	}

	lower := strings.ToLower(hook)
	var result []string
	seen := make(map[string]bool)
	for _, pattern := range hookPatterns {
		for _, keyword := range pattern.keywords {
			if !strings.Contains(lower, keyword) {
				continue
			}
			for _, tag := range pattern.tags {
				if !seen[tag] {
					seen[tag] = true
					result = append(result, tag)
				}
			}
			break
		}
	}
	if len(result) == 0 {
		return []string{Uncategorized}
	}
	return result
}

// ForRecord picks the tag set for a new record. Injected tags win outright;
// otherwise a director tag plus the decade provides minimal browsability,
// and a record with neither gets the uncategorized marker.
func ForRecord(injected []string, creds credits.Record, year string) []string {
	if len(injected) > 0 {
		return injected
	}

	var result []string
	if creds.Director != "" {
		slug := naming.Slugify(creds.Director)
		if len(slug) > 20 {
			slug = slug[:20]
		}
		if slug != "" {
			result = append(result, "dir-"+slug)
		}
	}
	if len(result) > 0 && len(year) == 4 {
		result = append(result, year[:3]+"0s")
	}
	if len(result) == 0 {
		return []string{Uncategorized}
	}
	return result
}
