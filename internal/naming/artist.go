package naming

import "strings"

// artistMappings fixes stylized capitalization and known aliases. Keys are
// lowercase; values are the canonical form.
var artistMappings = map[string]string{
	"charli xcx":       "Charli XCX",
	"asap rocky":       "A$AP Rocky",
	"a$ap rocky":       "A$AP Rocky",
	"asaprocky":        "A$AP Rocky",
	"asaprockyuptown":  "A$AP Rocky",
	"rm":               "RM",
	"bts":              "BTS",
	"blackpink":        "BLACKPINK",
	"twice":            "TWICE",
	"txt":              "TXT",
	"itzy":             "ITZY",
	"nct":              "NCT",
	"exo":              "EXO",
	"idles":            "IDLES",
	"haim":             "HAIM",
	"muna":             "MUNA",
	"chvrches":         "CHVRCHES",
	"jpegmafia":        "JPEGMAFIA",
	"mgmt":             "MGMT",
	"sbtrkt":           "SBTRKT",
	"fontaines dc":     "Fontaines D.C.",
	"fontaines d.c.":   "Fontaines D.C.",
	"bicep":            "BICEP",
	"childish gambino": "Childish Gambino",
	"gambinoarchive":   "Childish Gambino",
	"antslive":         "AntsLive",
	"fka twigs":        "FKA twigs",
	"mia":              "M.I.A.",
	"m.i.a":            "M.I.A.",
	"m.i.a.":           "M.I.A.",
}

// NormalizeArtist returns the canonical form of an artist name, or the input
// unchanged when no mapping exists.
func NormalizeArtist(name string) string {
	if name == "" {
		return ""
	}
	if canonical, ok := artistMappings[strings.ToLower(strings.TrimSpace(name))]; ok {
		return canonical
	}
	return name
}
