package match

import (
	"regexp"
	"strconv"
	"strings"

	"mvault/internal/naming"
)

// Strategy identifies which cascade layer produced a match. Each layer is
// strictly weaker than the one before it, so the strategy that fired tells
// a reviewer how much to trust the result.
type Strategy string

const (
	StrategyExact        Strategy = "exact"
	StrategySameYear     Strategy = "fuzzy-same-year"
	StrategyYearTolerant Strategy = "fuzzy-year-tolerant"
	StrategyTitleOnly    Strategy = "fuzzy-title-only"
	StrategyNone         Strategy = "none"
)

// Result is the outcome of a cascade run. Slug is empty when Found is false.
type Result struct {
	Found    bool
	Slug     string
	Strategy Strategy
}

var slugYearPattern = regexp.MustCompile(`^(\d{4})-`)

// significantWords returns the slug tokens longer than two characters.
// Short tokens ("a", "of", "ft") match nearly everything and would make
// the word-overlap threshold meaningless.
func significantWords(slug string) []string {
	var words []string
	for _, w := range strings.Split(slug, "-") {
		if len(w) > 2 {
			words = append(words, w)
		}
	}
	return words
}

func matchedWordCount(words []string, candidate string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(candidate, w) {
			n++
		}
	}
	return n
}

// meetsThreshold reports whether at least 60% of words appear in candidate.
// The comparison uses a ceiling so a single-word title still requires its
// one word to match. A title with no significant words passes vacuously,
// so an all-short-token title resolves against the first candidate the
// surrounding layer admits rather than going missing.
func meetsThreshold(words []string, candidate string) bool {
	needed := (len(words)*6 + 9) / 10
	return matchedWordCount(words, candidate) >= needed
}

func slugYear(slug string) (int, bool) {
	m := slugYearPattern.FindStringSubmatch(slug)
	if m == nil {
		return 0, false
	}
	y, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return y, true
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Find runs the layered cascade for one source row against the set of known
// content slugs. Layers are tried in order and the first hit wins; within a
// layer the first qualifying slug in enumeration order wins, with no
// similarity ranking. That keeps every accepted match traceable to exactly
// one rule at the cost of occasionally picking the less similar of two
// qualifying candidates.
func Find(year, artist, title string, existing []string) Result {
	artistSlug := naming.Slugify(artist)
	titleSlug := naming.Slugify(title)
	expected := year + "-" + artistSlug + "-" + titleSlug

	for _, slug := range existing {
		if slug == expected {
			return Result{Found: true, Slug: slug, Strategy: StrategyExact}
		}
	}

	titleWords := significantWords(titleSlug)
	yearNum, yearErr := strconv.Atoi(year)

	prefix := year + "-" + artistSlug
	for _, slug := range existing {
		if !strings.HasPrefix(slug, prefix) {
			continue
		}
		if meetsThreshold(titleWords, strings.ToLower(slug)) {
			return Result{Found: true, Slug: slug, Strategy: StrategySameYear}
		}
	}

	if yearErr == nil {
		for _, slug := range existing {
			fileYear, ok := slugYear(slug)
			if !ok || absInt(fileYear-yearNum) > 1 {
				continue
			}
			lower := strings.ToLower(slug)
			if !strings.Contains(lower, artistSlug) {
				continue
			}
			if meetsThreshold(titleWords, lower) {
				return Result{Found: true, Slug: slug, Strategy: StrategyYearTolerant}
			}
		}

		// Title-only fallback for rows whose artist parsing failed upstream.
		// Gated on at least two significant words and requiring all of them,
		// so a generic one-word title cannot match the wrong record.
		if len(titleWords) >= 2 {
			for _, slug := range existing {
				fileYear, ok := slugYear(slug)
				if !ok || absInt(fileYear-yearNum) > 1 {
					continue
				}
				lower := strings.ToLower(slug)
				if matchedWordCount(titleWords, lower) == len(titleWords) {
					return Result{Found: true, Slug: slug, Strategy: StrategyTitleOnly}
				}
			}
		}
	}

	return Result{Strategy: StrategyNone}
}
