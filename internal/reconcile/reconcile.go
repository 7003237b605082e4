package reconcile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mvault/internal/content"
	"mvault/internal/logging"
	"mvault/internal/match"
	"mvault/internal/naming"
	"mvault/internal/sourcetable"
)

// Status classifies one source row after reconciliation. The checks run in
// a strict priority order (skip, missing, mismatch, suspicious, ok) and the
// first failing check decides; a row never carries more than one status.
type Status string

const (
	StatusOK         Status = "ok"
	StatusMissing    Status = "missing"
	StatusSuspicious Status = "suspicious"
	StatusMismatch   Status = "mismatch"
	StatusSkip       Status = "skip"
)

// Entry is the reconciliation outcome for one source row. Entries are
// emitted in source row order; the table's row order is meaningful to the
// human who maintains it.
type Entry struct {
	Status        Status
	Reason        string
	Source        sourcetable.Record
	Year          string
	MatchedSlug   string
	MatchStrategy match.Strategy
	MatchedArtist string
	MatchedTitle  string
}

// suspiciousKeywords flag matched records whose title suggests the asset is
// not the official video despite passing identity checks.
var suspiciousKeywords = []struct {
	keyword string
	reason  string
}{
	{"audio", "Audio Only"},
	{"lyric", "Lyric Video"},
	{"visualizer", "Visualizer"},
	{"behind the scenes", "BTS"},
	{"making of", "Making Of"},
}

func detectSuspiciousTitle(title string) string {
	lower := strings.ToLower(title)
	for _, entry := range suspiciousKeywords {
		if strings.Contains(lower, entry.keyword) {
			return entry.reason
		}
	}
	return ""
}

// Reconciler compares source tables against the content set and its cover
// assets. It never mutates either side.
type Reconciler struct {
	store     *content.Store
	coversDir string
	logger    *slog.Logger
}

func New(store *content.Store, coversDir string, logger *slog.Logger) *Reconciler {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Reconciler{store: store, coversDir: coversDir, logger: logger}
}

// CoverPath is where the cover asset for a record is expected on disk.
func CoverPath(coversDir, year, artist, title string) string {
	name := naming.Slugify(artist) + "-" + naming.Slugify(title) + ".jpg"
	return filepath.Join(coversDir, year, name)
}

func (r *Reconciler) coverValid(year, artist, title string) bool {
	info, err := os.Stat(CoverPath(r.coversDir, year, artist, title))
	return err == nil && info.Size() > 0
}

// Run reconciles rows against the current content set. defaultYear fills in
// rows whose Year column is empty, typically the table's filename stem.
// Output order matches input order.
func (r *Reconciler) Run(rows []sourcetable.Record, defaultYear string) ([]Entry, error) {
	slugs, err := r.store.Slugs()
	if err != nil {
		return nil, fmt.Errorf("reconciling: %w", err)
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, r.auditRow(row, defaultYear, slugs))
	}
	return entries, nil
}

func (r *Reconciler) auditRow(row sourcetable.Record, defaultYear string, slugs []string) Entry {
	year := row.Year
	if year == "" {
		year = defaultYear
	}
	entry := Entry{Source: row, Year: year}

	if !row.Complete() {
		entry.Status = StatusSkip
		entry.Reason = "missing required source fields"
		return entry
	}

	result := match.Find(year, row.Artist, row.Title, slugs)
	if !result.Found {
		entry.Status = StatusMissing
		entry.Reason = "no content record found"
		return entry
	}
	entry.MatchedSlug = result.Slug
	entry.MatchStrategy = result.Strategy
	r.logger.Debug("matched source row",
		logging.String(logging.FieldSlug, result.Slug),
		logging.String(logging.FieldStrategy, string(result.Strategy)))

	rec, err := r.store.Get(result.Slug)
	if err != nil {
		entry.Status = StatusMissing
		entry.Reason = "content record exists but its header is invalid"
		return entry
	}
	entry.MatchedArtist = rec.Artist
	entry.MatchedTitle = rec.Title

	if !strings.EqualFold(rec.Artist, row.Artist) {
		entry.Status = StatusMismatch
		entry.Reason = fmt.Sprintf("artist mismatch: table=%q record=%q", row.Artist, rec.Artist)
		return entry
	}

	if reason := detectSuspiciousTitle(rec.Title); reason != "" {
		entry.Status = StatusSuspicious
		entry.Reason = "title contains suspicious keyword: " + reason
		return entry
	}

	if !r.coverValid(year, row.Artist, row.Title) {
		entry.Status = StatusSuspicious
		entry.Reason = "cover image missing or empty"
		return entry
	}

	entry.Status = StatusOK
	entry.Reason = "all checks passed"
	return entry
}
