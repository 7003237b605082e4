package content

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mvault/internal/logging"
)

const recordExtension = ".md"

// Store reads and writes the content set, one document per record under a
// single directory. Filenames are {slug}.md; the store never trusts a
// document whose header it cannot parse.
type Store struct {
	dir    string
	logger *slog.Logger
}

func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{dir: dir, logger: logger}
}

func (s *Store) Dir() string {
	return s.dir
}

// Slugs enumerates the content set in lexical filename order. The order is
// stable between calls, which matters because fuzzy matching takes the
// first qualifying slug.
func (s *Store) Slugs() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("scanning content directory: %w", err)
	}
	var slugs []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, recordExtension) {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, recordExtension))
	}
	sort.Strings(slugs)
	return slugs, nil
}

// Get loads a single record by slug. Parse failures propagate; they mean
// corruption, not absence.
func (s *Store) Get(slug string) (Record, error) {
	data, err := os.ReadFile(s.path(slug))
	if err != nil {
		return Record{}, fmt.Errorf("reading record %s: %w", slug, err)
	}
	return ParseRecord(slug, data)
}

// LoadAll reads the full content set. Malformed records are reported and
// skipped, not silently dropped; the caller decides whether any parse
// failure fails the run.
func (s *Store) LoadAll() ([]Record, []error, error) {
	slugs, err := s.Slugs()
	if err != nil {
		return nil, nil, err
	}
	records := make([]Record, 0, len(slugs))
	var malformed []error
	for _, slug := range slugs {
		rec, err := s.Get(slug)
		if err != nil {
			s.logger.Warn("skipping malformed record",
				logging.String(logging.FieldSlug, slug),
				logging.Error(err))
			malformed = append(malformed, err)
			continue
		}
		records = append(records, rec)
	}
	return records, malformed, nil
}

func (s *Store) Exists(slug string) bool {
	_, err := os.Stat(s.path(slug))
	return err == nil
}

// Write persists a record under its slug, replacing any existing document.
func (s *Store) Write(rec Record) error {
	if rec.Slug == "" {
		return fmt.Errorf("record has no slug")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating content directory: %w", err)
	}
	if err := os.WriteFile(s.path(rec.Slug), MarshalRecord(rec), 0o644); err != nil {
		return fmt.Errorf("writing record %s: %w", rec.Slug, err)
	}
	return nil
}

// Rename moves a record to a new slug identity. The write happens before
// the removal so a failure cannot lose the record.
func (s *Store) Rename(oldSlug string, rec Record) error {
	if err := s.Write(rec); err != nil {
		return err
	}
	if oldSlug == rec.Slug {
		return nil
	}
	if err := os.Remove(s.path(oldSlug)); err != nil {
		return fmt.Errorf("removing old record %s: %w", oldSlug, err)
	}
	return nil
}

func (s *Store) path(slug string) string {
	return filepath.Join(s.dir, slug+recordExtension)
}
