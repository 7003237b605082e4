// Package sourcetable reads the hand-maintained CSV tables that act as the
// source of truth for the catalog. Row order is preserved and every row
// carries its file line number so report entries stay traceable back to the
// table a human edits.
package sourcetable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Record is one table row. Artist and Title may be empty; an incomplete row
// is a skip condition downstream, not a read error.
type Record struct {
	Artist          string
	Title           string
	Director        string
	Year            string
	AuthoritySignal string
	VisualHook      string
	TargetURL       string

	// Line is the 1-based line number in the CSV file, counting the header.
	Line int
}

// Complete reports whether the row carries the fields required to identify
// a video.
func (r Record) Complete() bool {
	return r.Artist != "" && r.Title != ""
}

var requiredColumns = []string{"Artist", "Title", "Director", "Year"}

// Read decodes a source table. Column order is free; rows may have fewer
// fields than the header. Missing required columns are an error because a
// table without them cannot identify anything.
func Read(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("table has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("table is missing required column %q", name)
		}
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []Record
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading row at line %d: %w", line, err)
		}
		records = append(records, Record{
			Artist:          field(row, "Artist"),
			Title:           field(row, "Title"),
			Director:        field(row, "Director"),
			Year:            field(row, "Year"),
			AuthoritySignal: field(row, "Authority_Signal"),
			VisualHook:      field(row, "Visual_Hook"),
			TargetURL:       field(row, "Target_URL"),
			Line:            line,
		})
	}
	return records, nil
}

// ReadFile reads one table from disk.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening source table: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return records, nil
}

// Generated outputs that land next to the hand-maintained tables.
var ignoredFiles = map[string]bool{
	"result.csv":  true,
	"summary.csv": true,
}

// Discover lists the source tables under dir in lexical order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning data directory: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ".csv") {
			continue
		}
		if ignoredFiles[strings.ToLower(name)] {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	sort.Strings(paths)
	return paths, nil
}
