package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"mvault/internal/logging"
	"mvault/internal/sourcetable"
	"mvault/internal/tags"
)

// HuntOutcome classifies one source row after a batch run.
type HuntOutcome string

const (
	HuntCreated HuntOutcome = "created"
	HuntSkipped HuntOutcome = "skipped"
	HuntMissing HuntOutcome = "missing"
	HuntFailed  HuntOutcome = "failed"
)

// HuntEntry is the per-row outcome of a batch run, in row order.
type HuntEntry struct {
	Row     sourcetable.Record
	Outcome HuntOutcome
	Reason  string
	Slug    string
}

// HuntReport aggregates a batch run.
type HuntReport struct {
	Entries []HuntEntry
	Created int
	Skipped int
	Missing int
	Failed  int
}

// Hunt batch-ingests a source table. Rows must carry an explicit target
// URL; rows without one are reported missing rather than searched for.
// Fetches are paced with jitter, and one row's failure never aborts the
// rest of the batch.
func (p *Pipeline) Hunt(ctx context.Context, rows []sourcetable.Record, pacer *Pacer) (HuntReport, error) {
	var report HuntReport
	fetched := false

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		entry := HuntEntry{Row: row}
		switch {
		case !row.Complete():
			entry.Outcome = HuntSkipped
			entry.Reason = "missing required source fields"

		case row.TargetURL == "":
			entry.Outcome = HuntMissing
			entry.Reason = "no target URL in source table"

		default:
			if fetched && pacer != nil {
				if err := pacer.Wait(ctx); err != nil {
					return report, err
				}
			}
			fetched = true

			opts := Options{
				TargetTitle: row.Title,
				CuratorNote: row.AuthoritySignal,
			}
			if row.VisualHook != "" {
				opts.AdditionalTags = tags.FromVisualHook(row.VisualHook)
			}

			result, err := p.IngestURL(ctx, row.TargetURL, opts)
			if err != nil {
				entry.Outcome = HuntFailed
				entry.Reason = err.Error()
				p.logger.Warn("hunt row failed",
					logging.String("artist", row.Artist),
					logging.String("title", row.Title),
					logging.Error(err))
			} else {
				entry.Slug = result.Slug
				entry.Reason = result.Reason
				if result.Status == StatusSkipped {
					entry.Outcome = HuntSkipped
				} else {
					entry.Outcome = HuntCreated
				}
			}
		}

		switch entry.Outcome {
		case HuntCreated:
			report.Created++
		case HuntSkipped:
			report.Skipped++
		case HuntMissing:
			report.Missing++
		case HuntFailed:
			report.Failed++
		}
		report.Entries = append(report.Entries, entry)
	}
	return report, nil
}

// missingRecord is the JSON shape of one unresolved row in the missing
// report, kept stable so recovery tables can be generated from it.
type missingRecord struct {
	Artist   string `json:"artist"`
	Title    string `json:"title"`
	Director string `json:"director,omitempty"`
	Year     string `json:"year,omitempty"`
	Reason   string `json:"reason"`
}

// WriteMissingReport merges unresolved rows from a batch run into a JSON
// report. Existing entries are kept; rows already present (same artist and
// title) are not duplicated.
func WriteMissingReport(path string, report HuntReport) error {
	var existing []missingRecord
	if data, err := os.ReadFile(path); err == nil {
		if err := json.Unmarshal(data, &existing); err != nil {
			return fmt.Errorf("parsing existing missing report: %w", err)
		}
	}

	seen := make(map[string]bool, len(existing))
	for _, rec := range existing {
		seen[rec.Artist+"\x00"+rec.Title] = true
	}
	for _, entry := range report.Entries {
		if entry.Outcome != HuntMissing && entry.Outcome != HuntFailed {
			continue
		}
		key := entry.Row.Artist + "\x00" + entry.Row.Title
		if seen[key] {
			continue
		}
		seen[key] = true
		existing = append(existing, missingRecord{
			Artist:   entry.Row.Artist,
			Title:    entry.Row.Title,
			Director: entry.Row.Director,
			Year:     entry.Row.Year,
			Reason:   entry.Reason,
		})
	}

	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding missing report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing missing report: %w", err)
	}
	return nil
}
