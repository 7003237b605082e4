package reconcile

import (
	"fmt"
	"strings"
	"time"
)

// reportOrder fixes the section and summary ordering of the report.
var reportOrder = []Status{StatusOK, StatusMissing, StatusSuspicious, StatusMismatch, StatusSkip}

// Summary counts entries per status.
func Summary(entries []Entry) map[Status]int {
	counts := make(map[Status]int, len(reportOrder))
	for _, status := range reportOrder {
		counts[status] = 0
	}
	for _, entry := range entries {
		counts[entry.Status]++
	}
	return counts
}

// Report renders the audit as a markdown document for human review: a
// status summary table followed by one section per actionable status, each
// entry showing the source row and the reason it landed there.
func Report(entries []Entry, now time.Time) string {
	counts := Summary(entries)

	var b strings.Builder
	b.WriteString("# Audit Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n\n", now.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Total rows:** %d\n\n", len(entries))

	b.WriteString("## Summary\n\n")
	b.WriteString("| Status | Count | Percentage |\n")
	b.WriteString("|--------|-------|------------|\n")
	for _, status := range reportOrder {
		pct := 0.0
		if len(entries) > 0 {
			pct = float64(counts[status]) / float64(len(entries)) * 100
		}
		fmt.Fprintf(&b, "| %s | %d | %.1f%% |\n", strings.ToUpper(string(status)), counts[status], pct)
	}
	b.WriteString("\n---\n\n")

	writeSection(&b, entries, StatusMissing,
		"Rows present in a source table with no matching content record.",
		func(b *strings.Builder, e Entry) {
			writeRowHeading(b, e)
			fmt.Fprintf(b, "- **Reason:** %s\n", e.Reason)
			b.WriteString("- **Action:** hunt the video or ingest it manually\n\n")
		})

	writeSection(&b, entries, StatusSuspicious,
		"Matched records whose asset is probably not the official video.",
		func(b *strings.Builder, e Entry) {
			writeRowHeading(b, e)
			fmt.Fprintf(b, "- **Record:** `%s`\n", e.MatchedSlug)
			fmt.Fprintf(b, "- **Reason:** %s\n", e.Reason)
			b.WriteString("- **Action:** review manually, re-ingest if needed\n\n")
		})

	writeSection(&b, entries, StatusMismatch,
		"Matched records whose artist disagrees with the source table.",
		func(b *strings.Builder, e Entry) {
			writeRowHeading(b, e)
			fmt.Fprintf(b, "- **Expected artist:** `%s`\n", e.Source.Artist)
			fmt.Fprintf(b, "- **Record artist:** `%s`\n", e.MatchedArtist)
			fmt.Fprintf(b, "- **Record:** `%s`\n", e.MatchedSlug)
			fmt.Fprintf(b, "- **Reason:** %s\n", e.Reason)
			b.WriteString("- **Action:** extend the artist mappings or fix the record\n\n")
		})

	writeSection(&b, entries, StatusSkip,
		"Rows skipped because required source fields were empty.",
		func(b *strings.Builder, e Entry) {
			fmt.Fprintf(b, "- **Line %d**, year %s: %s\n", e.Source.Line, e.Year, e.Reason)
		})

	return b.String()
}

func writeSection(b *strings.Builder, entries []Entry, status Status, blurb string, write func(*strings.Builder, Entry)) {
	var selected []Entry
	for _, entry := range entries {
		if entry.Status == status {
			selected = append(selected, entry)
		}
	}
	if len(selected) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s (%d)\n\n%s\n\n", strings.ToUpper(string(status)), len(selected), blurb)
	for _, entry := range selected {
		write(b, entry)
	}
	b.WriteString("---\n\n")
}

func writeRowHeading(b *strings.Builder, e Entry) {
	fmt.Fprintf(b, "### %s - %s\n", e.Source.Artist, e.Source.Title)
	fmt.Fprintf(b, "- **Year:** %s\n", e.Year)
	director := e.Source.Director
	if director == "" {
		director = "N/A"
	}
	fmt.Fprintf(b, "- **Director:** %s\n", director)
}
