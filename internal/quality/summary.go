package quality

import "mvault/internal/content"

// Summary aggregates a battery run over the whole content set.
type Summary struct {
	TotalRecords   int
	CleanRecords   int
	Issues         []Issue
	SeverityCounts map[Severity]int
}

// AuditAll audits every record and aggregates the results. Issue order
// follows record order, then battery order.
func AuditAll(records []content.Record) Summary {
	summary := Summary{
		TotalRecords: len(records),
		SeverityCounts: map[Severity]int{
			SeverityCritical: 0,
			SeverityError:    0,
			SeverityWarning:  0,
			SeverityInfo:     0,
		},
	}
	for _, rec := range records {
		issues := AuditRecord(rec)
		if len(issues) == 0 {
			summary.CleanRecords++
			continue
		}
		for _, issue := range issues {
			summary.SeverityCounts[issue.Severity]++
		}
		summary.Issues = append(summary.Issues, issues...)
	}
	return summary
}

// CleanPercent is the share of records with no issues at all.
func (s Summary) CleanPercent() float64 {
	if s.TotalRecords == 0 {
		return 100
	}
	return float64(s.CleanRecords) / float64(s.TotalRecords) * 100
}
