// Package quality runs a declarative rule battery over content records.
// Every rule is data (pattern, fields, severity, description) iterated by
// one generic loop, so adding a rule never touches the others. Rules are
// independent; one field can collect several issues.
package quality

import (
	"regexp"

	"mvault/internal/content"
)

// Severity ranks an issue. Critical marks problems that are silently wrong
// rather than visibly empty, the costliest kind.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityError    Severity = "error"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Issue is one rule firing on one field of one record.
type Issue struct {
	Slug        string
	Field       string
	Severity    Severity
	Rule        string
	Description string
	Value       string
}

// rule is one entry in the battery. A nil pattern means the rule fires on
// an empty field instead of a pattern hit.
type rule struct {
	name        string
	severity    Severity
	fields      []string
	pattern     *regexp.Regexp
	description string
}

var creditFields = []string{"director", "production", "label"}

var checks = []rule{
	{
		name:        "leading-punctuation",
		severity:    SeverityError,
		fields:      creditFields,
		pattern:     regexp.MustCompile(`^[-–—,\s]+[A-Z]`),
		description: "field starts with punctuation residue",
	},
	{
		name:        "social-handle",
		severity:    SeverityError,
		fields:      creditFields,
		pattern:     regexp.MustCompile(`@[\w.]+`),
		description: "field contains an @username social handle",
	},
	{
		name:        "role-prefix-pollution",
		severity:    SeverityError,
		fields:      creditFields,
		pattern:     regexp.MustCompile(`\b(?:Cinematographer|Editor|Director|DOP|VFX|Sound|Art Director|Producer|Production|Colorist|Gaffer|Camera)\s*[-:]`),
		description: "field contains another role's label",
	},
	{
		name:        "org-prefix",
		severity:    SeverityWarning,
		fields:      []string{"production", "label"},
		pattern:     regexp.MustCompile(`^[A-Z][a-z]+\s*:\s*`),
		description: "field carries an organization colon prefix",
	},
	{
		name:        "missing-first-letter",
		severity:    SeverityCritical,
		fields:      creditFields,
		pattern:     regexp.MustCompile(`^[a-z]`),
		description: "field starts lowercase, first character may be truncated",
	},
	{
		name:        "title-separator",
		severity:    SeverityWarning,
		fields:      []string{"title"},
		pattern:     regexp.MustCompile(`\s+-\s+`),
		description: "title contains \" - \", possibly a redundant artist prefix",
	},
	{
		name:        "artist-is-channel",
		severity:    SeverityWarning,
		fields:      []string{"artist"},
		pattern:     regexp.MustCompile(`(?i)\b(?:official|vevo|label|entertainment|records)\b`),
		description: "artist contains channel keywords, may be a misparse",
	},
	{
		name:        "date-placeholder",
		severity:    SeverityInfo,
		fields:      []string{"publishDate"},
		pattern:     regexp.MustCompile(`-01-01$`),
		description: "publish date is a January 1st placeholder",
	},
	{
		name:        "empty-curator-note",
		severity:    SeverityInfo,
		fields:      []string{"curator_note"},
		description: "curator note is empty",
	},
}

func fieldValue(rec content.Record, field string) string {
	switch field {
	case "title":
		return rec.Title
	case "artist":
		return rec.Artist
	case "publishDate":
		return rec.PublishDate
	case "curator_note":
		return rec.CuratorNote
	case "director":
		return rec.Credits.Director
	case "production":
		return rec.Credits.Production
	case "label":
		return rec.Credits.Label
	}
	return ""
}

// AuditRecord runs the full battery against one record.
func AuditRecord(rec content.Record) []Issue {
	var issues []Issue
	for _, check := range checks {
		for _, field := range check.fields {
			value := fieldValue(rec, field)

			if check.pattern == nil {
				if value == "" {
					issues = append(issues, newIssue(rec, check, field, "(empty)"))
				}
				continue
			}
			if value == "" {
				continue
			}
			if check.pattern.MatchString(value) {
				issues = append(issues, newIssue(rec, check, field, value))
			}
		}
	}
	return issues
}

func newIssue(rec content.Record, check rule, field, value string) Issue {
	return Issue{
		Slug:        rec.Slug,
		Field:       field,
		Severity:    check.severity,
		Rule:        check.name,
		Description: check.description,
		Value:       value,
	}
}
