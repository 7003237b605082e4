package ingest

import (
	"fmt"

	"mvault/internal/credits"
	"mvault/internal/logging"
)

// RepairAction records one credit fix applied (or proposed) by a repair
// pass.
type RepairAction struct {
	Slug     string
	Field    string
	OldValue string
}

// RepairCredits scans the content set for director values that fail
// validation, typically role fragments leaked from adjacent credit lines.
// Invalid values are cleared, never replaced with a guess. With dryRun the
// offending records are reported but left untouched.
func (p *Pipeline) RepairCredits(dryRun bool) ([]RepairAction, error) {
	records, malformed, err := p.store.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(malformed) > 0 {
		return nil, fmt.Errorf("%d records are malformed, repair them first: %v", len(malformed), malformed[0])
	}

	var actions []RepairAction
	for _, rec := range records {
		director := rec.Credits.Director
		if director == "" || credits.ValidateDirector(director) != "" {
			continue
		}

		actions = append(actions, RepairAction{
			Slug:     rec.Slug,
			Field:    "director",
			OldValue: director,
		})
		if dryRun {
			continue
		}

		rec.Credits.Director = ""
		if err := p.store.Write(rec); err != nil {
			return actions, fmt.Errorf("clearing director on %s: %w", rec.Slug, err)
		}
		p.logger.Info("cleared invalid director",
			logging.String(logging.FieldSlug, rec.Slug),
			logging.String("old_value", director))
	}
	return actions, nil
}
