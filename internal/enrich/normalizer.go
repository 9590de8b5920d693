// Package enrich implements the record enrichment and classification
// pipeline: source normalization, the ordered left-join sequence against
// the lookup tables, the classification cascades, manual overrides, the
// chase decision evaluator, and the output projection.
package enrich

import (
	"time"

	"mastermaker/internal/logger"
	"mastermaker/internal/table"
)

// Sentinel tokens. EmptyToken marks a deliberately blank source field;
// ZeroEmptyToken is the cascade default meaning "nothing derived".
const (
	EmptyToken     = "@_EMPTY"
	ZeroEmptyToken = "0_EMPTY"
)

// sentinelDate replaces unparseable disposition timelines.
const sentinelDate = "1900-01-01"

// blankFilledColumns receive the EmptyToken when blank or absent.
var blankFilledColumns = []string{
	"DISPOSITION_OPTION_STEP_1",
	"DISPOSITION_OPTION_STEP_2",
	"DISPOSITION_TIMELINE_STEP_2",
	"COUNTRY",
	"BUILDING",
	"HP_DC_NAME",
	"DATABASE_VERSION",
	"DISPOSITION_COMMENTS_STEP_1",
	"DISPOSITION_COMMENTS_STEP_2",
}

// dateLayouts are tried in order when coercing the step-1 timeline.
// The extract carries formatted cell text, so several spellings coexist.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06",
	"1/2/2006",
	"02/01/2006",
}

// Normalizer cleans the raw extract before any join or cascade runs.
type Normalizer struct {
	log *logger.Logger
}

// NewNormalizer creates a normalizer.
func NewNormalizer(log *logger.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// Normalize filters removed records, dedupes on the planner identifier,
// frees the as-of-today column names, substitutes the blank sentinel and
// coerces the step-1 timeline to a calendar date. The table is mutated
// in place. Missing columns make the corresponding step a no-op.
func (n *Normalizer) Normalize(t *table.Table) {
	before := t.Len()

	if t.HasColumn("REMOVED_FLAG") {
		t.Filter(func(r table.Record) bool {
			_, removed := r.Get("REMOVED_FLAG")
			return !removed
		})
	}
	n.log.Debug("removed-flag filter applied", "dropped", before-t.Len())

	if t.HasColumn("PLANNER_UNIQUE_IDENTIFIER") {
		deduped := t.Len()
		t.Distinct("PLANNER_UNIQUE_IDENTIFIER")
		n.log.Debug("deduped on planner identifier", "dropped", deduped-t.Len())
	}

	// Free the unprefixed names for the values this run computes.
	t.Rename("LOCATION_TODAY", "OneMI_LOCATION_TODAY")
	t.Rename("TECHNOLOGY_TODAY", "OneMI_TECHNOLOGY_TODAY")
	t.Rename("VENDOR_TODAY", "OneMI_VENDOR_TODAY")

	t.FillBlank(EmptyToken, blankFilledColumns...)

	if t.HasColumn("DISPOSITION_TIMELINE_STEP_1") {
		for _, r := range t.Rows {
			r["DISPOSITION_TIMELINE_STEP_1"] = coerceDate(r.Str("DISPOSITION_TIMELINE_STEP_1"))
		}
	}

	n.log.Info("source normalized", "rows_in", before, "rows_out", t.Len())
}

// coerceDate normalizes a date string to a calendar date, substituting
// the sentinel when nothing parses.
func coerceDate(v string) string {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, v); err == nil {
			return d.Format("2006-01-02")
		}
	}
	return sentinelDate
}
