package enrich

import (
	"strings"

	"mastermaker/internal/table"
)

// applyManualOverride replaces an UNKNOWN cascade result with the
// operator-supplied value from the manual column, trimmed, when one is
// present and non-blank. The paired calculated flag is not revisited:
// it already reads Manual for UNKNOWN results, and a manually supplied
// value is manual by definition.
//
// A missing manual column is a no-op, matching the degrade-gracefully
// policy for optional columns.
func applyManualOverride(t *table.Table, resultCol, manualCol string) {
	if !t.HasColumn(manualCol) {
		return
	}
	for _, r := range t.Rows {
		if r.Str(resultCol) != LabelUnknown {
			continue
		}
		if r.IsBlank(manualCol) {
			continue
		}
		r[resultCol] = strings.TrimSpace(r.Str(manualCol))
	}
}
