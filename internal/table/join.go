package table

import "strings"

// JoinStats describes the outcome of one left join for observability.
// Expanded counts the rows added beyond the input row count when a key
// matched more than one lookup row.
type JoinStats struct {
	LeftRows  int
	Matched   int
	Unmatched int
	Expanded  int
}

// compositeKeySep separates the parts of a multi-column join key. Unit
// separator, never present in cell text.
const compositeKeySep = "\x1f"

// LeftJoin joins every left row against the lookup table on the declared
// key columns. Semantics:
//
//   - every left row is retained;
//   - a key matching multiple lookup rows emits one output row per match;
//   - an unmatched row keeps absent values for all lookup columns;
//   - an absent key part on either side means no match, never an error;
//   - for column names present on both sides the lookup value wins, so
//     callers must pre-rename ambiguous lookup columns.
func LeftJoin(left, right *Table, leftKeys, rightKeys []string) (*Table, JoinStats) {
	stats := JoinStats{LeftRows: left.Len()}

	index := make(map[string][]Record, right.Len())
	for _, r := range right.Rows {
		k, ok := joinKey(r, rightKeys)
		if !ok {
			continue
		}
		index[k] = append(index[k], r)
	}

	out := New(left.Columns...)
	for _, col := range right.Columns {
		if !out.HasColumn(col) {
			out.Columns = append(out.Columns, col)
		}
	}

	for _, l := range left.Rows {
		k, ok := joinKey(l, leftKeys)
		matches := index[k]
		if !ok || len(matches) == 0 {
			out.Append(l)
			stats.Unmatched++
			continue
		}
		stats.Matched++
		stats.Expanded += len(matches) - 1
		for _, m := range matches {
			merged := l.Clone()
			for _, col := range right.Columns {
				if v, present := m[col]; present {
					merged[col] = v
				}
			}
			out.Append(merged)
		}
	}

	return out, stats
}

// joinKey builds the composite key for the row; ok is false when any key
// part is absent.
func joinKey(r Record, keys []string) (string, bool) {
	parts := make([]string, len(keys))
	for i, k := range keys {
		v, ok := r[k]
		if !ok {
			return "", false
		}
		parts[i] = v
	}
	return strings.Join(parts, compositeKeySep), true
}
