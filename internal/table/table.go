// Package table provides the in-memory tabular model the enrichment
// pipeline operates on: ordered rows of named fields, loaded once from a
// workbook and mutated in place by each pipeline stage.
//
// A field is either present (possibly blank) or absent. Absence is
// modelled as a missing map entry, which keeps the two states
// distinguishable where it matters (join-key matching) and lets callers
// collapse them where it does not (sentinel substitution).
package table

import "strings"

// Record is one row: a mapping of field name to value. Absent fields
// have no map entry.
type Record map[string]string

// Get returns the field value and whether it is present.
func (r Record) Get(field string) (string, bool) {
	v, ok := r[field]
	return v, ok
}

// Str returns the field value, or the empty string when absent.
func (r Record) Str(field string) string {
	return r[field]
}

// IsBlank reports whether the field is absent or whitespace-only.
func (r Record) IsBlank(field string) bool {
	v, ok := r[field]
	return !ok || strings.TrimSpace(v) == ""
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Table is an ordered sequence of records with a declared column set.
// Row order is preserved through every operation; the column list tracks
// the discovery order of fields for projection.
type Table struct {
	Columns []string
	Rows    []Record
}

// New creates an empty table with the given column set.
func New(columns ...string) *Table {
	return &Table{Columns: append([]string(nil), columns...)}
}

// Append adds a row to the table.
func (t *Table) Append(r Record) {
	t.Rows = append(t.Rows, r)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the column is declared.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// EnsureColumn declares the column if missing, setting the default value
// on every row.
func (t *Table) EnsureColumn(name, def string) {
	if t.HasColumn(name) {
		return
	}
	t.Columns = append(t.Columns, name)
	for _, r := range t.Rows {
		r[name] = def
	}
}

// Rename renames a column. A missing source column is a no-op.
func (t *Table) Rename(from, to string) {
	if !t.HasColumn(from) {
		return
	}
	for i, c := range t.Columns {
		if c == from {
			t.Columns[i] = to
		}
	}
	for _, r := range t.Rows {
		if v, ok := r[from]; ok {
			delete(r, from)
			r[to] = v
		}
	}
}

// RenameAlias reconciles two coexisting schema versions: when the
// canonical column is already present nothing happens; otherwise the
// first present alias, in the given priority order, is renamed to it.
func (t *Table) RenameAlias(canonical string, aliases ...string) {
	if t.HasColumn(canonical) {
		return
	}
	for _, alias := range aliases {
		if t.HasColumn(alias) {
			t.Rename(alias, canonical)
			return
		}
	}
}

// FillBlank replaces absent or whitespace-only values in the named
// columns with the token. Undeclared columns are skipped. The operation
// is idempotent as long as the token itself is non-blank.
func (t *Table) FillBlank(token string, columns ...string) {
	for _, col := range columns {
		if !t.HasColumn(col) {
			continue
		}
		for _, r := range t.Rows {
			if r.IsBlank(col) {
				r[col] = token
			}
		}
	}
}

// Default sets the value on rows where the column is absent, leaving
// present values (blank included) untouched.
func (t *Table) Default(col, value string) {
	if !t.HasColumn(col) {
		t.Columns = append(t.Columns, col)
	}
	for _, r := range t.Rows {
		if _, ok := r[col]; !ok {
			r[col] = value
		}
	}
}

// Set assigns the value on every row, declaring the column if needed.
func (t *Table) Set(col string, fn func(Record) string) {
	if !t.HasColumn(col) {
		t.Columns = append(t.Columns, col)
	}
	for _, r := range t.Rows {
		r[col] = fn(r)
	}
}

// ReplaceInColumn substitutes every occurrence of old with new in the
// present values of the column.
func (t *Table) ReplaceInColumn(col, old, new string) {
	if !t.HasColumn(col) {
		return
	}
	for _, r := range t.Rows {
		if v, ok := r[col]; ok {
			r[col] = strings.ReplaceAll(v, old, new)
		}
	}
}

// Filter keeps only the rows matching the predicate, preserving order.
func (t *Table) Filter(keep func(Record) bool) {
	out := t.Rows[:0]
	for _, r := range t.Rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	t.Rows = out
}

// Distinct keeps the first row observed for each value of the key
// column, in input order. All rows with an absent key share one bucket.
func (t *Table) Distinct(key string) {
	seen := make(map[string]bool, len(t.Rows))
	out := t.Rows[:0]
	for _, r := range t.Rows {
		k, ok := r[key]
		if !ok {
			k = "\x00absent"
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, r)
	}
	t.Rows = out
}

// Drop removes the named columns and their values. Missing columns are
// skipped.
func (t *Table) Drop(columns ...string) {
	doomed := make(map[string]bool, len(columns))
	for _, c := range columns {
		doomed[c] = true
	}
	kept := t.Columns[:0]
	for _, c := range t.Columns {
		if !doomed[c] {
			kept = append(kept, c)
		}
	}
	t.Columns = kept
	for _, r := range t.Rows {
		for c := range doomed {
			delete(r, c)
		}
	}
}

// Reorder rearranges the column list to match the given order; columns
// not named keep their relative discovery order and are appended after.
// Order entries not present in the table are skipped.
func (t *Table) Reorder(order []string) {
	present := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		present[c] = true
	}
	picked := make(map[string]bool, len(order))
	next := make([]string, 0, len(t.Columns))
	for _, c := range order {
		if present[c] && !picked[c] {
			next = append(next, c)
			picked[c] = true
		}
	}
	for _, c := range t.Columns {
		if !picked[c] {
			next = append(next, c)
		}
	}
	t.Columns = next
}
