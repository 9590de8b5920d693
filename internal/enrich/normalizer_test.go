package enrich

import (
	"testing"

	"mastermaker/internal/logger"
	"mastermaker/internal/table"
)

func TestNormalize_FilterAndDedupe(t *testing.T) {
	tbl := table.New("PLANNER_UNIQUE_IDENTIFIER", "REMOVED_FLAG", "V")
	tbl.Append(table.Record{"PLANNER_UNIQUE_IDENTIFIER": "p1", "V": "first"})
	tbl.Append(table.Record{"PLANNER_UNIQUE_IDENTIFIER": "p2", "REMOVED_FLAG": "X", "V": "removed"})
	tbl.Append(table.Record{"PLANNER_UNIQUE_IDENTIFIER": "p1", "V": "dupe"})
	tbl.Append(table.Record{"PLANNER_UNIQUE_IDENTIFIER": "p3", "V": "kept"})

	NewNormalizer(logger.Discard()).Normalize(tbl)

	if tbl.Len() != 2 {
		t.Fatalf("rows = %d, want 2", tbl.Len())
	}
	if tbl.Rows[0].Str("V") != "first" {
		t.Errorf("dedupe kept %q, want the first occurrence", tbl.Rows[0].Str("V"))
	}
	for _, r := range tbl.Rows {
		if _, ok := r.Get("REMOVED_FLAG"); ok {
			t.Error("a removed record survived the filter")
		}
	}
}

func TestNormalize_RenamesAsOfTodayColumns(t *testing.T) {
	tbl := table.New("LOCATION_TODAY", "TECHNOLOGY_TODAY", "VENDOR_TODAY")
	tbl.Append(table.Record{"LOCATION_TODAY": "l", "TECHNOLOGY_TODAY": "t", "VENDOR_TODAY": "v"})

	NewNormalizer(logger.Discard()).Normalize(tbl)

	r := tbl.Rows[0]
	if r.Str("OneMI_LOCATION_TODAY") != "l" || r.Str("OneMI_TECHNOLOGY_TODAY") != "t" || r.Str("OneMI_VENDOR_TODAY") != "v" {
		t.Errorf("OneMI_ renames missing: %v", r)
	}
	if tbl.HasColumn("LOCATION_TODAY") {
		t.Error("unprefixed column should be freed for computed values")
	}
}

func TestNormalize_BlankSentinel(t *testing.T) {
	tbl := table.New("COUNTRY", "BUILDING", "SERVER_NAME")
	tbl.Append(table.Record{"COUNTRY": " ", "SERVER_NAME": "srv1"})

	NewNormalizer(logger.Discard()).Normalize(tbl)

	r := tbl.Rows[0]
	if r.Str("COUNTRY") != EmptyToken {
		t.Errorf("COUNTRY = %q, want %q", r.Str("COUNTRY"), EmptyToken)
	}
	if r.Str("BUILDING") != EmptyToken {
		t.Errorf("absent BUILDING = %q, want %q", r.Str("BUILDING"), EmptyToken)
	}
	if r.Str("SERVER_NAME") != "srv1" {
		t.Error("columns outside the fill list must pass through")
	}
}

func TestCoerceDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"iso date", "2025-03-31", "2025-03-31"},
		{"iso datetime drops time", "2025-03-31 14:30:00", "2025-03-31"},
		{"slash format", "3/31/2025", "2025-03-31"},
		{"garbage", "TBD", "1900-01-01"},
		{"empty", "", "1900-01-01"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := coerceDate(tc.in); got != tc.want {
				t.Errorf("coerceDate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_TimelineCoercion(t *testing.T) {
	tbl := table.New("DISPOSITION_TIMELINE_STEP_1")
	tbl.Append(table.Record{"DISPOSITION_TIMELINE_STEP_1": "not a date"})
	tbl.Append(table.Record{})

	NewNormalizer(logger.Discard()).Normalize(tbl)

	for i, r := range tbl.Rows {
		if got := r.Str("DISPOSITION_TIMELINE_STEP_1"); got != sentinelDate {
			t.Errorf("row %d timeline = %q, want sentinel %s", i, got, sentinelDate)
		}
	}
}
