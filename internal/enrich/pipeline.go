package enrich

import (
	"strings"

	"github.com/google/uuid"

	"mastermaker/internal/logger"
	"mastermaker/internal/lookup"
	"mastermaker/internal/table"
)

// JoinReport names one join in the fixed sequence together with its
// row-level outcome.
type JoinReport struct {
	Name  string
	Stats table.JoinStats
}

// RunStats summarizes one pipeline run for the report.
type RunStats struct {
	RunID   string
	RowsIn  int
	RowsOut int
	Joins   []JoinReport
}

// Expanded returns the total number of rows added by multi-match joins
// across the whole run.
func (s *RunStats) Expanded() int {
	total := 0
	for _, j := range s.Joins {
		total += j.Stats.Expanded
	}
	return total
}

// Pipeline runs the enrichment sequence over one extract. A Pipeline is
// stateless between runs; each Run is independent and deterministic
// given the same inputs.
type Pipeline struct {
	log        *logger.Logger
	normalizer *Normalizer
}

// NewPipeline creates a pipeline.
func NewPipeline(log *logger.Logger) *Pipeline {
	return &Pipeline{
		log:        log,
		normalizer: NewNormalizer(log),
	}
}

// Run normalizes the extract and applies the fixed join, classification,
// override and decision sequence, returning the decorated dataset in
// presentation order. The stage order matters: later cascades read
// columns that only exist after specific earlier joins.
func (p *Pipeline) Run(src *table.Table, lk *lookup.Tables) (*table.Table, *RunStats) {
	stats := &RunStats{
		RunID:  uuid.NewString(),
		RowsIn: src.Len(),
	}
	log := p.log.With("run_id", stats.RunID)

	p.normalizer.Normalize(src)
	t := src

	// The underpinning flag must be in place before the technology
	// cascade runs.
	t = p.join(t, stats, "underpinning_db_server", lk.UnderpinningDBServer,
		[]string{"SERVER_NAME"}, []string{"SERVER_NAME"})

	locationCascade.Apply(t, "Location_Today")
	t.Set("Location_Calculated", calculatedFlag("Location_Today", LabelUnknown))
	t.Set("HUB_LOCATION", func(r table.Record) string {
		if r.Str("Location_Today") == LabelHub {
			return "Y"
		}
		return "N"
	})

	technologyCascade.Apply(t, "Technology_Today")
	t.Set("Technology_Calculated", calculatedFlag("Technology_Today", LabelUnknown))

	t = p.join(t, stats, "ci_settings", lk.CISettings,
		[]string{"PLANNER_UNIQUE_IDENTIFIER"}, []string{"PLANNER_UNIQUE_IDENTIFIER"})

	applyManualOverride(t, "Location_Today", "Location Manually")
	applyManualOverride(t, "Technology_Today", "Technology Manually")

	t.Default("CI Summary", "Unkown CI Summary")

	t.Set("S2T2T", func(r table.Record) string {
		return r.Str("CI Summary") + "_" + r.Str("DISPOSITION_OPTION_STEP_1") + "_" + r.Str("DISPOSITION_OPTION_STEP_2")
	})
	t.Set("S2T-1", func(r table.Record) string {
		return r.Str("DISPOSITION_OPTION_STEP_1")
	})
	t.Set("S2T-2", func(r table.Record) string {
		return r.Str("DISPOSITION_OPTION_STEP_1") + "_" + r.Str("DISPOSITION_OPTION_STEP_2")
	})

	t = p.join(t, stats, "step0_settings", lk.Step0Settings,
		[]string{"Technology_Today"}, []string{"Technology_Today"})
	t = p.join(t, stats, "step1_settings", lk.Step1Settings,
		[]string{"DISPOSITION_OPTION_STEP_1"}, []string{"DISPOSITION_OPTION_STEP_1"})
	t = p.join(t, stats, "step2_settings", lk.Step2Settings,
		[]string{"DISPOSITION_OPTION_STEP_2"}, []string{"DISPOSITION_OPTION_STEP_2"})

	t = p.join(t, stats, "s2t1_settings", lk.S2T1Settings,
		[]string{"S2T-1"}, []string{"S2T1"})
	t = p.join(t, stats, "s2t2_settings", lk.S2T2Settings,
		[]string{"S2T-2"}, []string{"S2T2"})
	t = p.join(t, stats, "s2t2t_settings", lk.S2T2TSettings,
		[]string{"S2T2T"}, []string{"S2T2T"})

	t = p.join(t, stats, "nar_baseline", lk.NARBaseline,
		[]string{"NAR_INSTANCE_ID"}, []string{"NAR ID"})
	t.Rename("Certified Decom Candidate", "NAR App Status Decom")
	t.Rename("Instance Planned Retirement Date", "NAR App Planned Retirement Date")

	t = p.join(t, stats, "eap_grid_consumers", lk.EAPGridConsumers,
		[]string{"NAR_INSTANCE_ID"}, []string{"NAR ID"})
	t = p.join(t, stats, "platform_nars", lk.PlatformNARs,
		[]string{"NAR_INSTANCE_ID"}, []string{"NAR ID"})

	// The manual columns have served the overrides; they never reach
	// the output.
	t.Drop("Location Manually", "Technology Manually")

	applyChaseDecisions(t)

	t = p.join(t, stats, "schedule_v2v", lk.ScheduleV2V,
		[]string{"SERVER_NAME"}, []string{"Full_Server_Name"})
	t = p.join(t, stats, "schedule_p2v", lk.ScheduleP2V,
		[]string{"SERVER_NAME"}, []string{"SERVER_NAME"})
	t = p.join(t, stats, "schedule_p2p", lk.ScheduleP2P,
		[]string{"SERVER_NAME"}, []string{"SERVER_NAME"})

	t.Set("Part of Migration Initiative (P2V, P2P, V2V)", func(r table.Record) string {
		if strings.TrimSpace(r.Str("V2V-Scope")) != "" || strings.TrimSpace(r.Str("P2P Scope")) != "" {
			return "Yes"
		}
		return ""
	})

	t.FillBlank("No",
		"EAP/Grid Consumer", "Platform_Provider",
		"Baseline Aug", "Baseline Sept", "Baseline Oct", "Baseline Nov", "Baseline Dec")

	t.Drop(droppedColumns...)

	t = p.join(t, stats, "data_residency", lk.DataResidency,
		[]string{"NAR_INSTANCE_ID"}, []string{"NAR-ID"})

	v2vSubScopeCascade.Apply(t, "V2V Sub Scope")
	vendorCascade.Apply(t, "Vendor_Today")

	t = p.join(t, stats, "shared_dedicate_tagging", lk.SharedDedicateTagging,
		[]string{"SERVER_NAME"}, []string{"SERVER_NAME"})
	t.RenameAlias("Shared\\Dedicate_Server", "SharedDedicated_Server")

	t = p.join(t, stats, "location_by_dc_name", lk.LocationByDCName,
		[]string{"HP_DC_NAME"}, []string{"HP_DC_NAME"})

	project(t)

	stats.RowsOut = t.Len()
	log.Info("pipeline complete",
		"rows_in", stats.RowsIn, "rows_out", stats.RowsOut, "expanded_rows", stats.Expanded())

	return t, stats
}

// join runs one left join in the sequence, recording and logging its
// stats. A join that multiplied rows is surfaced as a warning: the
// fan-out is preserved, but it usually signals duplicate keys in a
// lookup source.
func (p *Pipeline) join(t *table.Table, stats *RunStats, name string, right *table.Table, leftKeys, rightKeys []string) *table.Table {
	out, js := table.LeftJoin(t, right, leftKeys, rightKeys)
	stats.Joins = append(stats.Joins, JoinReport{Name: name, Stats: js})

	if js.Expanded > 0 {
		p.log.Warn("join multiplied rows", "join", name, "expanded", js.Expanded)
	}
	p.log.Debug("join applied",
		"join", name, "matched", js.Matched, "unmatched", js.Unmatched, "expanded", js.Expanded)

	return out
}

// calculatedFlag reports whether the cascade produced a value or left
// the default for the operator to fill manually.
func calculatedFlag(col, def string) func(table.Record) string {
	return func(r table.Record) string {
		if r.Str(col) != def {
			return LabelCalculated
		}
		return LabelManual
	}
}
