package lookup

import (
	"strings"

	"mastermaker/internal/table"
)

// noResponseRequired is the CI Summary marker text: any summary that
// contains it collapses to exactly this value so the decision evaluator
// can compare on equality.
const noResponseRequired = "No response required"

// tbcWavePhrases are the diagnostic phrases a schedule's migration wave
// text may carry when the wave could not be determined.
var tbcWavePhrases = []string{
	"subnet not found",
	"subnet without virtual instance",
}

func normalizeUnderpinningDBServer(t *table.Table) {
	t.Distinct("SERVER_NAME")
}

func normalizeCISettings(t *table.Table) {
	if !t.HasColumn("CI Summary") {
		return
	}
	t.Set("CI Summary", func(r table.Record) string {
		v := r.Str("CI Summary")
		if strings.Contains(v, noResponseRequired) {
			return noResponseRequired
		}
		return v
	})
}

func normalizeStep0Settings(t *table.Table) {
	// The settings workbook labels its key "Technology Today"; the main
	// record set computes Technology_Today. Reconcile here so the join
	// keys on one name.
	t.RenameAlias("Technology_Today", "Technology Today")
}

func normalizeS2T1Settings(t *table.Table) {
	t.RenameAlias("S2T1-CIO to Dispo Chase", "Dispo Chase")
}

func normalizeS2T2Settings(t *table.Table) {
	t.RenameAlias("S2T2-CIO to Dispo Chase", "Dispo Chase")
}

func normalizeS2T2TSettings(t *table.Table) {
	t.RenameAlias("CIO Chase YN", "CIO Decision")
}

func normalizeEAPGridConsumers(t *table.Table) {
	t.Rename("Status", "EAP/Grid Consumer")
}

func normalizePlatformNARs(t *table.Table) {
	t.Rename("ReturnValue", "Platform_Provider")
	t.ReplaceInColumn("Platform_Provider", "yes", "Yes")
}

func normalizeScheduleV2V(t *table.Table) {
	t.FillBlank("@_Empty", "Full_Server_Name")
	t.ReplaceInColumn("Country", "United Kingdom", "UK")

	if !t.HasColumn("Migration wave") {
		return
	}
	t.Set("V2V-Scope", func(r table.Record) string {
		wave := r.Str("Migration wave")
		for _, phrase := range tbcWavePhrases {
			if strings.Contains(wave, phrase) {
				return r.Str("Country") + "-TBC"
			}
		}
		return wave
	})
}

func normalizeDataResidency(t *table.Table) {
	t.Rename("Data Residency", "Data_Residency")
}

func normalizeLocationByDCName(t *table.Table) {
	// The main record set already carries a computed Location_Today;
	// rename before joining so the DC-name based value never collides
	// with it.
	t.Rename("Location_Today", "Location_Today_DC-Name-Based")
}
