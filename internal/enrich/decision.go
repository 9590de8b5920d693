package enrich

import (
	"strings"

	"mastermaker/internal/table"
)

// Outcome is a chase decision. Computed, never loaded from source.
type Outcome string

// The five chase decision outcomes, in priority order.
const (
	OutcomeChaserBlock Outcome = "not required (Chaser Block)"
	OutcomeNonRelevant Outcome = "not required (Non-relevant CI)"
	OutcomeNotRequired Outcome = "not required"
	OutcomeFilled      Outcome = "filled"
	OutcomePending     Outcome = "pending"
)

// ChaseDecision evaluates the shared priority rule for one
// (disposition, chase-flag) pair. Missing fields read as blank; the
// evaluator never fails.
//
// Priority, first match wins:
//  1. ChaserBlocker is "YES" — blocked, regardless of everything else.
//  2. CI Summary is exactly "No response required" — non-relevant CI.
//  3. The pair's chase flag is "NO".
//  4. The disposition is non-blank and not the 0_EMPTY sentinel.
//  5. Otherwise the chase is still pending.
func ChaseDecision(r table.Record, dispoField, chaseFlagField string) Outcome {
	if r.Str("ChaserBlocker") == "YES" {
		return OutcomeChaserBlock
	}
	if r.Str("CI Summary") == noResponseRequired {
		return OutcomeNonRelevant
	}
	if r.Str(chaseFlagField) == "NO" {
		return OutcomeNotRequired
	}
	dispo := r.Str(dispoField)
	if strings.TrimSpace(dispo) != "" && dispo != ZeroEmptyToken {
		return OutcomeFilled
	}
	return OutcomePending
}

// noResponseRequired duplicates the lookup package's CI Summary marker;
// the two must agree.
const noResponseRequired = "No response required"

// chasePairs lists the four independent decision columns and the fields
// each one reads.
var chasePairs = []struct {
	Column    string
	Dispo     string
	ChaseFlag string
}{
	{"Step1-Dispo Chase Decision", "DISPOSITION_OPTION_STEP_1", "S2T1-CIO to Dispo Chase"},
	{"Step2-Dispo Chase Decision", "DISPOSITION_OPTION_STEP_2", "S2T2-CIO to Dispo Chase"},
	{"Step1-Time Chase Decision", "DISPOSITION_TIMELINE_STEP_1", "S2T1-CIO to Time Chase"},
	{"Step2-Time Chase Decision", "DISPOSITION_TIMELINE_STEP_2", "S2T2-CIO to Time Chase"},
}

// applyChaseDecisions computes all four decision columns.
func applyChaseDecisions(t *table.Table) {
	for _, pair := range chasePairs {
		p := pair
		t.Set(p.Column, func(r table.Record) string {
			return string(ChaseDecision(r, p.Dispo, p.ChaseFlag))
		})
	}
}
