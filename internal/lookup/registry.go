// Package lookup loads and normalizes the reference tables the pipeline
// joins against. Every table is loaded once per run and read-only from
// then on; all schema reconciliation (renames, legacy aliases, derived
// columns) happens here so the join engine never has to resolve
// ambiguous column names.
package lookup

import (
	"errors"
	"fmt"
	"strings"

	"mastermaker/internal/config"
	"mastermaker/internal/logger"
	"mastermaker/internal/table"
	"mastermaker/internal/workbook"
)

// Tables holds every lookup table for one run, loaded and normalized.
type Tables struct {
	UnderpinningDBServer  *table.Table
	CISettings            *table.Table
	Step0Settings         *table.Table
	Step1Settings         *table.Table
	Step2Settings         *table.Table
	S2T1Settings          *table.Table
	S2T2Settings          *table.Table
	S2T2TSettings         *table.Table
	NARBaseline           *table.Table
	EAPGridConsumers      *table.Table
	PlatformNARs          *table.Table
	ScheduleV2V           *table.Table
	ScheduleP2V           *table.Table
	ScheduleP2P           *table.Table
	DataResidency         *table.Table
	SharedDedicateTagging *table.Table
	LocationByDCName      *table.Table
}

// Registry resolves lookup tables by logical name from the reference
// workbooks.
type Registry struct {
	settings      *workbook.Workbook
	schedules     *workbook.Workbook
	baseline      *workbook.Workbook
	baselineSheet string
	log           *logger.Logger
}

// NewRegistry opens the reference workbooks. Callers own Close.
func NewRegistry(cfg config.LookupsConfig, log *logger.Logger) (*Registry, error) {
	settings, err := workbook.Open(cfg.SettingsPath)
	if err != nil {
		return nil, fmt.Errorf("settings workbook: %w", err)
	}

	schedules, err := workbook.Open(cfg.SchedulesPath)
	if err != nil {
		settings.Close()
		return nil, fmt.Errorf("schedules workbook: %w", err)
	}

	baseline, err := workbook.Open(cfg.BaselinePath)
	if err != nil {
		settings.Close()
		schedules.Close()
		return nil, fmt.Errorf("baseline workbook: %w", err)
	}

	return &Registry{
		settings:      settings,
		schedules:     schedules,
		baseline:      baseline,
		baselineSheet: cfg.BaselineSheet,
		log:           log,
	}, nil
}

// Close releases all reference workbooks.
func (r *Registry) Close() {
	r.settings.Close()
	r.schedules.Close()
	r.baseline.Close()
}

// LoadAll loads and normalizes every lookup table. Any missing table or
// sheet is fatal.
func (r *Registry) LoadAll() (*Tables, error) {
	t := &Tables{}

	loads := []struct {
		name string
		dst  **table.Table
		load func() (*table.Table, error)
	}{
		{"Database_server_Name", &t.UnderpinningDBServer, r.loadUnderpinningDBServer},
		{"tabCIsettings", &t.CISettings, r.loadCISettings},
		{"tabStepsettings", &t.Step0Settings, r.loadStep0Settings},
		{"tabStep1settings", &t.Step1Settings, func() (*table.Table, error) { return r.resolve(r.settings, "tabStep1settings") }},
		{"tabStep2settings", &t.Step2Settings, func() (*table.Table, error) { return r.resolve(r.settings, "tabStep2settings") }},
		{"tabS2T1settings", &t.S2T1Settings, r.loadS2T1Settings},
		{"tabS2T2settings", &t.S2T2Settings, r.loadS2T2Settings},
		{"tabS2T2Tsettings", &t.S2T2TSettings, r.loadS2T2TSettings},
		{"NAR_ReportBaseLine", &t.NARBaseline, r.loadNARBaseline},
		{"tabEAP_Grid_Consumers", &t.EAPGridConsumers, r.loadEAPGridConsumers},
		{"tabPlatformNARs", &t.PlatformNARs, r.loadPlatformNARs},
		{"tabSchedule_V2V", &t.ScheduleV2V, r.loadScheduleV2V},
		{"tabSchedule_P2V", &t.ScheduleP2V, func() (*table.Table, error) { return r.resolve(r.schedules, "tabSchedule_P2V") }},
		{"tabSchedule_P2P", &t.ScheduleP2P, func() (*table.Table, error) { return r.resolve(r.schedules, "tabSchedule_P2P") }},
		{"Data_Residency", &t.DataResidency, r.loadDataResidency},
		{"Server_Shared-Dedicate_Tagging", &t.SharedDedicateTagging, r.loadSharedDedicateTagging},
		{"Location_Today", &t.LocationByDCName, r.loadLocationByDCName},
	}

	for _, l := range loads {
		tbl, err := l.load()
		if err != nil {
			return nil, err
		}
		*l.dst = tbl
		r.log.Debug("lookup table loaded", "table", l.name, "rows", tbl.Len(), "columns", len(tbl.Columns))
	}

	return t, nil
}

// resolve reads the first table found among the candidate names, in
// order. Each miss is logged; the final error carries the full
// candidate list.
func (r *Registry) resolve(wb *workbook.Workbook, candidates ...string) (*table.Table, error) {
	for _, name := range candidates {
		t, err := wb.ReadTable(name)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, workbook.ErrLookupNotFound) {
			return nil, err
		}
		r.log.Warn("lookup table candidate not found", "table", name, "workbook", wb.Path())
	}
	return nil, fmt.Errorf("%w: none of [%s] in %s",
		workbook.ErrLookupNotFound, strings.Join(candidates, ", "), wb.Path())
}

func (r *Registry) loadUnderpinningDBServer() (*table.Table, error) {
	t, err := r.resolve(r.settings, "Database_server_Name")
	if err != nil {
		return nil, err
	}
	normalizeUnderpinningDBServer(t)
	return t, nil
}

func (r *Registry) loadCISettings() (*table.Table, error) {
	t, err := r.resolve(r.settings, "tabCIsettings")
	if err != nil {
		return nil, err
	}
	normalizeCISettings(t)
	return t, nil
}

func (r *Registry) loadStep0Settings() (*table.Table, error) {
	t, err := r.resolve(r.settings, "tabStepsettings")
	if err != nil {
		return nil, err
	}
	normalizeStep0Settings(t)
	return t, nil
}

func (r *Registry) loadS2T1Settings() (*table.Table, error) {
	t, err := r.resolve(r.settings, "tabS2T1settings")
	if err != nil {
		return nil, err
	}
	normalizeS2T1Settings(t)
	return t, nil
}

func (r *Registry) loadS2T2Settings() (*table.Table, error) {
	t, err := r.resolve(r.settings, "tabS2T2settings")
	if err != nil {
		return nil, err
	}
	normalizeS2T2Settings(t)
	return t, nil
}

func (r *Registry) loadS2T2TSettings() (*table.Table, error) {
	t, err := r.resolve(r.settings, "tabS2T2Tsettings")
	if err != nil {
		return nil, err
	}
	normalizeS2T2TSettings(t)
	return t, nil
}

func (r *Registry) loadNARBaseline() (*table.Table, error) {
	// The baseline report arrives as a plain sheet, not a table object.
	t, err := r.baseline.ReadSheet(r.baselineSheet)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Registry) loadEAPGridConsumers() (*table.Table, error) {
	t, err := r.resolve(r.settings, "tabEAP_Grid_Consumers")
	if err != nil {
		return nil, err
	}
	normalizeEAPGridConsumers(t)
	return t, nil
}

func (r *Registry) loadPlatformNARs() (*table.Table, error) {
	t, err := r.resolve(r.settings, "tabPlatformNARs")
	if err != nil {
		return nil, err
	}
	normalizePlatformNARs(t)
	return t, nil
}

func (r *Registry) loadScheduleV2V() (*table.Table, error) {
	t, err := r.resolve(r.schedules, "tabSchedule_V2V")
	if err != nil {
		return nil, err
	}
	normalizeScheduleV2V(t)
	return t, nil
}

func (r *Registry) loadDataResidency() (*table.Table, error) {
	t, err := r.resolve(r.settings, "Data_Residency")
	if err != nil {
		return nil, err
	}
	normalizeDataResidency(t)
	return t, nil
}

func (r *Registry) loadSharedDedicateTagging() (*table.Table, error) {
	// Some workbook versions carry the underscore spelling of the table
	// name; the dashed name is canonical.
	return r.resolve(r.settings, "Server_Shared-Dedicate_Tagging", "Server_Shared_Dedicate_Tagging")
}

func (r *Registry) loadLocationByDCName() (*table.Table, error) {
	t, err := r.resolve(r.settings, "Location_Today")
	if err != nil {
		return nil, err
	}
	normalizeLocationByDCName(t)
	return t, nil
}
