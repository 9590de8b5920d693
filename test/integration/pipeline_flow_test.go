package integration

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"mastermaker/internal/config"
	"mastermaker/internal/enrich"
	"mastermaker/internal/logger"
	"mastermaker/internal/lookup"
	"mastermaker/internal/workbook"
)

// addTable writes rows onto a dedicated sheet and declares them as a
// named Excel table object, the way the reference workbooks expose
// their lookup data.
func addTable(t *testing.T, f *excelize.File, name string, rows [][]interface{}) {
	t.Helper()

	if _, err := f.NewSheet(name); err != nil {
		t.Fatalf("NewSheet(%s): %v", name, err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			t.Fatalf("SetSheetRow(%s): %v", name, err)
		}
	}
	end, err := excelize.CoordinatesToCellName(len(rows[0]), len(rows))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.AddTable(name, &excelize.Table{Range: "A1:" + end, Name: name}); err != nil {
		t.Fatalf("AddTable(%s): %v", name, err)
	}
}

func writeSettingsWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	addTable(t, f, "tabCIsettings", [][]interface{}{
		{"PLANNER_UNIQUE_IDENTIFIER", "CI Summary", "Location Manually", "Technology Manually", "ChaserBlocker"},
		{"p1", "Tracked CI", "", "", ""},
	})
	addTable(t, f, "tabStepsettings", [][]interface{}{
		{"Technology Today", "Today Platform"},
		{"x86 Virtual", "Virtual Compute"},
	})
	addTable(t, f, "tabStep1settings", [][]interface{}{
		{"DISPOSITION_OPTION_STEP_1", "End Step 1 Platform"},
		{"@_EMPTY", "Undecided"},
	})
	addTable(t, f, "tabStep2settings", [][]interface{}{
		{"DISPOSITION_OPTION_STEP_2", "End Step 2 Platform"},
		{"@_EMPTY", "Undecided"},
	})
	addTable(t, f, "tabS2T1settings", [][]interface{}{
		{"S2T1", "Dispo Chase", "S2T1-CIO to Time Chase"},
		{"@_EMPTY", "YES", "YES"},
	})
	addTable(t, f, "tabS2T2settings", [][]interface{}{
		{"S2T2", "Dispo Chase", "S2T2-CIO to Time Chase"},
		{"@_EMPTY_@_EMPTY", "YES", "YES"},
	})
	addTable(t, f, "tabS2T2Tsettings", [][]interface{}{
		{"S2T2T", "CIO Decision"},
		{"Tracked CI_@_EMPTY_@_EMPTY", "YES"},
	})
	addTable(t, f, "tabEAP_Grid_Consumers", [][]interface{}{
		{"NAR ID", "Status"},
		{"nar1", "Yes"},
	})
	addTable(t, f, "tabPlatformNARs", [][]interface{}{
		{"NAR ID", "ReturnValue"},
		{"nar1", "yes"},
	})
	addTable(t, f, "Data_Residency", [][]interface{}{
		{"NAR-ID", "Data Residency"},
		{"nar1", "Germany"},
	})
	addTable(t, f, "Database_server_Name", [][]interface{}{
		{"SERVER_NAME", "Underpinning_Server_CIs"},
		{"other-server", "Y"},
	})
	addTable(t, f, "Location_Today", [][]interface{}{
		{"HP_DC_NAME", "Location_Today"},
		{"DCB", "HUB"},
	})
	// Only the underscore spelling exists here, so loading exercises
	// the documented fallback alias.
	addTable(t, f, "Server_Shared_Dedicate_Tagging", [][]interface{}{
		{"SERVER_NAME", "SharedDedicated_Server"},
		{"srv1", "Shared"},
	})

	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func writeSchedulesWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	addTable(t, f, "tabSchedule_V2V", [][]interface{}{
		{"Full_Server_Name", "Country", "Migration wave"},
		{"srv1", "Germany", "Wave 2"},
	})
	addTable(t, f, "tabSchedule_P2V", [][]interface{}{
		{"SERVER_NAME", "P2V Scope"},
		{"unmatched", "x"},
	})
	addTable(t, f, "tabSchedule_P2P", [][]interface{}{
		{"SERVER_NAME", "P2P Scope"},
		{"unmatched", "x"},
	})

	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func writeBaselineWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := "NAR_ReportBaseLine"
	if _, err := f.NewSheet(sheet); err != nil {
		t.Fatal(err)
	}
	rows := [][]interface{}{
		{"NAR ID", "Certified Decom Candidate", "Instance Planned Retirement Date"},
		{"nar1", "Yes", "2027-12-31"},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func writeSourceWorkbook(t *testing.T, path string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows := [][]interface{}{
		{"PLANNER_UNIQUE_IDENTIFIER", "CI_CATEGORY", "SERVER_NAME", "COUNTRY", "BUILDING",
			"SERVER_TYPE", "HOST_TYPE", "MODEL", "OPERATING_SYSTEM", "NAR_INSTANCE_ID",
			"HP_DC_NAME", "DISPOSITION_OPTION_STEP_1", "DISPOSITION_OPTION_STEP_2"},
		{"p1", "SERVER", "srv1", "GERMANY", "KRUPPSTRASSE 121 - 127 (DCB)",
			"X86_VIRTUAL", "VIRTUAL", "HPE PROLIANT DL6XX", "Red Hat Enterprise Linux 9", "nar1",
			"DCB", "", ""},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
}

func TestPipelineFlow(t *testing.T) {
	dir := t.TempDir()
	settingsPath := filepath.Join(dir, "Settings.xlsx")
	schedulesPath := filepath.Join(dir, "Schedules.xlsx")
	baselinePath := filepath.Join(dir, "NAR_ReportBaseLine.xlsx")
	sourcePath := filepath.Join(dir, "VW_ONEMI_ESTATE_MANAGEMENT_20250601.xlsx")
	outputPath := filepath.Join(dir, "out", "estate.xlsx")

	writeSettingsWorkbook(t, settingsPath)
	writeSchedulesWorkbook(t, schedulesPath)
	writeBaselineWorkbook(t, baselinePath)
	writeSourceWorkbook(t, sourcePath)

	log := logger.Discard()

	selected, err := workbook.LatestMatching(dir, "VW_ONEMI_ESTATE_MANAGEMENT_")
	if err != nil {
		t.Fatalf("LatestMatching: %v", err)
	}
	if selected != sourcePath {
		t.Fatalf("selected %q, want %q", selected, sourcePath)
	}

	src, err := workbook.Open(selected)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	records, err := src.ReadSheet("Sheet1")
	src.Close()
	if err != nil {
		t.Fatalf("ReadSheet: %v", err)
	}

	registry, err := lookup.NewRegistry(config.LookupsConfig{
		SettingsPath:  settingsPath,
		SchedulesPath: schedulesPath,
		BaselinePath:  baselinePath,
		BaselineSheet: "NAR_ReportBaseLine",
	}, log)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	lookups, err := registry.LoadAll()
	registry.Close()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}

	result, stats := enrich.NewPipeline(log).Run(records, lookups)

	if result.Len() != 1 {
		t.Fatalf("result rows = %d, want 1", result.Len())
	}

	r := result.Rows[0]
	checks := map[string]string{
		"Location_Today":                  "HUB",
		"Location_Calculated":             "Calculated",
		"Technology_Today":                "x86 Virtual",
		"Vendor_Today":                    "RedHat",
		"V2V Sub Scope":                   "VHS on C7000",
		"Today Platform":                  "Virtual Compute",
		"CI Summary":                      "Tracked CI",
		"EAP/Grid Consumer":               "Yes",
		"Platform_Provider":               "Yes",
		"NAR App Status Decom":            "Yes",
		"Data_Residency":                  "Germany",
		"Shared\\Dedicate_Server":         "Shared",
		"Location_Today_DC-Name-Based":    "HUB",
		"V2V-Scope":                       "Wave 2",
		"Step1-Dispo Chase Decision":      "filled",
		"Part of Migration Initiative (P2V, P2P, V2V)": "Yes",
	}
	for col, want := range checks {
		if got := r.Str(col); got != want {
			t.Errorf("%s = %q, want %q", col, got, want)
		}
	}

	if err := workbook.WriteTable(outputPath, "Estate", result); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	wb, err := workbook.Open(outputPath)
	if err != nil {
		t.Fatalf("Open output: %v", err)
	}
	defer wb.Close()
	written, err := wb.ReadSheet("Estate")
	if err != nil {
		t.Fatalf("ReadSheet output: %v", err)
	}
	if written.Len() != result.Len() {
		t.Errorf("written rows = %d, want %d", written.Len(), result.Len())
	}
	if stats.RowsOut != result.Len() {
		t.Errorf("stats.RowsOut = %d, want %d", stats.RowsOut, result.Len())
	}
}
