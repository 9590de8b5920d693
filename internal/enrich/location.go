package enrich

import (
	"mastermaker/internal/table"
	"mastermaker/pkg/utils"
)

// Classification labels shared by the cascades and the override
// resolver.
const (
	LabelUnknown    = "UNKNOWN"
	LabelHub        = "HUB"
	LabelCalculated = "Calculated"
	LabelManual     = "Manual"
)

// hubBuildings lists the hub data-centre buildings per country. UK and
// USA records spell their country two ways in the extract.
var hubBuildings = map[string][]string{
	"GERMANY":                  {"KRUPPSTRASSE 121 - 127 (DCB)", "LAERCHENSTRASSE 110 (DCN)"},
	"UK":                       {"CROYDON DATA CENTRE", "WATFORD DATA CENTRE"},
	"UNITED KINGDOM":           {"CROYDON DATA CENTRE", "WATFORD DATA CENTRE"},
	"USA":                      {"3 CORPORATE PLACE", "USZPK"},
	"UNITED STATES OF AMERICA": {"3 CORPORATE PLACE", "USZPK"},
	"SINGAPORE":                {"DSJ", "38 KIM CHUAN", "CAPITALAND 9 TAI SENG DRIVE"},
}

var blaupauseBuildings = []string{
	"GABLONZER STRASSE 34 (DCO)",
	"BISMARCKSTRASSE 2 (DCS)",
}

var gcpCloudZones = []string{
	"EUROPE-WEST3-ZONE-A", "EUROPE-WEST3-ZONE-B", "EUROPE-WEST3-ZONE-C",
	"EUROPE-WEST2-ZONE-A", "EUROPE-WEST2-ZONE-B", "EUROPE-WEST2-ZONE-C",
	"US-EAST4-ZONE-A", "US-EAST4-ZONE-B", "US-EAST4-ZONE-C",
}

func isHubLocation(r table.Record) bool {
	buildings, ok := hubBuildings[r.Str("COUNTRY")]
	if !ok {
		return false
	}
	return utils.In(r.Str("BUILDING"), buildings...)
}

// locationCascade derives Location_Today from country, building and the
// P4/P7 billing flag.
var locationCascade = &Cascade{
	Default: LabelUnknown,
	Rules: []Rule{
		{Label: LabelHub, When: isHubLocation},
		{Label: "Blaupause", When: allOf(
			eq("COUNTRY", "GERMANY"),
			in("BUILDING", blaupauseBuildings...),
		)},
		{Label: "GCP-Cloud", When: in("BUILDING", gcpCloudZones...)},
		{Label: "Non-Hub (non-billable)", When: allOf(
			eq("HP_P4_P7_BILLABLE", "N"),
			notIn("BUILDING", "", "None"),
		)},
		{Label: "Non-Hub (billable)", When: allOf(
			eq("HP_P4_P7_BILLABLE", "Y"),
			notIn("BUILDING", "", EmptyToken),
		)},
		{Label: "Non-Hub (billable tbc)", When: allOf(
			eq("HP_P4_P7_BILLABLE", ""),
			notIn("BUILDING", "", EmptyToken),
		)},
	},
}
