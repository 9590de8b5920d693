package enrich

// vendorCascade derives Vendor_Today from the model and operating
// system text. Substring checks are case-sensitive against the handful
// of literal spellings the sources use; absent fields read as empty and
// simply never match.
var vendorCascade = &Cascade{
	Default: ZeroEmptyToken,
	Rules: []Rule{
		{Label: "Oracle", When: allOf(
			eq("CI_CATEGORY", "DATABASE"),
			contains("MODEL", "ORACLE", "Oracle"),
		)},
		{Label: "Microsoft", When: allOf(
			eq("CI_CATEGORY", "DATABASE"),
			contains("MODEL", "MICROSOFT"),
		)},
		{Label: "Oracle", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			contains("OPERATING_SYSTEM", "ORACLE", "Oracle"),
		)},
		{Label: "Microsoft", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			contains("OPERATING_SYSTEM", "WINDOWS SERVER", "Windows Server"),
		)},
		{Label: "RedHat", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			contains("OPERATING_SYSTEM", "REDHAT", "Red Hat"),
		)},
		{Label: "SUSE Linux", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			contains("OPERATING_SYSTEM", "SLES"),
		)},
		{Label: "VMware", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			contains("OPERATING_SYSTEM", "VMWARE ESXI"),
		)},
	},
}

// v2vSubScopeCascade derives the V2V sub scope for virtual hosts in hub
// locations, keyed on the hardware model family.
var v2vSubScopeCascade = &Cascade{
	Default: ZeroEmptyToken,
	Rules: []Rule{
		{Label: "VHS on C7000", When: allOf(
			eq("HOST_TYPE", "VIRTUAL"),
			eq("HUB_LOCATION", "Y"),
			contains("MODEL", "PROLIANT DL6", "PROLIANT BL4"),
		)},
		{Label: "VHS on Synergy", When: allOf(
			eq("HOST_TYPE", "VIRTUAL"),
			eq("HUB_LOCATION", "Y"),
			contains("MODEL", "SY480"),
		)},
	},
}
