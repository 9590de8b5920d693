package enrich

// technologyCascade derives Technology_Today. The rule order is
// load-bearing: database-type rules run before server-type rules, and
// specific service offerings must match before the generic portfolio,
// server-type and host-type fallbacks, because a record can satisfy
// several of these predicates at once.
var technologyCascade = &Cascade{
	Default: LabelUnknown,
	Rules: []Rule{
		{Label: "No response required (No real Oracle DB)", When: allOf(
			eq("CI_CATEGORY", "DATABASE"),
			eq("IS_ACTUAL_DATABASE_CI", "N"),
		)},
		{Label: "No response required (GCP CIs)", When: contains("BUILDING", "ZONE")},
		{Label: "No response required (Server underpinning CI Database)", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("Underpinning_Server_CIs", "Y"),
		)},
		{Label: "PaaS", When: in("SERVICE", "DAP", "dWeb", "Fabric")},
		{Label: "SQL", When: allOf(
			eq("CI_CATEGORY", "DATABASE"),
			eq("DATABASE_TYPE", "MICROSOFT"),
			contains("DATABASE_VERSION", "MICROSOFT SQL SERVER"),
		)},
		{Label: "Sybase", When: allOf(
			eq("CI_CATEGORY", "DATABASE"),
			eq("DATABASE_TYPE", "SYBASE"),
		)},
		{Label: "SAP", When: allOf(
			eq("CI_CATEGORY", "DATABASE"),
			eq("DATABASE_TYPE", "SAP"),
			in("DATABASE_VERSION", "SAP HANA ENTERPRISE EDITION", "SAP REPLICATION SERVER 16.0"),
		)},
		{Label: "Oracle 19", When: allOf(
			eq("CI_CATEGORY", "DATABASE"),
			in("DATABASE_VERSION", "ORACLE DATABASE 19", "ORACLE RAC 19", "ORACLE GRID 19"),
		)},
		{Label: "Oracle Legacy", When: allOf(
			eq("CI_CATEGORY", "DATABASE"),
			in("DATABASE_VERSION",
				"ORACLE DATABASE 10.2.0.5.0",
				"ORACLE DATABASE 11.2.0.3.0",
				"ORACLE DATABASE 11.2.0.4.0",
				"ORACLE DATABASE 12.1.0.2.0",
				"ORACLE DATABASE 12.2.0.1",
				"ORACLE RAC 11.2.0.4.0",
				"ORACLE GRID INFRASTRUCTURE 12.1.0.2.0",
				"ORACLE DATABASE 18",
			),
		)},
		{Label: "Hosting - PaaS", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			in("INSTANCE_NAME",
				"DAP-GRLOBAL",
				"dWEB-GRLOBAL",
				"FABRIC-GLOBAL",
				"EAP-tools",
				"EAP-UK-Big Data Platform",
				"EAP-DE-Big Data Platform",
			),
		)},
		{Label: "Hosting-Oracle", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			in("SERVICE_OFFERING",
				"dCloud Database Oracle - Premium",
				"dCloud Database Oracle - Shared",
				"ODA - OFBA|ODA - OFBB",
				"ODA - OFBA",
				"ODA - OFBB",
			),
		)},
		{Label: "Hosting", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("PRODUCT_PORTFOLIO_NAR", "Y"),
		)},
		{Label: "Standalone Exa", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("SERVICE_OFFERING", "EXADATA SHARED SERVICE"),
		)},
		{Label: "Hadoop", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			in("SERVICE_OFFERING", "HADOOP SHARED SERVICE", "HADOOP SHARED SERVICE|Harvested Grid SO"),
		)},
		{Label: "GRID Compute", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			anyOf(
				eq("SERVICE", "GRID"),
				in("SERVICE_OFFERING", "Native Grid SO", "Harvested Grid SO"),
			),
		)},
		{Label: "Legacy Compute - AIX", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("SERVER_TYPE", "AIX"),
		)},
		{Label: "Legacy Compute - SPARC", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("SERVER_TYPE", "SPARC"),
		)},
		{Label: "VHS", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("SERVICE", "VHS"),
		)},
		{Label: "x86 Virtual", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("SERVER_TYPE", "X86_VIRTUAL"),
			notIn("SERVICE", "VHS"),
		)},
		{Label: "x86 Virtual", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("HOST_TYPE", "VIRTUAL"),
		)},
		{Label: "x86 Physical", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("SERVER_TYPE", "X86_PHYSICAL"),
			notIn("PRODUCT_PORTFOLIO_NAR", "Y"),
		)},
		{Label: "x86 Physical", When: allOf(
			eq("CI_CATEGORY", "SERVER"),
			eq("HOST_TYPE", "PHYSICAL"),
		)},
	},
}
