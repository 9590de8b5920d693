package enrich

import "mastermaker/internal/table"

// droppedColumns are removed from the dataset before the residency join.
// These fields ride along in the extract for other consumers and are not
// part of the reporting schema.
var droppedColumns = []string{
	"IG_ROW_UPDATE_ALLOWED", "ESTATE_MANAGEMENT_SCOPE", "REPORTING_GROUP", "SCHEDULING_RECID", "LINE_OF_BUSINESS",
	"PLANNING_ID", "TREATMENT", "TARGET_ACTUAL", "COMMENTS", "PEAKOFPEAKSCPUUSAGE", "AVGCPUUSAGE", "CORES",
	"PEAKOFPEAKSMEMPERCENTAGE", "AVGMEMPERCENTAGE", "MEMORY_GB", "TARGET_INFRA_REQUEST_DATE", "TARGET_INFRA_DELIVERY_DATE",
	"TARGET_INFRA_CUTOVER_DATE", "TARGET_INFRA_DECOM_DATE", "TARGET_DECOM_DATE_BASELINE", "BOW_YEAR", "REPLACEMENT_RFS_NO",
	"DECOM_RFS_NO", "LIFECYCLE_STATUS", "ADJUSTED_CORES", "HW_EOL_YEAR", "OS_EOL_YEAR", "DATABASE_EOL_YEAR",
	"SUPPORT_GROUP", "DATABASE_INSTANCE_COUNT", "SERVER_VIRTUAL_COUNT", "APPLICATIONCRITICALITYCLASS", "APP_PLANNED_RETIRE_DATE",
	"APP_PLAN_RETIRE_DATE_CERTIFIED", "APP_INST_INVESTMENT_STRATEGY", "APP_RECOVERY_CLASS", "APP_TECHNOLOGY_RTO",
	"MAS_INSCOPE", "MAS_CRITICAL", "REG_CRITICAL", "TRC_REG_OR_CRITICAL", "LATEST_MONTHLY_COST", "APPTIO_ASOF",
	"MIGRATION_STATUS", "TRACKER_MODIFIED_BY", "TRACKER_MODIFIED_DATE", "REMOVAL_DATE", "REMOVED_REASON",
	"EFFECTIVE_CLASSIFICATION", "DECOM_TARGET", "DLINK_TICKET_NUMBER", "DLINK_SUBMITTED_DATE", "DLINK_CLOSED_DATE", "DLINK_STATE",
	"DLINK_STAGE", "EM_FILTER_TAG", "DECOM_DATE_IS_PLACEHOLDER", "INFRA_RECEIVED_FLAG", "RELATED_ORDERS",
	"SERVER_INSTALL_DATE", "REBUILD_DATE", "SOONEST_OBSOLESCENCE_DATE", "TR_OBSOLESCENCE_DATE_HW", "TRC_OS_OBSOLESCENCE_DATE",
	"TRC_APP_TR_COMPLIANT", "TRC_CI_TR_COMPLIANT", "LEGAL_HOLD_CODE", "RECORDS_MGMT_CODE", "ARCHIVE_CERTIFICATION_CODE",
	"CLOUD_APP_DELINK_DATE", "CIRRUS_R_TYPE", "SERVICE_URL", "HOSTING_CLUSTER_NAMES", "JIRA_TEXT", "ONEMI_PRODUCT_INSTANCE_ID",
	"CWB_TYPE", "CWB_DUE_DATE", "CWB_COMMITMENT_DATE", "OTR_DECOM_TARGET_DATE", "EM_INITIATIVES_1", "HSF_REF", "OCP_VERSION",
	"OTR_MIGRATION_STATUS", "VERITAS_CI", "VENDOR_LICENSED_APPLICATION", "VENDOR_NAME", "REMOVED_CI_CIRRUS_SCOPE", "CLUSTER_ID",
	"CLUSTER_NAME", "CIO", "CI_ID", "SERVER_ID", "PARENT_SERVER", "DATABASE_ID", "REMOVED_FLAG", "APP_CI_REL_CREATED_DATE",
	"RE_INSTATEMENT_DATE", "ATC_ACTION_2026", "Project Flag", "HSF_COMMITTED_DATE", "ATC_ACTION_2025",
	"S2T1-CIO to Dispo Chase", "S2T2-CIO to Dispo Chase", "Today-L1 Grouping", "Step1-L1 Grouping", "Step2-L1 Grouping",
	"S2T1-L1 Grouping", "S2T2-L1 Grouping", "INTERIM_TARGET_PRODUCT_2025_2026", "FINAL_TARGET_PRODUCT_2028",
	"Underpinning_Server_CIs",
}

// outputOrder is the fixed presentation schema. Columns present in the
// dataset but not named here keep their discovery order and are appended
// after.
var outputOrder = []string{
	"PLANNER_UNIQUE_IDENTIFIER", "CI_CATEGORY", "PRODUCT_PORTFOLIO_NAR", "IS_ACTUAL_DATABASE_CI", "REPORTING_UNIT",
	"NAR_INSTANCE_ID", "INSTANCE_NAME", "CIO_MINUS_1", "PORTFOLIO_OWNER", "PORTFOLIO_OWNER_DELEGATE",
	"INSTANCEITA0", "INSTANCEITA0_DELEGATE", "CI_NAME", "REGION", "COUNTRY", "BUILDING", "HP_DC_NAME", "CITY",
	"SERVER_NAME", "PARENT_SERVER_NAME", "CLASSIFICATION", "SERVER_TYPE", "HOST_TYPE", "MODEL", "OPERATING_SYSTEM",
	"IN_DMZ", "KYNDRYL_CATEGORY", "DATABASE_TYPE", "DATABASE_NAME", "DB_NAME", "DB_SUBCATEGORY", "DATABASE_VERSION",
	"HP_P4_P7_BILLABLE", "GTI_INITIATIVES_2026", "APPLICATION_NAME", "HP_DB_SUPPORTED", "P4_P7_REASON",
	"S2T2T", "S2T-1", "S2T-2", "CI Summary",
	"Location_Today", "Location_Calculated", "Location_Today_DC-Name-Based", "OneMI_LOCATION_TODAY",
	"Technology_Today", "Technology_Calculated", "OneMI_TECHNOLOGY_TODAY",
	"Vendor_Today", "OneMI_VENDOR_TODAY",
	"Today Platform", "CI_REQUIRING_PLANS", "KPI_BASELINE", "KPI_AND_PLANS", "EAP/Grid Consumer",
	"Baseline Aug", "Baseline Sept", "Baseline Oct", "Baseline Nov", "Baseline Dec",
	"DISPOSITION_OPTION_STEP_1", "DISPOSITION_TIMELINE_STEP_1", "DISPOSITION_COMMENTS_STEP_1",
	"DISPOSITION_OPTION_STEP_2", "DISPOSITION_TIMELINE_STEP_2", "DISPOSITION_COMMENTS_STEP_2",
	"GTI_INITIATIVES_2025", "Anomalie YN", "AnomalieBlocker", "ChaserBlocker", "NAR_DECOM_ANOMALY",
	"S2T1-CIO to Time Chase", "S2T1-Project / Same S2T", "S2T2-CIO to Time Chase", "S2T2-Project / Same S2T",
	"CIO Chase YN", "Step1-Dispo Chase Decision", "Step2-Dispo Chase Decision", "Step1-Time Chase Decision",
	"Step2-Time Chase Decision", "NAR App Status Decom", "NAR App Planned Retirement Date",
	"CONSOLIDATED_DECOM_DATE", "CONSOLIDATED_DECOM_DATE_SOURCE", "SERVICE", "SERVICE_OFFERING", "PAAS",
	"S2T2T-Grouped", "Today-L0 Grouping", "End Step 1 Platform", "Step1-L0 Grouping", "End Step 2 Platform",
	"Step2-L0 Grouping", "S2T1-L0 Grouping", "S2T2-L0 Grouping",
	"TRC_HW_PLAN_TYPE", "TRC_HW_EARLIEST_REMEDIATION_DATE", "TRC_SW_PLAN_TYPE", "Platform_Provider",
	"TRC_SW_EARLIEST_REMEDIATION_DATE", "INITIATIVES", "PLANNED_MIGRATION_DATE", "SOURCE_MAPPING",
	"Part of Migration Initiative (P2V, P2P, V2V)", "V2V-Scope", "V2V Sub Scope",
	"V2V_Migration_Wave_Start_Date", "V2V_Migration_Wave_End_Date", "P2V Scope", "P2V Migration Plan",
	"P2P Scope", "P2P Migration Plan", "Data_Residency", "Shared\\Dedicate_Server",
}

// project arranges the finished dataset into the presentation schema.
func project(t *table.Table) {
	t.Reorder(outputOrder)
}
