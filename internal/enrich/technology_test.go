package enrich

import (
	"testing"

	"mastermaker/internal/table"
)

func TestTechnologyCascade(t *testing.T) {
	tests := []struct {
		name string
		rec  table.Record
		want string
	}{
		{
			name: "non-actual database wins over everything",
			rec: table.Record{
				"CI_CATEGORY": "DATABASE", "IS_ACTUAL_DATABASE_CI": "N",
				"DATABASE_TYPE": "SYBASE", "DATABASE_VERSION": "ORACLE DATABASE 19",
			},
			want: "No response required (No real Oracle DB)",
		},
		{
			name: "gcp zone building",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "BUILDING": "EUROPE-WEST3-ZONE-A"},
			want: "No response required (GCP CIs)",
		},
		{
			name: "underpinning server",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "Underpinning_Server_CIs": "Y"},
			want: "No response required (Server underpinning CI Database)",
		},
		{
			name: "paas service",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "SERVICE": "dWeb"},
			want: "PaaS",
		},
		{
			name: "sql server",
			rec: table.Record{
				"CI_CATEGORY": "DATABASE", "DATABASE_TYPE": "MICROSOFT",
				"DATABASE_VERSION": "MICROSOFT SQL SERVER 2019",
			},
			want: "SQL",
		},
		{
			name: "oracle 19",
			rec:  table.Record{"CI_CATEGORY": "DATABASE", "DATABASE_VERSION": "ORACLE RAC 19"},
			want: "Oracle 19",
		},
		{
			name: "oracle legacy",
			rec:  table.Record{"CI_CATEGORY": "DATABASE", "DATABASE_VERSION": "ORACLE DATABASE 11.2.0.4.0"},
			want: "Oracle Legacy",
		},
		{
			name: "specific service offering beats portfolio flag",
			rec: table.Record{
				"CI_CATEGORY": "SERVER", "PRODUCT_PORTFOLIO_NAR": "Y",
				"SERVICE_OFFERING": "dCloud Database Oracle - Shared",
			},
			want: "Hosting-Oracle",
		},
		{
			name: "portfolio flag alone",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "PRODUCT_PORTFOLIO_NAR": "Y"},
			want: "Hosting",
		},
		{
			name: "grid by service",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "SERVICE": "GRID"},
			want: "GRID Compute",
		},
		{
			name: "grid by offering",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "SERVICE_OFFERING": "Harvested Grid SO"},
			want: "GRID Compute",
		},
		{
			name: "aix",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "SERVER_TYPE": "AIX"},
			want: "Legacy Compute - AIX",
		},
		{
			name: "vhs service beats virtual server type",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "SERVICE": "VHS", "SERVER_TYPE": "X86_VIRTUAL"},
			want: "VHS",
		},
		{
			name: "x86 virtual by server type",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "SERVER_TYPE": "X86_VIRTUAL"},
			want: "x86 Virtual",
		},
		{
			name: "x86 virtual by host type fallback",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "HOST_TYPE": "VIRTUAL"},
			want: "x86 Virtual",
		},
		{
			name: "x86 physical excluded for portfolio servers",
			rec: table.Record{
				"CI_CATEGORY": "SERVER", "SERVER_TYPE": "X86_PHYSICAL",
				"PRODUCT_PORTFOLIO_NAR": "Y",
			},
			want: "Hosting",
		},
		{
			name: "x86 physical by host type fallback",
			rec:  table.Record{"CI_CATEGORY": "SERVER", "HOST_TYPE": "PHYSICAL"},
			want: "x86 Physical",
		},
		{
			name: "nothing matches",
			rec:  table.Record{"CI_CATEGORY": "APPLICATION"},
			want: "UNKNOWN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := technologyCascade.Evaluate(tc.rec); got != tc.want {
				t.Errorf("Technology = %q, want %q", got, tc.want)
			}
		})
	}
}
