package model

import (
	"testing"
)

func TestParseReportType(t *testing.T) {
	testCases := []struct {
		raw  string
		want ReportType
	}{
		{raw: "inspections", want: ReportTypeInspections},
		{raw: "seizures", want: ReportTypeSeizures},
		{raw: "lab-samples", want: ReportTypeLabSamples},
		{raw: "fir-cases", want: ReportTypeFIRCases},
		{raw: "dashboard", want: ReportTypeDashboard},
		{raw: "  Inspections ", want: ReportTypeInspections},
		{raw: "", want: ReportTypeDashboard},
		{raw: "bogus", want: ReportTypeDashboard},
	}

	for _, tc := range testCases {
		if got := ParseReportType(tc.raw); got != tc.want {
			t.Errorf("ParseReportType(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}
