package model

import (
	"strings"
	"time"
)

type ReportType string

const (
	ReportTypeDashboard   ReportType = "dashboard"
	ReportTypeInspections ReportType = "inspections"
	ReportTypeSeizures    ReportType = "seizures"
	ReportTypeLabSamples  ReportType = "lab-samples"
	ReportTypeFIRCases    ReportType = "fir-cases"
)

// ParseReportType falls back to the dashboard report for unknown or missing
// values instead of rejecting the request.
func ParseReportType(raw string) ReportType {
	switch ReportType(strings.ToLower(strings.TrimSpace(raw))) {
	case ReportTypeInspections:
		return ReportTypeInspections
	case ReportTypeSeizures:
		return ReportTypeSeizures
	case ReportTypeLabSamples:
		return ReportTypeLabSamples
	case ReportTypeFIRCases:
		return ReportTypeFIRCases
	default:
		return ReportTypeDashboard
	}
}

// ReportFilter carries the shared filter axes of every report request.
// Nil/empty fields compose as no-ops.
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Officer   string
	District  string
	Keyword   string
}
