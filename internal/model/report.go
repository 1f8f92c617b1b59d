package model

import (
	"time"

	"github.com/google/uuid"
)

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type UserCount struct {
	UserID uuid.UUID `json:"userId"`
	Count  int64     `json:"count"`
}

type EquipmentStat struct {
	Equipment string `json:"equipment"`
	Count     int64  `json:"count"`
}

type CompanyCount struct {
	Company string `json:"company"`
	Count   int64  `json:"count"`
}

type DestinationCount struct {
	LabDestination string `json:"labDestination"`
	Count          int64  `json:"count"`
}

type ResultCount struct {
	LabResult string `json:"labResult"`
	Count     int64  `json:"count"`
}

type ViolationTypeCount struct {
	ViolationType string `json:"violationType"`
	Count         int64  `json:"count"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

type InspectionsReport struct {
	Inspections     []InspectionTask `json:"inspections"`
	StatusBreakdown []StatusCount    `json:"statusBreakdown"`
	UserBreakdown   []UserCount      `json:"userBreakdown"`
	EquipmentStats  []EquipmentStat  `json:"equipmentStats"`
}

type ValueAnalysis struct {
	Sum   float64 `json:"sum"`
	Avg   float64 `json:"avg"`
	Count int64   `json:"count"`
}

type SeizuresReport struct {
	Seizures         []Seizure      `json:"seizures"`
	StatusBreakdown  []StatusCount  `json:"statusBreakdown"`
	CompanyBreakdown []CompanyCount `json:"companyBreakdown"`
	ValueAnalysis    ValueAnalysis  `json:"valueAnalysis"`
}

type LabSampleAnalytics struct {
	AvgCompletionTimeHours float64 `json:"avgCompletionTimeHours"`
	CompletionRate         float64 `json:"completionRate"`
}

type LabSamplesReport struct {
	LabSamples              []LabSample        `json:"labSamples"`
	StatusBreakdown         []StatusCount      `json:"statusBreakdown"`
	LabDestinationBreakdown []DestinationCount `json:"labDestinationBreakdown"`
	ResultBreakdown         []ResultCount      `json:"resultBreakdown"`
	Analytics               LabSampleAnalytics `json:"analytics"`
}

type FIRCaseAnalytics struct {
	AvgResolutionTimeDays float64 `json:"avgResolutionTimeDays"`
	ResolutionRate        float64 `json:"resolutionRate"`
}

type FIRCasesReport struct {
	FIRCases           []FIRCase            `json:"firCases"`
	StatusBreakdown    []StatusCount        `json:"statusBreakdown"`
	ViolationBreakdown []ViolationTypeCount `json:"violationBreakdown"`
	LocationBreakdown  []LocationCount      `json:"locationBreakdown"`
	Analytics          FIRCaseAnalytics     `json:"analytics"`
}

type DashboardSummary struct {
	TotalInspections int64 `json:"totalInspections"`
	TotalSeizures    int64 `json:"totalSeizures"`
	TotalLabSamples  int64 `json:"totalLabSamples"`
	TotalFIRCases    int64 `json:"totalFIRCases"`
}

type DashboardStatusBreakdown struct {
	Inspections []StatusCount `json:"inspections"`
	Seizures    []StatusCount `json:"seizures"`
	LabSamples  []StatusCount `json:"labSamples"`
	FIRCases    []StatusCount `json:"firCases"`
}

// OfficerRank attaches the resolved user record to an inspection count.
// User stays nil when the referenced user no longer exists.
type OfficerRank struct {
	UserID uuid.UUID `json:"userId"`
	Count  int64     `json:"count"`
	User   *User     `json:"user"`
}

type DistrictRank struct {
	Location string `json:"location"`
	Count    int64  `json:"count"`
}

type DashboardReport struct {
	Summary         DashboardSummary         `json:"summary"`
	StatusBreakdown DashboardStatusBreakdown `json:"statusBreakdown"`
	RecentActivity  []AuditLog               `json:"recentActivity"`
	TopOfficers     []OfficerRank            `json:"topOfficers"`
	TopDistricts    []DistrictRank           `json:"topDistricts"`
}

type DashboardOverview struct {
	TotalInspections  int64   `json:"totalInspections"`
	TotalSeizures     int64   `json:"totalSeizures"`
	TotalFIRCases     int64   `json:"totalFirCases"`
	TotalLabSamples   int64   `json:"totalLabSamples"`
	ActiveSeizures    int64   `json:"activeSeizures"`
	PendingLabSamples int64   `json:"pendingLabSamples"`
	ActiveFIRCases    int64   `json:"activeFirCases"`
	ComplianceRate    float64 `json:"complianceRate"`
}

type TrendMetric struct {
	Current int64  `json:"current"`
	Recent  int64  `json:"recent"`
	Change  string `json:"change"`
}

type DashboardTrends struct {
	Inspections TrendMetric `json:"inspections"`
	Seizures    TrendMetric `json:"seizures"`
	FIRCases    TrendMetric `json:"firCases"`
	LabSamples  TrendMetric `json:"labSamples"`
}

type DashboardStatusMaps struct {
	Inspections map[string]int64 `json:"inspections"`
	Seizures    map[string]int64 `json:"seizures"`
	FIRCases    map[string]int64 `json:"firCases"`
	LabSamples  map[string]int64 `json:"labSamples"`
}

type DashboardStats struct {
	Overview        DashboardOverview   `json:"overview"`
	StatusBreakdown DashboardStatusMaps `json:"statusBreakdown"`
	Trends          DashboardTrends     `json:"trends"`
}

// RecordSnapshot is the thin projection the dashboard-stats trends work with.
type RecordSnapshot struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Status    string    `json:"status"`
}
