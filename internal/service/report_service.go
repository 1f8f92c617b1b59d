package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"agrishield-service/internal/model"
	"agrishield-service/internal/repository"
)

type ReportService struct {
	reports           *repository.ReportRepository
	audit             *repository.AuditRepository
	topLimit          int
	recentLimit       int
	defaultPeriodDays int
}

func NewReportService(reports *repository.ReportRepository, audit *repository.AuditRepository, topLimit, recentLimit, defaultPeriodDays int) *ReportService {
	return &ReportService{
		reports:           reports,
		audit:             audit,
		topLimit:          topLimit,
		recentLimit:       recentLimit,
		defaultPeriodDays: defaultPeriodDays,
	}
}

// BuildReport dispatches to the builder matching the requested type. Unknown
// types already collapsed to the dashboard during parsing.
func (s *ReportService) BuildReport(ctx context.Context, reportType model.ReportType, f model.ReportFilter) (interface{}, error) {
	switch reportType {
	case model.ReportTypeInspections:
		return s.InspectionsReport(ctx, f)
	case model.ReportTypeSeizures:
		return s.SeizuresReport(ctx, f)
	case model.ReportTypeLabSamples:
		return s.LabSamplesReport(ctx, f)
	case model.ReportTypeFIRCases:
		return s.FIRCasesReport(ctx, f)
	default:
		return s.DashboardReport(ctx, f)
	}
}

// Every builder fans its store queries out concurrently and joins before the
// in-memory analytics pass. A single failed query fails the whole report.

func (s *ReportService) InspectionsReport(ctx context.Context, f model.ReportFilter) (*model.InspectionsReport, error) {
	var (
		records       []model.InspectionTask
		statuses      []model.StatusCount
		userBreakdown []model.UserCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.reports.ListInspections(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.reports.InspectionStatusBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		userBreakdown, err = s.reports.InspectionUserBreakdown(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.InspectionsReport{
		Inspections:     records,
		StatusBreakdown: statuses,
		UserBreakdown:   userBreakdown,
		EquipmentStats:  equipmentStats(records),
	}, nil
}

func (s *ReportService) SeizuresReport(ctx context.Context, f model.ReportFilter) (*model.SeizuresReport, error) {
	var (
		records   []model.Seizure
		statuses  []model.StatusCount
		companies []model.CompanyCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.reports.ListSeizures(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.reports.SeizureStatusBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		companies, err = s.reports.SeizureCompanyBreakdown(gctx, f, 10)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.SeizuresReport{
		Seizures:         records,
		StatusBreakdown:  statuses,
		CompanyBreakdown: companies,
		ValueAnalysis:    valueAnalysis(records),
	}, nil
}

func (s *ReportService) LabSamplesReport(ctx context.Context, f model.ReportFilter) (*model.LabSamplesReport, error) {
	var (
		records      []model.LabSample
		statuses     []model.StatusCount
		destinations []model.DestinationCount
		results      []model.ResultCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.reports.ListLabSamples(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.reports.LabSampleStatusBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		destinations, err = s.reports.LabDestinationBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = s.reports.LabResultBreakdown(gctx, f)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.LabSamplesReport{
		LabSamples:              records,
		StatusBreakdown:         statuses,
		LabDestinationBreakdown: destinations,
		ResultBreakdown:         results,
		Analytics:               labSampleAnalytics(records),
	}, nil
}

func (s *ReportService) FIRCasesReport(ctx context.Context, f model.ReportFilter) (*model.FIRCasesReport, error) {
	var (
		records    []model.FIRCase
		statuses   []model.StatusCount
		violations []model.ViolationTypeCount
		locations  []model.LocationCount
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.reports.ListFIRCases(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		statuses, err = s.reports.FIRCaseStatusBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		violations, err = s.reports.FIRViolationBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		locations, err = s.reports.FIRLocationBreakdown(gctx, f, 10)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.FIRCasesReport{
		FIRCases:           records,
		StatusBreakdown:    statuses,
		ViolationBreakdown: violations,
		LocationBreakdown:  locations,
		Analytics:          firCaseAnalytics(records),
	}, nil
}

func (s *ReportService) DashboardReport(ctx context.Context, f model.ReportFilter) (*model.DashboardReport, error) {
	var (
		summary        model.DashboardSummary
		breakdown      model.DashboardStatusBreakdown
		recentActivity []model.AuditLog
		topOfficers    []model.UserCount
		topDistricts   []model.DistrictRank
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.TotalInspections, err = s.reports.CountInspections(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		summary.TotalSeizures, err = s.reports.CountSeizures(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		summary.TotalLabSamples, err = s.reports.CountLabSamples(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		summary.TotalFIRCases, err = s.reports.CountFIRCases(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		breakdown.Inspections, err = s.reports.InspectionStatusBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		breakdown.Seizures, err = s.reports.SeizureStatusBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		breakdown.LabSamples, err = s.reports.LabSampleStatusBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		breakdown.FIRCases, err = s.reports.FIRCaseStatusBreakdown(gctx, f)
		return err
	})
	g.Go(func() error {
		var err error
		recentActivity, err = s.audit.RecentActivity(gctx, f, s.recentLimit)
		return err
	})
	g.Go(func() error {
		var err error
		topOfficers, err = s.reports.TopOfficers(gctx, f, s.topLimit)
		return err
	})
	g.Go(func() error {
		var err error
		topDistricts, err = s.reports.TopDistricts(gctx, f, s.topLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	officers, err := s.resolveOfficers(ctx, topOfficers)
	if err != nil {
		return nil, err
	}

	return &model.DashboardReport{
		Summary:         summary,
		StatusBreakdown: breakdown,
		RecentActivity:  recentActivity,
		TopOfficers:     officers,
		TopDistricts:    topDistricts,
	}, nil
}

// resolveOfficers attaches user records to the ranked counts.
func (s *ReportService) resolveOfficers(ctx context.Context, ranks []model.UserCount) ([]model.OfficerRank, error) {
	ids := make([]uuid.UUID, 0, len(ranks))
	for _, rank := range ranks {
		ids = append(ids, rank.UserID)
	}

	users, err := s.reports.UsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return attachOfficerUsers(ranks, users), nil
}

// attachOfficerUsers pairs ranked counts with their user records. A ranking
// whose user has since been deleted keeps a nil user instead of failing.
func attachOfficerUsers(ranks []model.UserCount, users []model.User) []model.OfficerRank {
	byID := make(map[uuid.UUID]model.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}

	result := make([]model.OfficerRank, 0, len(ranks))
	for _, rank := range ranks {
		officer := model.OfficerRank{UserID: rank.UserID, Count: rank.Count}
		if user, ok := byID[rank.UserID]; ok {
			u := user
			officer.User = &u
		}
		result = append(result, officer)
	}
	return result
}

// DashboardStats powers the overview endpoint: unfiltered totals, open-item
// counts, status maps and trailing-week trends over the requested period.
func (s *ReportService) DashboardStats(ctx context.Context, periodDays int) (*model.DashboardStats, error) {
	if periodDays <= 0 {
		periodDays = s.defaultPeriodDays
	}
	now := time.Now()
	since := now.AddDate(0, 0, -periodDays)
	none := model.ReportFilter{}

	var (
		overview          model.DashboardOverview
		inspectionRows    []model.StatusCount
		seizureRows       []model.StatusCount
		firRows           []model.StatusCount
		labRows           []model.StatusCount
		recentInspections []model.RecordSnapshot
		recentSeizures    []model.RecordSnapshot
		recentFIRCases    []model.RecordSnapshot
		recentLabSamples  []model.RecordSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overview.TotalInspections, err = s.reports.CountInspections(gctx, none)
		return err
	})
	g.Go(func() error {
		var err error
		overview.TotalSeizures, err = s.reports.CountSeizures(gctx, none)
		return err
	})
	g.Go(func() error {
		var err error
		overview.TotalFIRCases, err = s.reports.CountFIRCases(gctx, none)
		return err
	})
	g.Go(func() error {
		var err error
		overview.TotalLabSamples, err = s.reports.CountLabSamples(gctx, none)
		return err
	})
	g.Go(func() error {
		var err error
		overview.ActiveSeizures, err = s.reports.ActiveSeizureCount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		overview.PendingLabSamples, err = s.reports.PendingLabSampleCount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		overview.ActiveFIRCases, err = s.reports.ActiveFIRCaseCount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recentInspections, err = s.reports.RecentInspections(gctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		recentSeizures, err = s.reports.RecentSeizures(gctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		recentFIRCases, err = s.reports.RecentFIRCases(gctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		recentLabSamples, err = s.reports.RecentLabSamples(gctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		inspectionRows, err = s.reports.InspectionStatusBreakdown(gctx, none)
		return err
	})
	g.Go(func() error {
		var err error
		seizureRows, err = s.reports.SeizureStatusBreakdown(gctx, none)
		return err
	})
	g.Go(func() error {
		var err error
		firRows, err = s.reports.FIRCaseStatusBreakdown(gctx, none)
		return err
	})
	g.Go(func() error {
		var err error
		labRows, err = s.reports.LabSampleStatusBreakdown(gctx, none)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	overview.ComplianceRate = complianceRate(recentInspections)

	return &model.DashboardStats{
		Overview: overview,
		StatusBreakdown: model.DashboardStatusMaps{
			Inspections: statusCountMap(inspectionRows),
			Seizures:    statusCountMap(seizureRows),
			FIRCases:    statusCountMap(firRows),
			LabSamples:  statusCountMap(labRows),
		},
		Trends: model.DashboardTrends{
			Inspections: trendMetric(overview.TotalInspections, recentInspections, now),
			Seizures:    trendMetric(overview.TotalSeizures, recentSeizures, now),
			FIRCases:    trendMetric(overview.TotalFIRCases, recentFIRCases, now),
			LabSamples:  trendMetric(overview.TotalLabSamples, recentLabSamples, now),
		},
	}, nil
}
