package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrishield-service/internal/model"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func selectUserSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "role")
}

func selectRecordSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "status", "seizure_id", "user_id", "created_at")
}

// inspectionQuery composes every filter axis that applies to inspections.
func (r *ReportRepository) inspectionQuery(ctx context.Context, f model.ReportFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.InspectionTask{})
	query = applyDateFilter(query, f)
	query = applyUserFilter(r.db, query, f.Officer)
	query = applyLocationFilter(query, f.District)
	return applyKeywordFilter(r.db, query, entityInspections, f.Keyword)
}

func (r *ReportRepository) seizureQuery(ctx context.Context, f model.ReportFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.Seizure{})
	query = applyDateFilter(query, f)
	query = applyUserFilter(r.db, query, f.Officer)
	return applyKeywordFilter(r.db, query, entitySeizures, f.Keyword)
}

func (r *ReportRepository) labSampleQuery(ctx context.Context, f model.ReportFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.LabSample{})
	query = applyDateFilter(query, f)
	query = applyUserFilter(r.db, query, f.Officer)
	return applyKeywordFilter(r.db, query, entityLabSamples, f.Keyword)
}

func (r *ReportRepository) firCaseQuery(ctx context.Context, f model.ReportFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&model.FIRCase{})
	query = applyDateFilter(query, f)
	query = applyUserFilter(r.db, query, f.Officer)
	query = applyLocationFilter(query, f.District)
	return applyKeywordFilter(r.db, query, entityFIRCases, f.Keyword)
}

func (r *ReportRepository) ListInspections(ctx context.Context, f model.ReportFilter) ([]model.InspectionTask, error) {
	var records []model.InspectionTask
	err := r.inspectionQuery(ctx, f).
		Preload("User", selectUserSummary).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *ReportRepository) ListSeizures(ctx context.Context, f model.ReportFilter) ([]model.Seizure, error) {
	var records []model.Seizure
	err := r.seizureQuery(ctx, f).
		Preload("User", selectUserSummary).
		Preload("ScanResult").
		Preload("LabSamples", selectRecordSummary).
		Preload("FIRCases", selectRecordSummary).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *ReportRepository) ListLabSamples(ctx context.Context, f model.ReportFilter) ([]model.LabSample, error) {
	var records []model.LabSample
	err := r.labSampleQuery(ctx, f).
		Preload("User", selectUserSummary).
		Preload("Seizure.ScanResult").
		Preload("FIRCases", selectRecordSummary).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *ReportRepository) ListFIRCases(ctx context.Context, f model.ReportFilter) ([]model.FIRCase, error) {
	var records []model.FIRCase
	err := r.firCaseQuery(ctx, f).
		Preload("User", selectUserSummary).
		Preload("Seizure.ScanResult").
		Preload("LabSample", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "sample_type", "status", "seizure_id")
		}).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *ReportRepository) CountInspections(ctx context.Context, f model.ReportFilter) (int64, error) {
	var count int64
	err := r.inspectionQuery(ctx, f).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountSeizures(ctx context.Context, f model.ReportFilter) (int64, error) {
	var count int64
	err := r.seizureQuery(ctx, f).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountLabSamples(ctx context.Context, f model.ReportFilter) (int64, error) {
	var count int64
	err := r.labSampleQuery(ctx, f).Count(&count).Error
	return count, err
}

func (r *ReportRepository) CountFIRCases(ctx context.Context, f model.ReportFilter) (int64, error) {
	var count int64
	err := r.firCaseQuery(ctx, f).Count(&count).Error
	return count, err
}

func statusBreakdown(query *gorm.DB) ([]model.StatusCount, error) {
	var rows []model.StatusCount
	err := query.Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) InspectionStatusBreakdown(ctx context.Context, f model.ReportFilter) ([]model.StatusCount, error) {
	return statusBreakdown(r.inspectionQuery(ctx, f))
}

func (r *ReportRepository) SeizureStatusBreakdown(ctx context.Context, f model.ReportFilter) ([]model.StatusCount, error) {
	return statusBreakdown(r.seizureQuery(ctx, f))
}

func (r *ReportRepository) LabSampleStatusBreakdown(ctx context.Context, f model.ReportFilter) ([]model.StatusCount, error) {
	return statusBreakdown(r.labSampleQuery(ctx, f))
}

func (r *ReportRepository) FIRCaseStatusBreakdown(ctx context.Context, f model.ReportFilter) ([]model.StatusCount, error) {
	return statusBreakdown(r.firCaseQuery(ctx, f))
}

// InspectionUserBreakdown counts inspections per owning user. The officer axis
// is deliberately not applied here: the breakdown is meant to compare officers
// against each other under the remaining filters.
func (r *ReportRepository) InspectionUserBreakdown(ctx context.Context, f model.ReportFilter) ([]model.UserCount, error) {
	query := r.db.WithContext(ctx).Model(&model.InspectionTask{})
	query = applyDateFilter(query, f)
	query = applyLocationFilter(query, f.District)
	query = applyKeywordFilter(r.db, query, entityInspections, f.Keyword)

	var rows []model.UserCount
	err := query.Select("user_id, COUNT(*) AS count").Group("user_id").Scan(&rows).Error
	return rows, err
}

// SeizureCompanyBreakdown groups the scan results of matching seizures by
// company, most frequent first.
func (r *ReportRepository) SeizureCompanyBreakdown(ctx context.Context, f model.ReportFilter, limit int) ([]model.CompanyCount, error) {
	matching := r.db.Model(&model.Seizure{}).Select("scan_result_id")
	matching = applyDateFilter(matching, f)
	matching = applyUserFilter(r.db, matching, f.Officer)

	var rows []model.CompanyCount
	err := r.db.WithContext(ctx).
		Table("scan_results").
		Select("company, COUNT(*) AS count").
		Where("id IN (?)", matching).
		Group("company").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) LabDestinationBreakdown(ctx context.Context, f model.ReportFilter) ([]model.DestinationCount, error) {
	var rows []model.DestinationCount
	err := r.labSampleQuery(ctx, f).
		Select("lab_destination, COUNT(*) AS count").
		Group("lab_destination").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) LabResultBreakdown(ctx context.Context, f model.ReportFilter) ([]model.ResultCount, error) {
	query := r.db.WithContext(ctx).Model(&model.LabSample{})
	query = applyDateFilter(query, f)
	query = applyUserFilter(r.db, query, f.Officer)

	var rows []model.ResultCount
	err := query.
		Select("lab_result, COUNT(*) AS count").
		Where("lab_result IS NOT NULL").
		Group("lab_result").
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) FIRViolationBreakdown(ctx context.Context, f model.ReportFilter) ([]model.ViolationTypeCount, error) {
	var rows []model.ViolationTypeCount
	err := r.firCaseQuery(ctx, f).
		Select("violation_type, COUNT(*) AS count").
		Group("violation_type").
		Order("count DESC").
		Scan(&rows).Error
	return rows, err
}

// FIRLocationBreakdown ranks case locations. The district axis is skipped so
// the breakdown still shows the spread of locations when one is selected.
func (r *ReportRepository) FIRLocationBreakdown(ctx context.Context, f model.ReportFilter, limit int) ([]model.LocationCount, error) {
	query := r.db.WithContext(ctx).Model(&model.FIRCase{})
	query = applyDateFilter(query, f)
	query = applyUserFilter(r.db, query, f.Officer)
	query = applyKeywordFilter(r.db, query, entityFIRCases, f.Keyword)

	var rows []model.LocationCount
	err := query.
		Select("location, COUNT(*) AS count").
		Group("location").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) TopOfficers(ctx context.Context, f model.ReportFilter, limit int) ([]model.UserCount, error) {
	var rows []model.UserCount
	err := r.inspectionQuery(ctx, f).
		Select("user_id, COUNT(*) AS count").
		Group("user_id").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) TopDistricts(ctx context.Context, f model.ReportFilter, limit int) ([]model.DistrictRank, error) {
	var rows []model.DistrictRank
	err := r.inspectionQuery(ctx, f).
		Select("location, COUNT(*) AS count").
		Group("location").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) UsersByIDs(ctx context.Context, ids []uuid.UUID) ([]model.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []model.User
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("id", "name", "email").
		Where("id IN ?", ids).
		Find(&users).Error
	return users, err
}

// Dashboard-stats support: unfiltered totals and open-item counts.

func (r *ReportRepository) ActiveSeizureCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Seizure{}).
		Where("status <> ?", "closed").Count(&count).Error
	return count, err
}

func (r *ReportRepository) PendingLabSampleCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.LabSample{}).
		Where("status <> ?", "completed").Count(&count).Error
	return count, err
}

func (r *ReportRepository) ActiveFIRCaseCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.FIRCase{}).
		Where("status <> ?", "closed").Count(&count).Error
	return count, err
}

func (r *ReportRepository) recentSnapshots(ctx context.Context, entity interface{}, since time.Time) ([]model.RecordSnapshot, error) {
	var rows []model.RecordSnapshot
	err := r.db.WithContext(ctx).Model(entity).
		Select("id, created_at, status").
		Where("created_at >= ?", since).
		Scan(&rows).Error
	return rows, err
}

func (r *ReportRepository) RecentInspections(ctx context.Context, since time.Time) ([]model.RecordSnapshot, error) {
	return r.recentSnapshots(ctx, &model.InspectionTask{}, since)
}

func (r *ReportRepository) RecentSeizures(ctx context.Context, since time.Time) ([]model.RecordSnapshot, error) {
	return r.recentSnapshots(ctx, &model.Seizure{}, since)
}

func (r *ReportRepository) RecentLabSamples(ctx context.Context, since time.Time) ([]model.RecordSnapshot, error) {
	return r.recentSnapshots(ctx, &model.LabSample{}, since)
}

func (r *ReportRepository) RecentFIRCases(ctx context.Context, since time.Time) ([]model.RecordSnapshot, error) {
	return r.recentSnapshots(ctx, &model.FIRCase{}, since)
}
