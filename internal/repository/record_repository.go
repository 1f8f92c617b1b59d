package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrishield-service/internal/model"
)

// RecordRepository is the write-path store for the four case entities. The
// reporting layer never mutates anything; every mutation flows through here.
type RecordRepository struct {
	db *gorm.DB
}

func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

type ListOptions struct {
	Status string
	UserID *uuid.UUID
}

func (o ListOptions) apply(query *gorm.DB) *gorm.DB {
	if o.Status != "" {
		query = query.Where("status = ?", o.Status)
	}
	if o.UserID != nil {
		query = query.Where("user_id = ?", *o.UserID)
	}
	return query
}

func (r *RecordRepository) ListInspections(ctx context.Context, opts ListOptions) ([]model.InspectionTask, error) {
	var records []model.InspectionTask
	query := opts.apply(r.db.WithContext(ctx).Model(&model.InspectionTask{}))
	err := query.
		Preload("User", selectUserSummary).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *RecordRepository) GetInspection(ctx context.Context, id uuid.UUID) (*model.InspectionTask, error) {
	var record model.InspectionTask
	err := r.db.WithContext(ctx).
		Preload("User", selectUserSummary).
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordRepository) CreateInspection(ctx context.Context, record *model.InspectionTask) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *RecordRepository) UpdateInspection(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.InspectionTask{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *RecordRepository) DeleteInspection(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.InspectionTask{}, "id = ?", id).Error
}

func (r *RecordRepository) ListSeizures(ctx context.Context, opts ListOptions) ([]model.Seizure, error) {
	var records []model.Seizure
	query := opts.apply(r.db.WithContext(ctx).Model(&model.Seizure{}))
	err := query.
		Preload("User", selectUserSummary).
		Preload("ScanResult").
		Preload("LabSamples").
		Preload("LabSamples.User", selectUserSummary).
		Preload("FIRCases").
		Preload("FIRCases.User", selectUserSummary).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *RecordRepository) GetSeizure(ctx context.Context, id uuid.UUID) (*model.Seizure, error) {
	var record model.Seizure
	err := r.db.WithContext(ctx).
		Preload("User", selectUserSummary).
		Preload("ScanResult").
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// CreateSeizure persists the owned scan result and the seizure atomically.
func (r *RecordRepository) CreateSeizure(ctx context.Context, seizure *model.Seizure, scan *model.ScanResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(scan).Error; err != nil {
			return err
		}
		seizure.ScanResultID = scan.ID
		return tx.Create(seizure).Error
	})
}

func (r *RecordRepository) ListLabSamples(ctx context.Context, opts ListOptions) ([]model.LabSample, error) {
	var records []model.LabSample
	query := opts.apply(r.db.WithContext(ctx).Model(&model.LabSample{}))
	err := query.
		Preload("User", selectUserSummary).
		Preload("Seizure.ScanResult").
		Preload("Seizure.User", selectUserSummary).
		Preload("FIRCases").
		Preload("FIRCases.User", selectUserSummary).
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *RecordRepository) GetLabSample(ctx context.Context, id uuid.UUID) (*model.LabSample, error) {
	var record model.LabSample
	err := r.db.WithContext(ctx).
		Preload("User", selectUserSummary).
		Preload("Seizure.ScanResult").
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordRepository) CreateLabSample(ctx context.Context, record *model.LabSample) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *RecordRepository) UpdateLabSample(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&model.LabSample{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *RecordRepository) DeleteLabSample(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.LabSample{}, "id = ?", id).Error
}

func (r *RecordRepository) ListFIRCases(ctx context.Context, opts ListOptions) ([]model.FIRCase, error) {
	var records []model.FIRCase
	query := opts.apply(r.db.WithContext(ctx).Model(&model.FIRCase{}))
	err := query.
		Preload("User", selectUserSummary).
		Preload("Seizure.ScanResult").
		Preload("Seizure.User", selectUserSummary).
		Preload("LabSample").
		Preload("LabSample.User", selectUserSummary).
		Preload("LabSample.Seizure.ScanResult").
		Order("created_at DESC").
		Find(&records).Error
	return records, err
}

func (r *RecordRepository) GetFIRCase(ctx context.Context, id uuid.UUID) (*model.FIRCase, error) {
	var record model.FIRCase
	err := r.db.WithContext(ctx).
		Preload("User", selectUserSummary).
		Preload("Seizure.ScanResult").
		Preload("LabSample.Seizure.ScanResult").
		First(&record, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordRepository) CreateFIRCase(ctx context.Context, record *model.FIRCase) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *RecordRepository) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("id", "name", "email", "role").
		Order("name ASC").
		Find(&users).Error
	return users, err
}
