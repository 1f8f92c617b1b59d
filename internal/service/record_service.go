package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"agrishield-service/internal/model"
	"agrishield-service/internal/repository"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
)

const (
	auditCreate = "CREATE"
	auditUpdate = "UPDATE"
	auditDelete = "DELETE"
)

// RecordService owns the write paths for the four case entities. Every
// mutation is followed by an audit entry attributed to the acting user.
type RecordService struct {
	records *repository.RecordRepository
	audit   *repository.AuditRepository
}

func NewRecordService(records *repository.RecordRepository, audit *repository.AuditRepository) *RecordService {
	return &RecordService{records: records, audit: audit}
}

func (s *RecordService) writeAudit(ctx context.Context, action, entity string, entityID, userID uuid.UUID, oldData, newData interface{}) error {
	entry := model.AuditLog{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		UserID:   userID,
	}
	if oldData != nil {
		raw, err := json.Marshal(oldData)
		if err != nil {
			return err
		}
		entry.OldData = raw
	}
	if newData != nil {
		raw, err := json.Marshal(newData)
		if err != nil {
			return err
		}
		entry.NewData = raw
	}
	return s.audit.Record(ctx, &entry)
}

func missing(fields ...string) error {
	return fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(fields, ", "))
}

type CreateInspectionInput struct {
	Officer    string           `json:"officer"`
	Date       string           `json:"date"`
	Location   string           `json:"location"`
	TargetType string           `json:"targetType"`
	Equipment  model.StringList `json:"equipment"`
}

type UpdateInspectionInput struct {
	Officer    *string           `json:"officer"`
	Date       *string           `json:"date"`
	Location   *string           `json:"location"`
	TargetType *string           `json:"targetType"`
	Equipment  *model.StringList `json:"equipment"`
	Status     *string           `json:"status"`
}

func (s *RecordService) ListInspections(ctx context.Context, opts repository.ListOptions) ([]model.InspectionTask, error) {
	return s.records.ListInspections(ctx, opts)
}

func (s *RecordService) GetInspection(ctx context.Context, id uuid.UUID) (*model.InspectionTask, error) {
	record, err := s.records.GetInspection(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("inspection %w", ErrNotFound)
	}
	return record, err
}

func (s *RecordService) CreateInspection(ctx context.Context, actor model.Principal, in CreateInspectionInput) (*model.InspectionTask, error) {
	if in.Officer == "" || in.Date == "" || in.Location == "" || in.TargetType == "" {
		return nil, missing("officer", "date", "location", "targetType")
	}

	record := model.InspectionTask{
		Officer:    in.Officer,
		Date:       in.Date,
		Location:   in.Location,
		TargetType: in.TargetType,
		Equipment:  in.Equipment,
		Status:     "scheduled",
		UserID:     actor.UserID,
	}
	if err := s.records.CreateInspection(ctx, &record); err != nil {
		return nil, err
	}
	if err := s.writeAudit(ctx, auditCreate, "InspectionTask", record.ID, actor.UserID, nil, record); err != nil {
		return nil, err
	}
	return s.records.GetInspection(ctx, record.ID)
}

func (s *RecordService) UpdateInspection(ctx context.Context, actor model.Principal, id uuid.UUID, in UpdateInspectionInput) (*model.InspectionTask, error) {
	existing, err := s.GetInspection(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Officer != nil {
		updates["officer"] = *in.Officer
	}
	if in.Date != nil {
		updates["date"] = *in.Date
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.TargetType != nil {
		updates["target_type"] = *in.TargetType
	}
	if in.Equipment != nil {
		updates["equipment"] = *in.Equipment
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if len(updates) > 0 {
		if err := s.records.UpdateInspection(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.records.GetInspection(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.writeAudit(ctx, auditUpdate, "InspectionTask", id, actor.UserID, existing, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *RecordService) DeleteInspection(ctx context.Context, actor model.Principal, id uuid.UUID) error {
	existing, err := s.GetInspection(ctx, id)
	if err != nil {
		return err
	}
	if err := s.records.DeleteInspection(ctx, id); err != nil {
		return err
	}
	return s.writeAudit(ctx, auditDelete, "InspectionTask", id, actor.UserID, existing, nil)
}

type ScanResultInput struct {
	Company           string           `json:"company"`
	Product           string           `json:"product"`
	BatchNumber       string           `json:"batchNumber"`
	AuthenticityScore float64          `json:"authenticityScore"`
	Issues            model.StringList `json:"issues"`
	Recommendation    string           `json:"recommendation"`
	GeoLocation       string           `json:"geoLocation"`
	Timestamp         string           `json:"timestamp"`
}

type CreateSeizureInput struct {
	Quantity       string           `json:"quantity"`
	EstimatedValue string           `json:"estimatedValue"`
	WitnessName    string           `json:"witnessName"`
	EvidencePhotos model.StringList `json:"evidencePhotos"`
	VideoEvidence  *string          `json:"videoEvidence"`
	ScanResult     *ScanResultInput `json:"scanResult"`
}

func (s *RecordService) ListSeizures(ctx context.Context, opts repository.ListOptions) ([]model.Seizure, error) {
	return s.records.ListSeizures(ctx, opts)
}

func (s *RecordService) GetSeizure(ctx context.Context, id uuid.UUID) (*model.Seizure, error) {
	record, err := s.records.GetSeizure(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("seizure %w", ErrNotFound)
	}
	return record, err
}

func (s *RecordService) CreateSeizure(ctx context.Context, actor model.Principal, in CreateSeizureInput) (*model.Seizure, error) {
	if in.Quantity == "" || in.EstimatedValue == "" || in.WitnessName == "" {
		return nil, missing("quantity", "estimatedValue", "witnessName")
	}
	if in.ScanResult == nil {
		return nil, fmt.Errorf("%w: missing scanResult", ErrValidation)
	}

	scan := model.ScanResult{
		Company:           in.ScanResult.Company,
		Product:           in.ScanResult.Product,
		BatchNumber:       in.ScanResult.BatchNumber,
		AuthenticityScore: in.ScanResult.AuthenticityScore,
		Issues:            in.ScanResult.Issues,
		Recommendation:    in.ScanResult.Recommendation,
		GeoLocation:       in.ScanResult.GeoLocation,
		Timestamp:         in.ScanResult.Timestamp,
	}
	seizure := model.Seizure{
		Quantity:       in.Quantity,
		EstimatedValue: in.EstimatedValue,
		WitnessName:    in.WitnessName,
		EvidencePhotos: in.EvidencePhotos,
		VideoEvidence:  in.VideoEvidence,
		Status:         "pending",
		UserID:         actor.UserID,
	}
	if err := s.records.CreateSeizure(ctx, &seizure, &scan); err != nil {
		return nil, err
	}
	if err := s.writeAudit(ctx, auditCreate, "Seizure", seizure.ID, actor.UserID, nil, seizure); err != nil {
		return nil, err
	}
	return s.records.GetSeizure(ctx, seizure.ID)
}

type CreateLabSampleInput struct {
	SampleType     string    `json:"sampleType"`
	LabDestination string    `json:"labDestination"`
	SeizureID      uuid.UUID `json:"seizureId"`
}

type UpdateLabSampleInput struct {
	SampleType     *string `json:"sampleType"`
	LabDestination *string `json:"labDestination"`
	Status         *string `json:"status"`
	LabResult      *string `json:"labResult"`
}

func (s *RecordService) ListLabSamples(ctx context.Context, opts repository.ListOptions) ([]model.LabSample, error) {
	return s.records.ListLabSamples(ctx, opts)
}

func (s *RecordService) GetLabSample(ctx context.Context, id uuid.UUID) (*model.LabSample, error) {
	record, err := s.records.GetLabSample(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("lab sample %w", ErrNotFound)
	}
	return record, err
}

func (s *RecordService) CreateLabSample(ctx context.Context, actor model.Principal, in CreateLabSampleInput) (*model.LabSample, error) {
	if in.SampleType == "" || in.LabDestination == "" {
		return nil, missing("sampleType", "labDestination")
	}
	if in.SeizureID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing seizureId", ErrValidation)
	}
	if _, err := s.GetSeizure(ctx, in.SeizureID); err != nil {
		return nil, err
	}

	record := model.LabSample{
		SampleType:     in.SampleType,
		LabDestination: in.LabDestination,
		Status:         "in-transit",
		UserID:         actor.UserID,
		SeizureID:      in.SeizureID,
	}
	if err := s.records.CreateLabSample(ctx, &record); err != nil {
		return nil, err
	}
	if err := s.writeAudit(ctx, auditCreate, "LabSample", record.ID, actor.UserID, nil, record); err != nil {
		return nil, err
	}
	return s.records.GetLabSample(ctx, record.ID)
}

func (s *RecordService) UpdateLabSample(ctx context.Context, actor model.Principal, id uuid.UUID, in UpdateLabSampleInput) (*model.LabSample, error) {
	existing, err := s.GetLabSample(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.SampleType != nil {
		updates["sample_type"] = *in.SampleType
	}
	if in.LabDestination != nil {
		updates["lab_destination"] = *in.LabDestination
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.LabResult != nil {
		updates["lab_result"] = *in.LabResult
	}
	if len(updates) > 0 {
		if err := s.records.UpdateLabSample(ctx, id, updates); err != nil {
			return nil, err
		}
	}

	updated, err := s.records.GetLabSample(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.writeAudit(ctx, auditUpdate, "LabSample", id, actor.UserID, existing, updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *RecordService) DeleteLabSample(ctx context.Context, actor model.Principal, id uuid.UUID) error {
	existing, err := s.GetLabSample(ctx, id)
	if err != nil {
		return err
	}
	if err := s.records.DeleteLabSample(ctx, id); err != nil {
		return err
	}
	return s.writeAudit(ctx, auditDelete, "LabSample", id, actor.UserID, existing, nil)
}

type CreateFIRCaseInput struct {
	LabReportID   string     `json:"labReportId"`
	ViolationType string     `json:"violationType"`
	Accused       string     `json:"accused"`
	Location      string     `json:"location"`
	CaseNotes     *string    `json:"caseNotes"`
	CourtDate     *string    `json:"courtDate"`
	SeizureID     *uuid.UUID `json:"seizureId"`
	LabSampleID   *uuid.UUID `json:"labSampleId"`
}

func (s *RecordService) ListFIRCases(ctx context.Context, opts repository.ListOptions) ([]model.FIRCase, error) {
	return s.records.ListFIRCases(ctx, opts)
}

func (s *RecordService) GetFIRCase(ctx context.Context, id uuid.UUID) (*model.FIRCase, error) {
	record, err := s.records.GetFIRCase(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("fir case %w", ErrNotFound)
	}
	return record, err
}

func (s *RecordService) CreateFIRCase(ctx context.Context, actor model.Principal, in CreateFIRCaseInput) (*model.FIRCase, error) {
	if in.LabReportID == "" || in.ViolationType == "" || in.Accused == "" || in.Location == "" {
		return nil, missing("labReportId", "violationType", "accused", "location")
	}
	if in.SeizureID != nil {
		if _, err := s.GetSeizure(ctx, *in.SeizureID); err != nil {
			return nil, err
		}
	}
	if in.LabSampleID != nil {
		if _, err := s.GetLabSample(ctx, *in.LabSampleID); err != nil {
			return nil, err
		}
	}

	record := model.FIRCase{
		LabReportID:   in.LabReportID,
		ViolationType: in.ViolationType,
		Accused:       in.Accused,
		Location:      in.Location,
		Status:        "draft",
		CaseNotes:     in.CaseNotes,
		CourtDate:     in.CourtDate,
		UserID:        actor.UserID,
		SeizureID:     in.SeizureID,
		LabSampleID:   in.LabSampleID,
	}
	if err := s.records.CreateFIRCase(ctx, &record); err != nil {
		return nil, err
	}
	if err := s.writeAudit(ctx, auditCreate, "FIRCase", record.ID, actor.UserID, nil, record); err != nil {
		return nil, err
	}
	return s.records.GetFIRCase(ctx, record.ID)
}

func (s *RecordService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.records.ListUsers(ctx)
}
