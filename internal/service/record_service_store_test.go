package service

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"agrishield-service/internal/model"
	"agrishield-service/internal/repository"
)

func newStoreService(t *testing.T) (*RecordService, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return NewRecordService(repository.NewRecordRepository(gdb), repository.NewAuditRepository(gdb)), mock
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "role"})
}

func TestCreateInspectionWritesAudit(t *testing.T) {
	svc, mock := newStoreService(t)
	actor := testActor()
	recordID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "inspection_tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(recordID.String()))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	mock.ExpectQuery(`SELECT \* FROM "inspection_tasks" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "officer", "date", "location", "target_type", "equipment", "status", "user_id", "created_at", "updated_at",
		}).AddRow(recordID.String(), "A Kumar", "2026-03-01", "Pune", "retailer", []byte(`["test-kit"]`), "scheduled", actor.UserID.String(), now, now))
	mock.ExpectQuery(`SELECT .* FROM "users"`).WillReturnRows(userRows())

	record, err := svc.CreateInspection(context.Background(), actor, CreateInspectionInput{
		Officer:    "A Kumar",
		Date:       "2026-03-01",
		Location:   "Pune",
		TargetType: "retailer",
		Equipment:  model.StringList{"test-kit"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if record.Status != "scheduled" {
		t.Errorf("status = %q, want scheduled", record.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("audit entry was not written: %v", err)
	}
}

func TestDeleteInspectionWritesAudit(t *testing.T) {
	svc, mock := newStoreService(t)
	actor := testActor()
	recordID := uuid.New()
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM "inspection_tasks" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "officer", "date", "location", "target_type", "equipment", "status", "user_id", "created_at", "updated_at",
		}).AddRow(recordID.String(), "A Kumar", "2026-03-01", "Pune", "retailer", []byte(`[]`), "scheduled", actor.UserID.String(), now, now))
	mock.ExpectQuery(`SELECT .* FROM "users"`).WillReturnRows(userRows())

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "inspection_tasks" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "audit_logs"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	if err := svc.DeleteInspection(context.Background(), actor, recordID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("audit entry was not written: %v", err)
	}
}

func TestCreateLabSampleMissingSeizure(t *testing.T) {
	svc, mock := newStoreService(t)

	mock.ExpectQuery(`SELECT \* FROM "seizures" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.CreateLabSample(context.Background(), testActor(), CreateLabSampleInput{
		SampleType:     "pesticide",
		LabDestination: "State Lab Pune",
		SeizureID:      uuid.New(),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing seizure, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("nothing should be written when the seizure is missing: %v", err)
	}
}

func TestCreateFIRCaseMissingLabSample(t *testing.T) {
	svc, mock := newStoreService(t)
	labSampleID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "lab_samples" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.CreateFIRCase(context.Background(), testActor(), CreateFIRCaseInput{
		LabReportID:   "LR-2026-001",
		ViolationType: "counterfeit",
		Accused:       "Unknown trader",
		Location:      "Nashik",
		LabSampleID:   &labSampleID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing lab sample, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("nothing should be written when the lab sample is missing: %v", err)
	}
}
