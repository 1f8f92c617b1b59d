package repository

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"agrishield-service/internal/model"
)

func TestInspectionStatusBreakdown(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewReportRepository(gdb)

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM "inspection_tasks"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("scheduled", 3).
			AddRow("completed", 7))

	rows, err := repo.InspectionStatusBreakdown(context.Background(), model.ReportFilter{})
	if err != nil {
		t.Fatalf("breakdown failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[1].Status != "completed" || rows[1].Count != 7 {
		t.Errorf("unexpected row: %+v", rows[1])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCountSeizuresWithDateFilter(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewReportRepository(gdb)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "seizures" WHERE created_at >= \$1`).
		WithArgs(start).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))

	count, err := repo.CountSeizures(context.Background(), model.ReportFilter{StartDate: &start})
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 12 {
		t.Errorf("count = %d, want 12", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestTopOfficers(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewReportRepository(gdb)
	first := uuid.New()
	second := uuid.New()

	mock.ExpectQuery(`SELECT user_id, COUNT\(\*\) AS count FROM "inspection_tasks" GROUP BY user_id ORDER BY count DESC LIMIT \$1`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "count"}).
			AddRow(first.String(), 9).
			AddRow(second.String(), 4))

	rows, err := repo.TopOfficers(context.Background(), model.ReportFilter{}, 5)
	if err != nil {
		t.Fatalf("top officers failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].UserID != first || rows[0].Count != 9 {
		t.Errorf("unexpected first row: %+v", rows[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLabResultBreakdownSkipsNulls(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewReportRepository(gdb)

	mock.ExpectQuery(`SELECT lab_result, COUNT\(\*\) AS count FROM "lab_samples" WHERE lab_result IS NOT NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"lab_result", "count"}).
			AddRow("adulterated", 2))

	rows, err := repo.LabResultBreakdown(context.Background(), model.ReportFilter{})
	if err != nil {
		t.Fatalf("breakdown failed: %v", err)
	}
	if len(rows) != 1 || rows[0].LabResult != "adulterated" {
		t.Errorf("unexpected rows: %+v", rows)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUsersByIDsEmpty(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewReportRepository(gdb)

	users, err := repo.UsersByIDs(context.Background(), nil)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if users != nil {
		t.Errorf("expected no users, got %+v", users)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("no query should run for an empty id list: %v", err)
	}
}

func TestActiveSeizureCount(t *testing.T) {
	gdb, mock := newTestDB(t)
	repo := NewReportRepository(gdb)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "seizures" WHERE status <> \$1`).
		WithArgs("closed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count, err := repo.ActiveSeizureCount(context.Background())
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
}
