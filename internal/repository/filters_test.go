package repository

import (
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"agrishield-service/internal/model"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}
	return gdb, mock
}

// dryRunSQL builds the query without executing it and returns the SQL text.
func dryRunSQL(t *testing.T, query *gorm.DB, dest interface{}) string {
	t.Helper()
	stmt := query.Session(&gorm.Session{DryRun: true}).Find(dest).Statement
	return stmt.SQL.String()
}

func TestApplyDateFilter(t *testing.T) {
	gdb, _ := newTestDB(t)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name       string
		filter     model.ReportFilter
		contains   []string
		notContain []string
	}{
		{
			name:     "both bounds",
			filter:   model.ReportFilter{StartDate: &start, EndDate: &end},
			contains: []string{"created_at >=", "created_at <="},
		},
		{
			name:       "start only",
			filter:     model.ReportFilter{StartDate: &start},
			contains:   []string{"created_at >="},
			notContain: []string{"created_at <="},
		},
		{
			name:       "no bounds",
			filter:     model.ReportFilter{},
			notContain: []string{"created_at >=", "created_at <="},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query := applyDateFilter(gdb.Model(&model.InspectionTask{}), tc.filter)
			sql := dryRunSQL(t, query, &[]model.InspectionTask{})
			for _, fragment := range tc.contains {
				if !strings.Contains(sql, fragment) {
					t.Errorf("expected %q in SQL: %s", fragment, sql)
				}
			}
			for _, fragment := range tc.notContain {
				if strings.Contains(sql, fragment) {
					t.Errorf("did not expect %q in SQL: %s", fragment, sql)
				}
			}
		})
	}
}

func TestApplyUserFilter(t *testing.T) {
	gdb, _ := newTestDB(t)

	query := applyUserFilter(gdb, gdb.Model(&model.Seizure{}), "kumar")
	sql := dryRunSQL(t, query, &[]model.Seizure{})
	if !strings.Contains(sql, "user_id IN") {
		t.Errorf("expected owner subquery in SQL: %s", sql)
	}
	if !strings.Contains(sql, "name ILIKE") || !strings.Contains(sql, "email ILIKE") {
		t.Errorf("expected name/email matching in SQL: %s", sql)
	}

	plain := dryRunSQL(t, applyUserFilter(gdb, gdb.Model(&model.Seizure{}), ""), &[]model.Seizure{})
	if strings.Contains(plain, "user_id IN") {
		t.Errorf("empty officer should be a no-op: %s", plain)
	}
}

func TestApplyLocationFilter(t *testing.T) {
	gdb, _ := newTestDB(t)

	query := applyLocationFilter(gdb.Model(&model.InspectionTask{}), "pune")
	sql := dryRunSQL(t, query, &[]model.InspectionTask{})
	if !strings.Contains(sql, "location ILIKE") {
		t.Errorf("expected location match in SQL: %s", sql)
	}
}

func TestApplyKeywordFilter(t *testing.T) {
	gdb, _ := newTestDB(t)

	t.Run("inspections", func(t *testing.T) {
		query := applyKeywordFilter(gdb, gdb.Model(&model.InspectionTask{}), entityInspections, "urea")
		sql := dryRunSQL(t, query, &[]model.InspectionTask{})
		for _, column := range []string{"location ILIKE", "officer ILIKE", "target_type ILIKE"} {
			if !strings.Contains(sql, column) {
				t.Errorf("expected %q in SQL: %s", column, sql)
			}
		}
	})

	t.Run("seizures include scan results", func(t *testing.T) {
		query := applyKeywordFilter(gdb, gdb.Model(&model.Seizure{}), entitySeizures, "saaf")
		sql := dryRunSQL(t, query, &[]model.Seizure{})
		if !strings.Contains(sql, "witness_name ILIKE") {
			t.Errorf("expected witness match in SQL: %s", sql)
		}
		if !strings.Contains(sql, "scan_result_id IN") {
			t.Errorf("expected scan result subquery in SQL: %s", sql)
		}
		for _, column := range []string{"company ILIKE", "product ILIKE", "batch_number ILIKE"} {
			if !strings.Contains(sql, column) {
				t.Errorf("expected %q in SQL: %s", column, sql)
			}
		}
	})

	t.Run("empty keyword is a no-op", func(t *testing.T) {
		query := applyKeywordFilter(gdb, gdb.Model(&model.FIRCase{}), entityFIRCases, "")
		sql := dryRunSQL(t, query, &[]model.FIRCase{})
		if strings.Contains(sql, "ILIKE") {
			t.Errorf("expected no keyword predicates: %s", sql)
		}
	})
}

func TestLikePattern(t *testing.T) {
	if got := likePattern("saaf"); got != "%saaf%" {
		t.Errorf("likePattern = %q, want %%saaf%%", got)
	}
}
