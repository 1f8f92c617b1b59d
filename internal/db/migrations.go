package db

import (
	"fmt"

	"gorm.io/gorm"

	"agrishield-service/internal/model"
)

// gen_random_uuid needs pgcrypto; statements after AutoMigrate cover the hot
// reporting paths (created_at range scans and the keyword columns).
var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE INDEX IF NOT EXISTS idx_inspection_tasks_location ON inspection_tasks (location);`,
	`CREATE INDEX IF NOT EXISTS idx_fir_cases_location ON fir_cases (location);`,
	`CREATE INDEX IF NOT EXISTS idx_scan_results_company ON scan_results (company);`,
	`CREATE INDEX IF NOT EXISTS idx_lab_samples_destination ON lab_samples (lab_destination);`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_entity ON audit_logs (entity, entity_id);`,
}

func runMigrations(db *gorm.DB) error {
	if err := db.Exec(migrationStatements[0]).Error; err != nil {
		return fmt.Errorf("migration 1 failed: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.ScanResult{},
		&model.InspectionTask{},
		&model.Seizure{},
		&model.LabSample{},
		&model.FIRCase{},
		&model.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto-migrate failed: %w", err)
	}

	for i, stmt := range migrationStatements[1:] {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+2, err)
		}
	}
	return nil
}
