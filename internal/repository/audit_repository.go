package repository

import (
	"context"

	"gorm.io/gorm"

	"agrishield-service/internal/model"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Record appends an audit entry. The log is append-only; nothing in the
// service updates or deletes rows.
func (r *AuditRepository) Record(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// RecentActivity returns the newest audit entries under the date/officer
// filters with the acting user attached.
func (r *AuditRepository) RecentActivity(ctx context.Context, f model.ReportFilter, limit int) ([]model.AuditLog, error) {
	query := r.db.WithContext(ctx).Model(&model.AuditLog{})
	query = applyDateFilter(query, f)
	query = applyUserFilter(r.db, query, f.Officer)

	var entries []model.AuditLog
	err := query.
		Preload("User", selectUserSummary).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
