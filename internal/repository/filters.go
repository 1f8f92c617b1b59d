package repository

import (
	"strings"

	"gorm.io/gorm"

	"agrishield-service/internal/model"
)

type reportEntity string

const (
	entityInspections reportEntity = "inspections"
	entitySeizures    reportEntity = "seizures"
	entityLabSamples  reportEntity = "lab-samples"
	entityFIRCases    reportEntity = "fir-cases"
)

// keywordColumns declares, per entity, which text columns the free-text
// keyword search covers. Seizures additionally match against their scan
// result, handled in applyKeywordFilter.
var keywordColumns = map[reportEntity][]string{
	entityInspections: {"location", "officer", "target_type"},
	entitySeizures:    {"witness_name"},
	entityLabSamples:  {"sample_type", "lab_destination", "lab_result"},
	entityFIRCases:    {"violation_type", "accused", "case_notes"},
}

func likePattern(term string) string {
	return "%" + term + "%"
}

func applyDateFilter(query *gorm.DB, f model.ReportFilter) *gorm.DB {
	if f.StartDate != nil {
		query = query.Where("created_at >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where("created_at <= ?", *f.EndDate)
	}
	return query
}

// applyUserFilter restricts records to owners whose name or email contains
// the officer term, case-insensitively.
func applyUserFilter(db *gorm.DB, query *gorm.DB, officer string) *gorm.DB {
	if officer == "" {
		return query
	}
	pattern := likePattern(officer)
	owners := db.Table("users").Select("id").
		Where("name ILIKE ? OR email ILIKE ?", pattern, pattern)
	return query.Where("user_id IN (?)", owners)
}

// applyLocationFilter matches the district substring against the entity's own
// location column. Only inspections and FIR cases carry one; a seizure's
// location lives inside its scan result's free-text geo field and is not
// covered by this axis.
func applyLocationFilter(query *gorm.DB, district string) *gorm.DB {
	if district == "" {
		return query
	}
	return query.Where("location ILIKE ?", likePattern(district))
}

func orClause(columns []string) string {
	parts := make([]string, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, column+" ILIKE ?")
	}
	return strings.Join(parts, " OR ")
}

func applyKeywordFilter(db *gorm.DB, query *gorm.DB, entity reportEntity, keyword string) *gorm.DB {
	if keyword == "" {
		return query
	}

	pattern := likePattern(keyword)
	columns := keywordColumns[entity]
	args := make([]interface{}, 0, len(columns)+1)
	for range columns {
		args = append(args, pattern)
	}

	if entity == entitySeizures {
		scanMatches := db.Table("scan_results").Select("id").
			Where("company ILIKE ? OR product ILIKE ? OR batch_number ILIKE ?", pattern, pattern, pattern)
		clause := orClause(columns) + " OR scan_result_id IN (?)"
		return query.Where("("+clause+")", append(args, scanMatches)...)
	}

	return query.Where("("+orClause(columns)+")", args...)
}
