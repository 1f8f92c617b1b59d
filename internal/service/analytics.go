package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"agrishield-service/internal/model"
)

// roundRate keeps percentage rates at one decimal place.
func roundRate(value float64) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	return math.Round(value*10) / 10
}

// equipmentStats tallies equipment tag usage across the filtered inspections,
// most used first. Computed in-memory because tags live in a jsonb column.
func equipmentStats(records []model.InspectionTask) []model.EquipmentStat {
	counts := make(map[string]int64)
	for _, record := range records {
		for _, tag := range record.Equipment {
			counts[tag]++
		}
	}

	stats := make([]model.EquipmentStat, 0, len(counts))
	for tag, count := range counts {
		stats = append(stats, model.EquipmentStat{Equipment: tag, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Equipment < stats[j].Equipment
	})
	return stats
}

// valueAnalysis aggregates seizure estimated values. Values that do not parse
// are excluded from both the sum and the count.
func valueAnalysis(records []model.Seizure) model.ValueAnalysis {
	var analysis model.ValueAnalysis
	for _, record := range records {
		value, ok := ParseAmount(record.EstimatedValue)
		if !ok {
			continue
		}
		analysis.Sum += value
		analysis.Count++
	}
	if analysis.Count > 0 {
		analysis.Avg = analysis.Sum / float64(analysis.Count)
	}
	return analysis
}

func labSampleAnalytics(records []model.LabSample) model.LabSampleAnalytics {
	var completed int64
	var totalHours float64
	for _, record := range records {
		if record.Status != "completed" {
			continue
		}
		completed++
		totalHours += record.UpdatedAt.Sub(record.CreatedAt).Hours()
	}

	var analytics model.LabSampleAnalytics
	if completed > 0 {
		analytics.AvgCompletionTimeHours = math.Round(totalHours / float64(completed))
	}
	if len(records) > 0 {
		analytics.CompletionRate = roundRate(float64(completed) / float64(len(records)) * 100)
	}
	return analytics
}

func firCaseAnalytics(records []model.FIRCase) model.FIRCaseAnalytics {
	var closed int64
	var totalDays float64
	for _, record := range records {
		if record.Status != "closed" {
			continue
		}
		closed++
		totalDays += record.UpdatedAt.Sub(record.CreatedAt).Hours() / 24
	}

	var analytics model.FIRCaseAnalytics
	if closed > 0 {
		analytics.AvgResolutionTimeDays = math.Round(totalDays / float64(closed))
	}
	if len(records) > 0 {
		analytics.ResolutionRate = roundRate(float64(closed) / float64(len(records)) * 100)
	}
	return analytics
}

// complianceRate is the share of recent inspections that completed.
func complianceRate(records []model.RecordSnapshot) float64 {
	if len(records) == 0 {
		return 0
	}
	var completed int64
	for _, record := range records {
		if record.Status == "completed" {
			completed++
		}
	}
	return roundRate(float64(completed) / float64(len(records)) * 100)
}

// trendCount counts records created within the trailing window.
func trendCount(records []model.RecordSnapshot, days int, now time.Time) int64 {
	cutoff := now.AddDate(0, 0, -days)
	var count int64
	for _, record := range records {
		if !record.CreatedAt.Before(cutoff) {
			count++
		}
	}
	return count
}

func trendMetric(total int64, records []model.RecordSnapshot, now time.Time) model.TrendMetric {
	recent := trendCount(records, 7, now)
	change := "0"
	if recent > 0 {
		change = fmt.Sprintf("+%d", recent)
	}
	return model.TrendMetric{Current: total, Recent: recent, Change: change}
}

func statusCountMap(rows []model.StatusCount) map[string]int64 {
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result
}
