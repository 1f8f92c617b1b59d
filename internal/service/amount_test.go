package service

import (
	"testing"

	"agrishield-service/internal/model"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name  string
		raw   string
		value float64
		ok    bool
	}{
		{name: "plain number", raw: "5000", value: 5000, ok: true},
		{name: "currency and thousands separators", raw: "₹12,500.50 approx", value: 12500.50, ok: true},
		{name: "decimal", raw: "3000.50", value: 3000.50, ok: true},
		{name: "embedded units", raw: "200 kg", value: 200, ok: true},
		{name: "no digits", raw: "N/A", ok: false},
		{name: "letters only", raw: "abc", ok: false},
		{name: "empty", raw: "", ok: false},
		{name: "stray dots only", raw: "...", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, ok := ParseAmount(tc.raw)
			if ok != tc.ok {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tc.raw, ok, tc.ok)
			}
			if ok && value != tc.value {
				t.Fatalf("ParseAmount(%q) = %v, want %v", tc.raw, value, tc.value)
			}
		})
	}
}

func TestValueAnalysis(t *testing.T) {
	seizures := []model.Seizure{
		{EstimatedValue: "5000"},
		{EstimatedValue: "abc"},
		{EstimatedValue: "3000.50"},
	}

	got := valueAnalysis(seizures)
	if got.Sum != 8000.50 {
		t.Errorf("sum = %v, want 8000.50", got.Sum)
	}
	if got.Count != 2 {
		t.Errorf("count = %d, want 2", got.Count)
	}
	if got.Avg != 4000.25 {
		t.Errorf("avg = %v, want 4000.25", got.Avg)
	}
}

func TestValueAnalysisEmpty(t *testing.T) {
	got := valueAnalysis(nil)
	if got.Sum != 0 || got.Avg != 0 || got.Count != 0 {
		t.Errorf("empty set should produce zeroes, got %+v", got)
	}
}
