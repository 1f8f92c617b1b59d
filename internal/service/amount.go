package service

import (
	"math"
	"regexp"
	"strconv"
)

var nonAmountChars = regexp.MustCompile(`[^0-9.]`)

// ParseAmount extracts a numeric value from a user-entered amount string
// ("₹12,500.50 approx" -> 12500.50). Quantity and value fields are stored as
// opaque display strings, so this is the single place aggregation math is
// allowed to interpret them. Returns false when nothing numeric survives.
func ParseAmount(raw string) (float64, bool) {
	cleaned := nonAmountChars.ReplaceAllString(raw, "")
	if cleaned == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}
