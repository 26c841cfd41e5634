package normalize

import (
	"fmt"
	"math"
	"strconv"
)

// AbbreviateNumber shortens large counts for display: 1234567 becomes "1.2M".
// Thresholds are strictly greater-than, so exactly 1000 stays "1000".
func AbbreviateNumber(n int64) string {
	switch {
	case n > 1_000_000_000:
		return fmt.Sprintf("%.1fG", round1(float64(n)/1_000_000_000))
	case n > 1_000_000:
		return fmt.Sprintf("%.1fM", round1(float64(n)/1_000_000))
	case n > 1_000:
		return fmt.Sprintf("%.1fK", round1(float64(n)/1_000))
	default:
		return strconv.FormatInt(n, 10)
	}
}

// FormatHours converts a seconds count to an hour string with one decimal:
// 7200 renders as "2.0".
func FormatHours(seconds float64) string {
	return fmt.Sprintf("%.1f", round1(seconds/3600))
}

// FormatRate rounds to two decimals and drops trailing zeros, so 0.8 stays
// "0.8" rather than "0.80".
func FormatRate(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

// InvertPercentile turns a "percentile bucket" into "share of players
// outperformed": raw 13 becomes 87.
func InvertPercentile(p float64) float64 {
	return 100 - p
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
