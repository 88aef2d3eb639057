package analytics

import (
	"fmt"
	"math"
	"strconv"
)

// FormatINR renders a rupee amount the way leadership reads it.
// The magnitude thresholds are a consumer contract: >=1e7 crores,
// >=1e5 lakhs, >=1e3 thousands, else a grouped integer.
func FormatINR(value float64) string {
	switch {
	case value == 0:
		return "₹0"
	case value >= 1e7:
		return fmt.Sprintf("₹%.2f Cr", value/1e7)
	case value >= 1e5:
		return fmt.Sprintf("₹%.2f L", value/1e5)
	case value >= 1e3:
		return fmt.Sprintf("₹%.1fK", value/1e3)
	default:
		return "₹" + groupThousands(value)
	}
}

// groupThousands renders a small amount as an integer with comma
// grouping.
func groupThousands(value float64) string {
	s := strconv.FormatFloat(math.Round(value), 'f', 0, 64)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// round1 rounds to one decimal place, the precision every percentage
// in this package is reported at.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
