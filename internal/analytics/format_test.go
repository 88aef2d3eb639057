package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected string
	}{
		{"zero", 0, "₹0"},
		{"small_integer", 500, "₹500"},
		{"grouped_integer", 999, "₹999"},
		{"thousands_boundary", 1000, "₹1.0K"},
		{"thousands", 2500, "₹2.5K"},
		{"lakh_boundary", 100000, "₹1.00 L"},
		{"lakhs", 120000, "₹1.20 L"},
		{"crore_boundary", 10000000, "₹1.00 Cr"},
		{"crores", 25000000, "₹2.50 Cr"},
		{"just_below_thousand", 999.6, "₹1,000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatINR(tt.value))
		})
	}
}
