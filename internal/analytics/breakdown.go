package analytics

import (
	"sort"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// sectorBreakdown orders grouped sums by descending value, sector name
// breaking ties so output is deterministic.
func sectorBreakdown(sums map[string]float64) []domain.SectorAmount {
	out := make([]domain.SectorAmount, 0, len(sums))
	for sector, value := range sums {
		out = append(out, domain.SectorAmount{
			Sector:   sector,
			Value:    value,
			ValueFmt: FormatINR(value),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Sector < out[j].Sector
	})
	return out
}

// monthBreakdown orders grouped sums chronologically; months are
// "2006-01" strings so lexical order is chronological order.
func monthBreakdown(sums map[string]float64) []domain.MonthAmount {
	out := make([]domain.MonthAmount, 0, len(sums))
	for month, value := range sums {
		out = append(out, domain.MonthAmount{
			Month:    month,
			Value:    value,
			ValueFmt: FormatINR(value),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month < out[j].Month
	})
	return out
}
