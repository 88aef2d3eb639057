package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuarterBounds(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		start time.Time
		end   time.Time
	}{
		{"q1_april", day(2025, time.May, 10), day(2025, time.April, 1), day(2025, time.June, 30)},
		{"q2_july", day(2025, time.August, 30), day(2025, time.July, 1), day(2025, time.September, 30)},
		{"q3_october", day(2025, time.November, 2), day(2025, time.October, 1), day(2025, time.December, 31)},
		{"q4_january", day(2026, time.February, 14), day(2026, time.January, 1), day(2026, time.March, 31)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := QuarterBounds(tt.now)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

func TestFinancialYearStart(t *testing.T) {
	assert.Equal(t, day(2025, time.April, 1), FinancialYearStart(day(2025, time.August, 30)))
	assert.Equal(t, day(2025, time.April, 1), FinancialYearStart(day(2025, time.April, 1)))
	// January through March belong to the FY that started the year before.
	assert.Equal(t, day(2025, time.April, 1), FinancialYearStart(day(2026, time.February, 14)))
}

func TestFilterByPeriod(t *testing.T) {
	now := day(2025, time.August, 30)
	deals := []domain.DealRecord{
		{DealName: "in-month", CloseDate: day(2025, time.August, 5)},
		{DealName: "in-quarter", CloseDate: day(2025, time.July, 2)},
		{DealName: "in-fy", CloseDate: day(2025, time.April, 20)},
		{DealName: "last-fy", CloseDate: day(2025, time.February, 1)},
		{DealName: "undated"},
	}

	names := func(ds []domain.DealRecord) []string {
		out := make([]string, len(ds))
		for i, d := range ds {
			out[i] = d.DealName
		}
		return out
	}

	assert.Equal(t, []string{"in-month"},
		names(FilterByPeriod(deals, domain.PeriodThisMonth, now)))
	assert.Equal(t, []string{"in-month", "in-quarter"},
		names(FilterByPeriod(deals, domain.PeriodThisQuarter, now)))
	assert.Equal(t, []string{"in-month", "in-quarter", "in-fy"},
		names(FilterByPeriod(deals, domain.PeriodYTD, now)))

	// No period keeps everything, including undated rows.
	all := FilterByPeriod(deals, domain.PeriodAll, now)
	require.Len(t, all, 5)

	// Unknown tokens behave like no filter.
	assert.Len(t, FilterByPeriod(deals, domain.Period("last_full_moon"), now), 5)
}

func TestFilterByPeriodQuarterIsInclusive(t *testing.T) {
	now := day(2025, time.August, 30)
	deals := []domain.DealRecord{
		{DealName: "first-day", CloseDate: day(2025, time.July, 1)},
		{DealName: "last-day", CloseDate: day(2025, time.September, 30)},
		{DealName: "day-after", CloseDate: day(2025, time.October, 1)},
	}

	got := FilterByPeriod(deals, domain.PeriodThisQuarter, now)
	require.Len(t, got, 2)
	assert.Equal(t, "first-day", got[0].DealName)
	assert.Equal(t, "last-day", got[1].DealName)
}
