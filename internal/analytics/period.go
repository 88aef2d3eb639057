package analytics

import (
	"time"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// QuarterBounds returns the first and last day of the financial
// quarter containing now. Quarters are anchored to April: Apr-Jun,
// Jul-Sep, Oct-Dec, Jan-Mar.
func QuarterBounds(now time.Time) (start, end time.Time) {
	year := now.Year()
	switch now.Month() {
	case time.April, time.May, time.June:
		return date(year, time.April, 1), date(year, time.June, 30)
	case time.July, time.August, time.September:
		return date(year, time.July, 1), date(year, time.September, 30)
	case time.October, time.November, time.December:
		return date(year, time.October, 1), date(year, time.December, 31)
	default:
		return date(year, time.January, 1), date(year, time.March, 31)
	}
}

// FinancialYearStart returns April 1 of the financial year containing
// now, using the prior calendar year for January through March.
func FinancialYearStart(now time.Time) time.Time {
	year := now.Year()
	if now.Month() < time.April {
		year--
	}
	return date(year, time.April, 1)
}

// FilterByPeriod restricts deals to those whose close date falls in
// the requested period relative to now. Deals without a close date are
// excluded from every filtered view but retained under PeriodAll.
// Unrecognized period tokens behave like PeriodAll.
func FilterByPeriod(deals []domain.DealRecord, period domain.Period, now time.Time) []domain.DealRecord {
	return filterByPeriod(deals, func(d domain.DealRecord) time.Time { return d.CloseDate }, period, now)
}

func filterByPeriod(deals []domain.DealRecord, dateOf func(domain.DealRecord) time.Time, period domain.Period, now time.Time) []domain.DealRecord {
	if period == domain.PeriodAll || len(deals) == 0 {
		return deals
	}

	var keep func(time.Time) bool
	switch period {
	case domain.PeriodThisMonth:
		keep = func(t time.Time) bool {
			return t.Year() == now.Year() && t.Month() == now.Month()
		}
	case domain.PeriodThisQuarter:
		start, end := QuarterBounds(now)
		keep = func(t time.Time) bool {
			return !t.Before(start) && !t.After(end)
		}
	case domain.PeriodYTD:
		// Open-ended on the upper side, matching the source: "year to
		// date" is everything from the FY start onward.
		start := FinancialYearStart(now)
		keep = func(t time.Time) bool {
			return !t.Before(start)
		}
	default:
		return deals
	}

	filtered := make([]domain.DealRecord, 0, len(deals))
	for _, d := range deals {
		t := dateOf(d)
		if t.IsZero() {
			continue
		}
		if keep(t) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
