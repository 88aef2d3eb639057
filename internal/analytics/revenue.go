package analytics

import (
	"time"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// Revenue computes closed revenue metrics from Won deals, optionally
// restricted to a period by close date. A wholly empty deal set is
// ErrNoDeals; a Won subset that is empty after filtering yields a
// zero-valued result.
func Revenue(deals []domain.DealRecord, period domain.Period, now time.Time) (domain.RevenueAnalytics, error) {
	if len(deals) == 0 {
		return domain.RevenueAnalytics{}, ErrNoDeals
	}

	won := make([]domain.DealRecord, 0, len(deals))
	for _, d := range deals {
		if d.Status == domain.DealStatusWon {
			won = append(won, d)
		}
	}
	won = FilterByPeriod(won, period, now)

	result := domain.RevenueAnalytics{
		Period:         period.Label(),
		ClosedTotalFmt: FormatINR(0),
		BySector:       []domain.SectorAmount{},
		ByMonth:        []domain.MonthAmount{},
	}
	if len(won) == 0 {
		return result, nil
	}

	bySector := make(map[string]float64)
	byMonth := make(map[string]float64)
	var total float64
	for _, d := range won {
		total += d.DealValue
		bySector[d.Sector] += d.DealValue
		if d.HasCloseDate() {
			byMonth[d.CloseDate.Format("2006-01")] += d.DealValue
		}
	}

	result.ClosedTotal = total
	result.ClosedTotalFmt = FormatINR(total)
	result.Count = len(won)
	result.BySector = sectorBreakdown(bySector)
	result.ByMonth = monthBreakdown(byMonth)

	top := result.BySector[0]
	result.TopSector = top.Sector
	if total > 0 {
		result.TopSectorPct = round1(top.Value / total * 100)
	}

	return result, nil
}
