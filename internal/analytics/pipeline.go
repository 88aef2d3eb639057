package analytics

import (
	"time"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// Probability band boundaries for pipeline bucketing.
const (
	highProbFloor = 0.75
	midProbFloor  = 0.4
)

// Pipeline computes open pipeline metrics, optionally restricted to a
// period by close date. The closing-this-quarter figures always use
// the current financial quarter regardless of the requested period:
// pipeline health is quarter-anchored by definition.
func Pipeline(deals []domain.DealRecord, period domain.Period, now time.Time) (domain.PipelineHealth, error) {
	if len(deals) == 0 {
		return domain.PipelineHealth{}, ErrNoDeals
	}

	open := make([]domain.DealRecord, 0, len(deals))
	for _, d := range deals {
		if d.Status == domain.DealStatusOpen {
			open = append(open, d)
		}
	}
	open = FilterByPeriod(open, period, now)

	result := domain.PipelineHealth{
		Period:                period.Label(),
		PipelineTotalFmt:      FormatINR(0),
		WeightedPipelineFmt:   FormatINR(0),
		ClosingThisQuarterFmt: FormatINR(0),
		HighProbPipelineFmt:   FormatINR(0),
		MidProbPipelineFmt:    FormatINR(0),
		LowProbPipelineFmt:    FormatINR(0),
		BySector:              []domain.SectorAmount{},
	}
	if len(open) == 0 {
		return result, nil
	}

	qStart, qEnd := QuarterBounds(now)
	bySector := make(map[string]float64)
	var total, weighted, closingQ, high, mid, low float64
	var closingCount int

	for _, d := range open {
		total += d.DealValue
		weighted += d.WeightedValue
		bySector[d.Sector] += d.DealValue

		if d.HasCloseDate() && !d.CloseDate.Before(qStart) && !d.CloseDate.After(qEnd) {
			closingQ += d.DealValue
			closingCount++
		}

		switch {
		case d.Probability >= highProbFloor:
			high += d.DealValue
		case d.Probability >= midProbFloor:
			mid += d.DealValue
		default:
			low += d.DealValue
		}
	}

	result.PipelineTotal = total
	result.PipelineTotalFmt = FormatINR(total)
	result.WeightedPipeline = weighted
	result.WeightedPipelineFmt = FormatINR(weighted)
	result.Count = len(open)
	result.BySector = sectorBreakdown(bySector)
	result.ClosingThisQuarter = closingQ
	result.ClosingThisQuarterFmt = FormatINR(closingQ)
	result.ClosingThisQuarterDeals = closingCount
	result.HighProbPipeline = high
	result.HighProbPipelineFmt = FormatINR(high)
	result.MidProbPipeline = mid
	result.MidProbPipelineFmt = FormatINR(mid)
	result.LowProbPipeline = low
	result.LowProbPipelineFmt = FormatINR(low)

	return result, nil
}
