package analytics

import (
	"sort"
	"strings"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// CrossBoard links deals with work orders by case- and whitespace-
// normalized name equality and computes conversion metrics. Exact
// match after normalization is the contract; names that differ by
// punctuation or abbreviation silently fail to link, an accepted
// imprecision of the source data.
func CrossBoard(deals []domain.DealRecord, workOrders []domain.WorkOrderRecord) (domain.CrossBoardAnalysis, error) {
	if len(deals) == 0 {
		return domain.CrossBoardAnalysis{}, ErrNoDeals
	}
	if len(workOrders) == 0 {
		return domain.CrossBoardAnalysis{}, ErrNoWorkOrders
	}

	woNames := make(map[string]struct{}, len(workOrders))
	woBySector := make(map[string]float64)
	var totalWOValue float64
	for _, wo := range workOrders {
		woNames[normalizeName(wo.DealNameLinked)] = struct{}{}
		woBySector[wo.Sector] += wo.AmountExclGST
		totalWOValue += wo.AmountExclGST
	}

	wonBySector := make(map[string]float64)
	var wonCount, openWonCount, matched int
	var totalPipeline, closedRevenue float64
	seenWonNames := make(map[string]struct{})

	for _, d := range deals {
		switch d.Status {
		case domain.DealStatusWon:
			wonCount++
			openWonCount++
			closedRevenue += d.DealValue
			wonBySector[d.Sector] += d.DealValue

			name := normalizeName(d.DealName)
			if _, dup := seenWonNames[name]; dup {
				continue
			}
			seenWonNames[name] = struct{}{}
			if _, ok := woNames[name]; ok {
				matched++
			}
		case domain.DealStatusOpen:
			openWonCount++
			totalPipeline += d.DealValue
		}
	}

	var conversionRate, coverageRate float64
	if openWonCount > 0 {
		conversionRate = round1(100 * float64(wonCount) / float64(openWonCount))
	}
	if wonCount > 0 {
		coverageRate = round1(100 * float64(matched) / float64(wonCount))
	}

	return domain.CrossBoardAnalysis{
		WonDealsCount:     wonCount,
		ConversionRatePct: conversionRate,
		WOCoverageRatePct: coverageRate,
		TotalPipeline:     totalPipeline,
		TotalPipelineFmt:  FormatINR(totalPipeline),
		ClosedRevenue:     closedRevenue,
		ClosedRevenueFmt:  FormatINR(closedRevenue),
		TotalWOValue:      totalWOValue,
		TotalWOValueFmt:   FormatINR(totalWOValue),
		SectorPerformance: sectorPerformance(wonBySector, woBySector),
	}, nil
}

// normalizeName collapses case and surrounding whitespace for the
// linkage key. No fuzzy matching beyond this.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// sectorPerformance compares won pipeline value against realized work
// order value across the union of sectors from both boards.
func sectorPerformance(wonBySector, woBySector map[string]float64) []domain.SectorPerformance {
	sectors := make(map[string]struct{}, len(wonBySector)+len(woBySector))
	for s := range wonBySector {
		sectors[s] = struct{}{}
	}
	for s := range woBySector {
		sectors[s] = struct{}{}
	}

	out := make([]domain.SectorPerformance, 0, len(sectors))
	for s := range sectors {
		won := wonBySector[s]
		wo := woBySector[s]
		var realization float64
		if won > 0 {
			realization = round1(wo / won * 100)
		}
		out = append(out, domain.SectorPerformance{
			Sector:             s,
			WonValue:           won,
			WonValueFmt:        FormatINR(won),
			WOValue:            wo,
			WOValueFmt:         FormatINR(wo),
			RealizationRatePct: realization,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].WonValue != out[j].WonValue {
			return out[i].WonValue > out[j].WonValue
		}
		return out[i].Sector < out[j].Sector
	})
	return out
}
