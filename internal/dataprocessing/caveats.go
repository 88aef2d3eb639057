package dataprocessing

import (
	"math"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// ComputeCaveats measures how much of each record set is missing its
// economically significant fields. An empty record set contributes
// nothing for that entity; there is never a division by zero.
func ComputeCaveats(deals []domain.DealRecord, workOrders []domain.WorkOrderRecord) domain.CaveatsReport {
	var report domain.CaveatsReport

	if n := len(deals); n > 0 {
		var noValue, noSector, noCloseDate int
		for _, d := range deals {
			if d.DealValue == 0 {
				noValue++
			}
			if d.Sector == "unknown" {
				noSector++
			}
			if !d.HasCloseDate() {
				noCloseDate++
			}
		}
		report.DealsMissingRevenuePct = percent(noValue, n)
		report.DealsMissingSectorPct = percent(noSector, n)
		report.DealsMissingCloseDatePct = percent(noCloseDate, n)
		report.DealsTotal = n
	}

	if n := len(workOrders); n > 0 {
		var noAmount, noSector int
		for _, wo := range workOrders {
			if wo.AmountExclGST == 0 {
				noAmount++
			}
			if wo.Sector == "unknown" {
				noSector++
			}
		}
		report.WOMissingAmountPct = percent(noAmount, n)
		report.WOMissingSectorPct = percent(noSector, n)
		report.WOTotal = n
	}

	return report
}

// percent returns 100*part/total rounded to one decimal place.
func percent(part, total int) float64 {
	return math.Round(100*float64(part)/float64(total)*10) / 10
}
