package analytics

import (
	"fmt"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// Active work order counts at which operational risk escalates.
const (
	highRiskActiveCount   = 30
	mediumRiskActiveCount = 15
)

// Operations computes work order execution metrics. Unlike the deal
// rollups it takes no period: operational load is always assessed on
// the whole book.
func Operations(workOrders []domain.WorkOrderRecord) (domain.OperationalMetrics, error) {
	if len(workOrders) == 0 {
		return domain.OperationalMetrics{}, ErrNoWorkOrders
	}

	byStatus := make(map[domain.ExecStatus]int)
	activeBySector := make(map[string]float64)
	var activeCount, completedCount, pausedCount int
	var backlog, completedRevenue float64

	for _, wo := range workOrders {
		byStatus[wo.ExecStatus]++

		if wo.IsActive {
			activeCount++
			activeBySector[wo.Sector] += wo.AmountExclGST
			backlog += wo.UnbilledAmount
		}
		switch wo.ExecStatus {
		case domain.ExecStatusCompleted:
			completedCount++
			completedRevenue += wo.AmountExclGST
		case domain.ExecStatusPaused:
			pausedCount++
		}
	}

	risk, note := operationalRisk(activeCount)

	return domain.OperationalMetrics{
		TotalWorkOrders:     len(workOrders),
		ActiveCount:         activeCount,
		CompletedCount:      completedCount,
		PausedCount:         pausedCount,
		ByStatus:            byStatus,
		ActiveBySector:      sectorBreakdown(activeBySector),
		Backlog:             backlog,
		BacklogFmt:          FormatINR(backlog),
		CompletedRevenue:    completedRevenue,
		CompletedRevenueFmt: FormatINR(completedRevenue),
		OperationalRisk:     risk,
		RiskNote:            note,
	}, nil
}

// operationalRisk derives the three-tier risk label from the active
// count alone.
func operationalRisk(activeCount int) (risk, note string) {
	switch {
	case activeCount > highRiskActiveCount:
		return "High", fmt.Sprintf("%d active work orders — team may be stretched.", activeCount)
	case activeCount > mediumRiskActiveCount:
		return "Medium", fmt.Sprintf("%d active work orders — manageable load.", activeCount)
	default:
		return "Low", fmt.Sprintf("%d active work orders — comfortable capacity.", activeCount)
	}
}
