package domain

import "time"

// Snapshot is one atomically-built view of both boards: the canonical
// record sets plus every derived analytics result, computed together.
// Records never exist in a snapshot without their dependent analytics.
// A snapshot is immutable once built; refresh replaces it wholesale.
type Snapshot struct {
	ID              string             `json:"id"`
	RefreshedAt     time.Time          `json:"refreshed_at"`
	Deals           []DealRecord       `json:"deals"`
	WorkOrders      []WorkOrderRecord  `json:"work_orders"`
	Caveats         CaveatsReport      `json:"caveats"`
	RevenueYTD      RevenueAnalytics   `json:"revenue_ytd"`
	PipelineQuarter PipelineHealth     `json:"pipeline_this_quarter"`
	Operations      OperationalMetrics `json:"operations"`
	CrossBoard      CrossBoardAnalysis `json:"cross_board"`
	Leadership      LeadershipUpdate   `json:"leadership_update"`
}

// Counts returns the record totals, used for refresh summaries.
func (s *Snapshot) Counts() (deals, workOrders int) {
	return len(s.Deals), len(s.WorkOrders)
}
