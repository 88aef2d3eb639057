package domain

// Period selects the date window analytics rollups operate over.
type Period string

const (
	PeriodAll         Period = ""
	PeriodThisMonth   Period = "this_month"
	PeriodThisQuarter Period = "this_quarter"
	PeriodYTD         Period = "ytd"
)

// Label returns the human-readable period name used in results.
func (p Period) Label() string {
	if p == PeriodAll {
		return "all time"
	}
	return string(p)
}

// SectorAmount is one entry of a per-sector value breakdown.
// Slices of SectorAmount are ordered by descending value.
type SectorAmount struct {
	Sector   string  `json:"sector"`
	Value    float64 `json:"value"`
	ValueFmt string  `json:"value_fmt"`
}

// MonthAmount is one entry of a per-month value breakdown, Month in
// "2006-01" form. Slices of MonthAmount are ordered chronologically.
type MonthAmount struct {
	Month    string  `json:"month"`
	Value    float64 `json:"value"`
	ValueFmt string  `json:"value_fmt"`
}

// RevenueAnalytics summarizes closed (Won) revenue for a period.
type RevenueAnalytics struct {
	ClosedTotal    float64        `json:"closed_total"`
	ClosedTotalFmt string         `json:"closed_total_fmt"`
	Count          int            `json:"count"`
	BySector       []SectorAmount `json:"by_sector"`
	ByMonth        []MonthAmount  `json:"by_month"`
	TopSector      string         `json:"top_sector"`
	TopSectorPct   float64        `json:"top_sector_pct"`
	Period         string         `json:"period"`
}

// PipelineHealth summarizes the open deal pipeline. The closing-this-
// quarter figures are always anchored to the current financial quarter
// regardless of the requested period.
type PipelineHealth struct {
	PipelineTotal           float64        `json:"pipeline_total"`
	PipelineTotalFmt        string         `json:"pipeline_total_fmt"`
	WeightedPipeline        float64        `json:"weighted_pipeline"`
	WeightedPipelineFmt     string         `json:"weighted_pipeline_fmt"`
	Count                   int            `json:"count"`
	BySector                []SectorAmount `json:"by_sector"`
	ClosingThisQuarter      float64        `json:"closing_this_quarter_value"`
	ClosingThisQuarterFmt   string         `json:"closing_this_quarter_value_fmt"`
	ClosingThisQuarterDeals int            `json:"closing_this_quarter_count"`
	HighProbPipeline        float64        `json:"high_prob_pipeline"`
	HighProbPipelineFmt     string         `json:"high_prob_pipeline_fmt"`
	MidProbPipeline         float64        `json:"mid_prob_pipeline"`
	MidProbPipelineFmt      string         `json:"mid_prob_pipeline_fmt"`
	LowProbPipeline         float64        `json:"low_prob_pipeline"`
	LowProbPipelineFmt      string         `json:"low_prob_pipeline_fmt"`
	Period                  string         `json:"period"`
}

// OperationalMetrics summarizes work order execution.
type OperationalMetrics struct {
	TotalWorkOrders     int                `json:"total_work_orders"`
	ActiveCount         int                `json:"active_count"`
	CompletedCount      int                `json:"completed_count"`
	PausedCount         int                `json:"paused_count"`
	ByStatus            map[ExecStatus]int `json:"by_status"`
	ActiveBySector      []SectorAmount     `json:"active_by_sector"`
	Backlog             float64            `json:"backlog_raw"`
	BacklogFmt          string             `json:"backlog_value"`
	CompletedRevenue    float64            `json:"completed_revenue_raw"`
	CompletedRevenueFmt string             `json:"completed_revenue"`
	OperationalRisk     string             `json:"operational_risk"`
	RiskNote            string             `json:"risk_note"`
}

// SectorPerformance compares won pipeline value against realized work
// order value for one sector.
type SectorPerformance struct {
	Sector             string  `json:"sector"`
	WonValue           float64 `json:"won_value"`
	WonValueFmt        string  `json:"won_pipeline"`
	WOValue            float64 `json:"wo_value_raw"`
	WOValueFmt         string  `json:"wo_value"`
	RealizationRatePct float64 `json:"realization_rate_pct"`
}

// CrossBoardAnalysis links deals with work orders by normalized name.
type CrossBoardAnalysis struct {
	WonDealsCount     int                 `json:"won_deals_count"`
	ConversionRatePct float64             `json:"conversion_rate_pct"`
	WOCoverageRatePct float64             `json:"wo_coverage_rate_pct"`
	TotalPipeline     float64             `json:"total_pipeline_raw"`
	TotalPipelineFmt  string              `json:"total_pipeline"`
	ClosedRevenue     float64             `json:"closed_revenue_raw"`
	ClosedRevenueFmt  string              `json:"closed_revenue"`
	TotalWOValue      float64             `json:"total_wo_value_raw"`
	TotalWOValueFmt   string              `json:"total_wo_value"`
	SectorPerformance []SectorPerformance `json:"sector_performance"`
}

// CaveatsReport holds data quality percentages for the canonical
// record sets. Percentages are rounded to one decimal place; fields
// for an empty record set stay zero.
type CaveatsReport struct {
	DealsMissingRevenuePct   float64 `json:"deals_missing_revenue_pct"`
	DealsMissingSectorPct    float64 `json:"deals_missing_sector_pct"`
	DealsMissingCloseDatePct float64 `json:"deals_missing_close_date_pct"`
	DealsTotal               int     `json:"deals_total"`
	WOMissingAmountPct       float64 `json:"wo_missing_amount_pct"`
	WOMissingSectorPct       float64 `json:"wo_missing_sector_pct"`
	WOTotal                  int     `json:"wo_total"`
}

// LeadershipUpdate is the composed executive summary.
type LeadershipUpdate struct {
	Title       string               `json:"title"`
	GeneratedAt string               `json:"generated_at"`
	Pipeline    LeadershipPipeline   `json:"pipeline"`
	Revenue     LeadershipRevenue    `json:"revenue"`
	Operations  LeadershipOperations `json:"operations"`
	Conversion  LeadershipConversion `json:"conversion"`
	DataQuality CaveatsReport        `json:"data_quality"`
}

// LeadershipPipeline is the pipeline section of the update.
type LeadershipPipeline struct {
	TotalOpenPipeline  string         `json:"total_open_pipeline"`
	WeightedPipeline   string         `json:"weighted_pipeline"`
	ClosingThisQuarter string         `json:"closing_this_quarter"`
	BySector           []SectorAmount `json:"by_sector"`
}

// LeadershipRevenue is the revenue section of the update.
type LeadershipRevenue struct {
	ClosedYTD         string         `json:"closed_ytd"`
	TopSector         string         `json:"top_sector"`
	TopSectorSharePct float64        `json:"top_sector_share_pct"`
	BySector          []SectorAmount `json:"by_sector"`
}

// LeadershipOperations is the operations section of the update.
type LeadershipOperations struct {
	ActiveWorkOrders    int    `json:"active_work_orders"`
	CompletedWorkOrders int    `json:"completed_work_orders"`
	BacklogValue        string `json:"backlog_value"`
	OperationalRisk     string `json:"operational_risk"`
	RiskNote            string `json:"risk_note"`
}

// LeadershipConversion is the conversion section of the update.
type LeadershipConversion struct {
	WonToTotalRatePct float64 `json:"won_to_total_rate_pct"`
	WOCoverageRatePct float64 `json:"wo_coverage_rate_pct"`
}
