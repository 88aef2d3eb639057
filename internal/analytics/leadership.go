package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// Caveat reporting thresholds. A data quality signal only surfaces in
// rendered output above its threshold; these are policy constants and
// must not be computed adaptively.
const (
	caveatDealValuePct     = 10
	caveatDealSectorPct    = 10
	caveatDealCloseDatePct = 20
	caveatWOAmountPct      = 10
)

// GenerateLeadershipUpdate composes the executive summary: revenue
// year to date, pipeline for the current quarter, operations and
// cross-board conversion over the full book.
func GenerateLeadershipUpdate(deals []domain.DealRecord, workOrders []domain.WorkOrderRecord, caveats domain.CaveatsReport, now time.Time) (domain.LeadershipUpdate, error) {
	rev, err := Revenue(deals, domain.PeriodYTD, now)
	if err != nil {
		return domain.LeadershipUpdate{}, err
	}
	pipe, err := Pipeline(deals, domain.PeriodThisQuarter, now)
	if err != nil {
		return domain.LeadershipUpdate{}, err
	}
	ops, err := Operations(workOrders)
	if err != nil {
		return domain.LeadershipUpdate{}, err
	}
	cross, err := CrossBoard(deals, workOrders)
	if err != nil {
		return domain.LeadershipUpdate{}, err
	}

	quarter := (int(now.Month())-1)/3 + 1

	return domain.LeadershipUpdate{
		Title:       fmt.Sprintf("Leadership Update — Q%d FY%d", quarter, now.Year()),
		GeneratedAt: now.Format("02 Jan 2006, 15:04 IST"),
		Pipeline: domain.LeadershipPipeline{
			TotalOpenPipeline:  pipe.PipelineTotalFmt,
			WeightedPipeline:   pipe.WeightedPipelineFmt,
			ClosingThisQuarter: pipe.ClosingThisQuarterFmt,
			BySector:           pipe.BySector,
		},
		Revenue: domain.LeadershipRevenue{
			ClosedYTD:         rev.ClosedTotalFmt,
			TopSector:         rev.TopSector,
			TopSectorSharePct: rev.TopSectorPct,
			BySector:          rev.BySector,
		},
		Operations: domain.LeadershipOperations{
			ActiveWorkOrders:    ops.ActiveCount,
			CompletedWorkOrders: ops.CompletedCount,
			BacklogValue:        ops.BacklogFmt,
			OperationalRisk:     ops.OperationalRisk,
			RiskNote:            ops.RiskNote,
		},
		Conversion: domain.LeadershipConversion{
			WonToTotalRatePct: cross.ConversionRatePct,
			WOCoverageRatePct: cross.WOCoverageRatePct,
		},
		DataQuality: caveats,
	}, nil
}

// CaveatLines renders the data quality warnings that exceed their
// reporting thresholds. An empty slice means nothing is worth flagging.
func CaveatLines(c domain.CaveatsReport) []string {
	var lines []string
	if c.DealsMissingRevenuePct > caveatDealValuePct {
		lines = append(lines, fmt.Sprintf("%.1f%% of deals have no deal value — revenue figures may be understated.", c.DealsMissingRevenuePct))
	}
	if c.DealsMissingSectorPct > caveatDealSectorPct {
		lines = append(lines, fmt.Sprintf("%.1f%% of deals have no sector — sector breakdowns are partial.", c.DealsMissingSectorPct))
	}
	if c.DealsMissingCloseDatePct > caveatDealCloseDatePct {
		lines = append(lines, fmt.Sprintf("%.1f%% of deals have no close date — time-based filters may miss some deals.", c.DealsMissingCloseDatePct))
	}
	if c.WOMissingAmountPct > caveatWOAmountPct {
		lines = append(lines, fmt.Sprintf("%.1f%% of work orders have no amount — revenue from operations may be understated.", c.WOMissingAmountPct))
	}
	return lines
}

// FormatCaveatsText joins the surfaced caveat warnings for plain-text
// consumers, or returns "" when none exceed threshold.
func FormatCaveatsText(c domain.CaveatsReport) string {
	lines := CaveatLines(c)
	if len(lines) == 0 {
		return ""
	}
	for i, line := range lines {
		lines[i] = "⚠️ " + line
	}
	return strings.Join(lines, "\n")
}

// FormatLeadershipUpdate renders the update as a markdown document in
// fixed section order: pipeline, revenue, operations, conversion, then
// caveats. The caveats section is omitted entirely when no signal
// exceeds its threshold.
func FormatLeadershipUpdate(u domain.LeadershipUpdate) string {
	lines := []string{
		fmt.Sprintf("## 📊 %s", u.Title),
		fmt.Sprintf("*Generated: %s*", u.GeneratedAt),
		"",
		"### 💰 Pipeline",
		fmt.Sprintf("- **Total Open Pipeline:** %s", u.Pipeline.TotalOpenPipeline),
		fmt.Sprintf("- **Weighted Pipeline:** %s", u.Pipeline.WeightedPipeline),
		fmt.Sprintf("- **Closing This Quarter:** %s", u.Pipeline.ClosingThisQuarter),
	}

	if len(u.Pipeline.BySector) > 0 {
		lines = append(lines, "- **By Sector:**")
		for i, s := range u.Pipeline.BySector {
			if i == 5 {
				break
			}
			lines = append(lines, fmt.Sprintf("  - %s: %s", titleCase(s.Sector), s.ValueFmt))
		}
	}

	lines = append(lines,
		"",
		"### 📈 Revenue (YTD)",
		fmt.Sprintf("- **Closed Revenue:** %s", u.Revenue.ClosedYTD),
		fmt.Sprintf("- **Top Sector:** %s (%.1f%% of closed revenue)", titleCase(u.Revenue.TopSector), u.Revenue.TopSectorSharePct),
		"",
		"### 🔧 Operations",
		fmt.Sprintf("- **Active Work Orders:** %d", u.Operations.ActiveWorkOrders),
		fmt.Sprintf("- **Completed Work Orders:** %d", u.Operations.CompletedWorkOrders),
		fmt.Sprintf("- **Unbilled Backlog:** %s", u.Operations.BacklogValue),
		fmt.Sprintf("- **Operational Risk:** %s — %s", u.Operations.OperationalRisk, u.Operations.RiskNote),
		"",
		"### 🔄 Conversion",
		fmt.Sprintf("- **Deal Win Rate:** %.1f%%", u.Conversion.WonToTotalRatePct),
		fmt.Sprintf("- **Won → Work Order Coverage:** %.1f%%", u.Conversion.WOCoverageRatePct),
	)

	if caveats := CaveatLines(u.DataQuality); len(caveats) > 0 {
		lines = append(lines, "", "### ⚠️ Data Caveats")
		for _, c := range caveats {
			lines = append(lines, "- "+c)
		}
	}

	return strings.Join(lines, "\n")
}

// titleCase capitalizes each space-separated word of a lowercased
// sector label for display.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
