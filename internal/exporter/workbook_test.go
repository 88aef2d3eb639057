package exporter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

func TestExportLeadership(t *testing.T) {
	dir := t.TempDir()
	e := NewWorkbookExporter(dir)

	snapshot := &domain.Snapshot{
		Leadership: domain.LeadershipUpdate{
			Title:       "Leadership Update — Q2 FY2026",
			GeneratedAt: "01 Jun 2026, 10:00 IST",
			Pipeline: domain.LeadershipPipeline{
				TotalOpenPipeline:  "₹8.0L",
				WeightedPipeline:   "₹4.0L",
				ClosingThisQuarter: "₹8.0L",
				BySector: []domain.SectorAmount{
					{Sector: "infrastructure", Value: 800000, ValueFmt: "₹8.0L"},
				},
			},
			Revenue: domain.LeadershipRevenue{
				ClosedYTD:         "₹12.0L",
				TopSector:         "energy",
				TopSectorSharePct: 100,
				BySector: []domain.SectorAmount{
					{Sector: "energy", Value: 1200000, ValueFmt: "₹12.0L"},
				},
			},
			Operations: domain.LeadershipOperations{
				ActiveWorkOrders: 1,
				BacklogValue:     "₹8.0L",
				OperationalRisk:  "low",
			},
			Conversion: domain.LeadershipConversion{
				WonToTotalRatePct: 50,
				WOCoverageRatePct: 100,
			},
			DataQuality: domain.CaveatsReport{DealsTotal: 2, WOTotal: 1},
		},
	}

	path, err := e.ExportLeadership(snapshot, "leadership.xlsx")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Summary")
	assert.Contains(t, sheets, "Pipeline by Sector")
	assert.Contains(t, sheets, "Revenue by Sector")
	assert.Contains(t, sheets, "Data Quality")
	assert.NotContains(t, sheets, "Sheet1")

	title, err := f.GetCellValue("Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, snapshot.Leadership.Title, title)

	sector, err := f.GetCellValue("Revenue by Sector", "A2")
	require.NoError(t, err)
	assert.Equal(t, "energy", sector)
}
