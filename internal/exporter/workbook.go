package exporter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apierrors "github.com/Johan-Arul/skylark-ai-agent/internal/errors"
	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// WorkbookExporter renders the leadership update as an Excel workbook.
type WorkbookExporter struct {
	outputDir string
}

// NewWorkbookExporter creates a workbook exporter rooted at outputDir.
func NewWorkbookExporter(outputDir string) *WorkbookExporter {
	return &WorkbookExporter{outputDir: outputDir}
}

// ExportLeadership writes a workbook with one sheet per report section
// and returns the full path of the written file.
func (e *WorkbookExporter) ExportLeadership(snapshot *domain.Snapshot, fileName string) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return "", apierrors.NewExportError("create output directory", err).WithContext("path", e.outputDir)
	}

	f := excelize.NewFile()
	defer f.Close()

	update := snapshot.Leadership

	if err := e.writeSummarySheet(f, update); err != nil {
		return "", err
	}
	if err := e.writeSectorSheet(f, "Pipeline by Sector", update.Pipeline.BySector); err != nil {
		return "", err
	}
	if err := e.writeSectorSheet(f, "Revenue by Sector", update.Revenue.BySector); err != nil {
		return "", err
	}
	if err := e.writeCaveatsSheet(f, update.DataQuality); err != nil {
		return "", err
	}

	// The default sheet is replaced by Summary
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return "", fmt.Errorf("delete default sheet: %w", err)
	}

	fullPath := filepath.Join(e.outputDir, fileName)
	if err := f.SaveAs(fullPath); err != nil {
		return "", apierrors.NewExportError("save workbook", err).WithContext("path", fullPath)
	}
	return fullPath, nil
}

func (e *WorkbookExporter) writeSummarySheet(f *excelize.File, update domain.LeadershipUpdate) error {
	const sheet = "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{update.Title, ""},
		{"Generated at", update.GeneratedAt},
		{"", ""},
		{"Pipeline", ""},
		{"Total open pipeline", update.Pipeline.TotalOpenPipeline},
		{"Weighted pipeline", update.Pipeline.WeightedPipeline},
		{"Closing this quarter", update.Pipeline.ClosingThisQuarter},
		{"", ""},
		{"Revenue", ""},
		{"Closed YTD", update.Revenue.ClosedYTD},
		{"Top sector", update.Revenue.TopSector},
		{"Top sector share %", update.Revenue.TopSectorSharePct},
		{"", ""},
		{"Operations", ""},
		{"Active work orders", update.Operations.ActiveWorkOrders},
		{"Completed work orders", update.Operations.CompletedWorkOrders},
		{"Backlog value", update.Operations.BacklogValue},
		{"Operational risk", update.Operations.OperationalRisk},
		{"", ""},
		{"Conversion", ""},
		{"Won-to-total rate %", update.Conversion.WonToTotalRatePct},
		{"WO coverage rate %", update.Conversion.WOCoverageRatePct},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(sheet, "A", "A", 28)
}

func (e *WorkbookExporter) writeSectorSheet(f *excelize.File, sheet string, breakdown []domain.SectorAmount) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	header := []interface{}{"Sector", "Value", "Formatted"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, entry := range breakdown {
		row := []interface{}{entry.Sector, entry.Value, entry.ValueFmt}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+2, err)
		}
	}
	return f.SetColWidth(sheet, "A", "A", 24)
}

func (e *WorkbookExporter) writeCaveatsSheet(f *excelize.File, caveats domain.CaveatsReport) error {
	const sheet = "Data Quality"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Deals total", caveats.DealsTotal},
		{"Deals missing revenue %", caveats.DealsMissingRevenuePct},
		{"Deals missing sector %", caveats.DealsMissingSectorPct},
		{"Deals missing close date %", caveats.DealsMissingCloseDatePct},
		{"Work orders total", caveats.WOTotal},
		{"WOs missing amount %", caveats.WOMissingAmountPct},
		{"WOs missing sector %", caveats.WOMissingSectorPct},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write caveats row %d: %w", i+1, err)
		}
	}
	return f.SetColWidth(sheet, "A", "A", 28)
}
