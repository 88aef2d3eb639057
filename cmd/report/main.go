package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Johan-Arul/skylark-ai-agent/internal/analytics"
	"github.com/Johan-Arul/skylark-ai-agent/internal/config"
	"github.com/Johan-Arul/skylark-ai-agent/internal/exporter"
	"github.com/Johan-Arul/skylark-ai-agent/internal/infrastructure"
	"github.com/Johan-Arul/skylark-ai-agent/internal/monday"
	"github.com/Johan-Arul/skylark-ai-agent/internal/services"
)

// report is a one-shot CLI: fetch both boards, rebuild the snapshot and
// print the leadership update, optionally exporting the workbook and
// the canonical record sets.
func main() {
	var (
		xlsxOut = flag.String("xlsx", "", "write the leadership workbook to this file (relative to the export dir)")
		csvOut  = flag.Bool("csv", false, "export canonical deals and work orders as CSV")
	)
	flag.Parse()

	if err := run(*xlsxOut, *csvOut); err != nil {
		fmt.Fprintf(os.Stderr, "report: %v\n", err)
		os.Exit(1)
	}
}

func run(xlsxOut string, csvOut bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Keep stdout clean for the report text
	cfg.Logging.Output = "file"
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	defer infrastructure.CloseLogFile()

	client := monday.NewClient(cfg.Monday.APIToken, logger,
		monday.WithPageSize(cfg.Monday.PageSize),
		monday.WithHTTPClient(&http.Client{Timeout: cfg.Monday.RequestTimeout}),
	)

	store := services.NewSnapshotStore()
	refresh := services.NewRefreshService(
		client,
		store,
		cfg.Monday.DealsBoardID,
		cfg.Monday.WorkOrdersBoardID,
		cfg.Refresh.Timeout,
		nil,
		nil,
		logger,
	)

	snapshot, err := refresh.Refresh(context.Background())
	if err != nil {
		return fmt.Errorf("refresh snapshot: %w", err)
	}

	fmt.Println(analytics.FormatLeadershipUpdate(snapshot.Leadership))

	if xlsxOut != "" {
		workbook := exporter.NewWorkbookExporter(cfg.Export.OutputDir)
		path, err := workbook.ExportLeadership(snapshot, xlsxOut)
		if err != nil {
			return fmt.Errorf("export workbook: %w", err)
		}
		fmt.Fprintf(os.Stderr, "workbook written to %s\n", path)
	}

	if csvOut {
		records := exporter.NewRecordExporter(cfg.Export.OutputDir)
		if err := records.ExportDeals(snapshot.Deals, "deals.csv"); err != nil {
			return fmt.Errorf("export deals: %w", err)
		}
		if err := records.ExportWorkOrders(snapshot.WorkOrders, "work_orders.csv"); err != nil {
			return fmt.Errorf("export work orders: %w", err)
		}
		fmt.Fprintf(os.Stderr, "records written to %s\n", cfg.Export.OutputDir)
	}

	logger.Info("report complete",
		slog.String("snapshot_id", snapshot.ID),
		slog.Int("deals", len(snapshot.Deals)),
		slog.Int("work_orders", len(snapshot.WorkOrders)))
	return nil
}
