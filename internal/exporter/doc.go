// Package exporter writes analytics artifacts to disk.
//
// This package contains three main components:
//
// CSVWriter: Core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility.
//
// RecordExporter: Exports the canonical deal and work order record sets
// as CSV files for downstream inspection.
//
// WorkbookExporter: Renders the leadership update as a multi-sheet
// Excel workbook.
//
// Example usage:
//
//	records := exporter.NewRecordExporter("exports")
//	err := records.ExportDeals(snapshot.Deals, "deals.csv")
//
//	workbook := exporter.NewWorkbookExporter("exports")
//	path, err := workbook.ExportLeadership(snapshot, "leadership.xlsx")
package exporter
