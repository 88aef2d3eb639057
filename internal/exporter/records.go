package exporter

import (
	"time"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// RecordExporter writes the canonical record sets as CSV files.
type RecordExporter struct {
	csv *CSVWriter
}

// NewRecordExporter creates a record exporter rooted at outputDir.
func NewRecordExporter(outputDir string) *RecordExporter {
	return &RecordExporter{csv: NewCSVWriter(outputDir)}
}

var dealHeaders = []string{
	"deal_name", "owner", "client", "status", "stage", "sector",
	"deal_value", "probability", "weighted_value", "close_date",
	"created_date", "product",
}

// ExportDeals writes the deal records to fileName under the output
// directory.
func (e *RecordExporter) ExportDeals(deals []domain.DealRecord, fileName string) error {
	records := make([][]string, 0, len(deals))
	for _, d := range deals {
		records = append(records, []string{
			d.DealName,
			d.OwnerCode,
			d.ClientCode,
			string(d.Status),
			d.Stage,
			d.Sector,
			formatFloat(d.DealValue),
			formatFloat(d.Probability),
			formatFloat(d.WeightedValue),
			formatDate(d.CloseDate),
			formatDate(d.CreatedDate),
			d.Product,
		})
	}
	return e.csv.WriteSimpleCSV(fileName, dealHeaders, records)
}

var workOrderHeaders = []string{
	"wo_name", "deal_name_linked", "sector", "exec_status", "is_active",
	"amount_excl_gst", "billed_excl_gst", "unbilled_amount", "wo_status",
	"nature_of_work", "owner", "start_date", "end_date",
}

// ExportWorkOrders writes the work order records to fileName under the
// output directory.
func (e *RecordExporter) ExportWorkOrders(workOrders []domain.WorkOrderRecord, fileName string) error {
	records := make([][]string, 0, len(workOrders))
	for _, wo := range workOrders {
		records = append(records, []string{
			wo.WOName,
			wo.DealNameLinked,
			wo.Sector,
			string(wo.ExecStatus),
			formatBool(wo.IsActive),
			formatFloat(wo.AmountExclGST),
			formatFloat(wo.BilledExclGST),
			formatFloat(wo.UnbilledAmount),
			wo.WOStatus,
			wo.NatureOfWork,
			wo.OwnerCode,
			formatDate(wo.StartDate),
			formatDate(wo.EndDate),
		})
	}
	return e.csv.WriteSimpleCSV(fileName, workOrderHeaders, records)
}

// formatDate renders a date column, empty for missing dates.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
