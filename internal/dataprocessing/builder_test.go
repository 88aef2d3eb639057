package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

func dealsSchema() domain.Schema {
	return domain.Schema{
		BoardID:   "101",
		BoardName: "Deals",
		Columns: []domain.Column{
			{ID: "status_1", Title: "Deal Status", Type: "status"},
			{ID: "stage_1", Title: "Deal Stage", Type: "status"},
			{ID: "sector_1", Title: "Sector / Service Line", Type: "dropdown"},
			{ID: "numbers_1", Title: "Deal Value (Masked)", Type: "numbers"},
			{ID: "date_1", Title: "Actual Close Date (A)", Type: "date"},
			{ID: "date_2", Title: "Tentative Close Date", Type: "date"},
			{ID: "prob_1", Title: "Closure Probability", Type: "dropdown"},
			{ID: "people_1", Title: "Deal Owner", Type: "people"},
			{ID: "text_1", Title: "Client Company", Type: "text"},
			{ID: "text_2", Title: "Product", Type: "text"},
		},
	}
}

func TestResolveColumn(t *testing.T) {
	schema := dealsSchema()
	item := domain.RawItem{
		domain.KeyItemName: "Deal A",
		"numbers_1":        "10k",
		"sector_1":         "Energy",
	}

	assert.Equal(t, "10k", ResolveColumn(item, schema, []string{"value", "masked"}))
	assert.Equal(t, "Energy", ResolveColumn(item, schema, []string{"sector", "service"}))
	assert.Equal(t, "", ResolveColumn(item, schema, []string{"invoice number"}))
}

// Two columns can hit the same keyword; the earlier schema column wins.
func TestResolveColumnFirstMatchWins(t *testing.T) {
	schema := domain.Schema{
		Columns: []domain.Column{
			{ID: "a", Title: "Deal Status"},
			{ID: "b", Title: "Billing Status"},
		},
	}
	item := domain.RawItem{"a": "won", "b": "invoiced"}

	assert.Equal(t, "won", ResolveColumn(item, schema, []string{"status"}))
}

func TestBuildDealRecords(t *testing.T) {
	schema := dealsSchema()
	items := []domain.RawItem{
		{
			domain.KeyItemID:   "1",
			domain.KeyItemName: "Mining Survey - Acme",
			"status_1":         "Won",
			"stage_1":          "h. Work Order Received",
			"sector_1":         "Mining",
			"numbers_1":        "₹5,00,000",
			"date_1":           "15/06/2025",
			"prob_1":           "High",
			"people_1":         "RK",
			"text_1":           "ACME",
			"text_2":           "DMO",
		},
		{
			domain.KeyItemID:   "2",
			domain.KeyItemName: "Solar Audit - Beta",
			"stage_1":          "f. Negotiations",
			"numbers_1":        "2L",
			"date_2":           "2025-09-30",
			"prob_1":           "Medium",
		},
	}

	records := BuildDealRecords(items, schema)
	require.Len(t, records, 2)

	won := records[0]
	assert.Equal(t, "Mining Survey - Acme", won.DealName)
	assert.Equal(t, domain.DealStatusWon, won.Status)
	assert.Equal(t, "h. work order received", won.Stage)
	assert.Equal(t, "mining", won.Sector)
	assert.Equal(t, 500000.0, won.DealValue)
	assert.Equal(t, 0.80, won.Probability)
	assert.Equal(t, 400000.0, won.WeightedValue)
	assert.Equal(t, time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC), won.CloseDate)
	assert.Equal(t, "RK", won.OwnerCode)
	assert.Equal(t, "ACME", won.ClientCode)
	assert.Equal(t, "DMO", won.Product)

	open := records[1]
	assert.Equal(t, domain.DealStatusOpen, open.Status)
	assert.Equal(t, "unknown", open.Sector)
	assert.Equal(t, 200000.0, open.DealValue)
	// Tentative date fills in when no actual close date exists.
	assert.Equal(t, time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC), open.CloseDate)
	assert.Equal(t, 100000.0, open.WeightedValue)
}

func TestBuildDealRecordsSkipsHeaderRows(t *testing.T) {
	schema := dealsSchema()
	items := []domain.RawItem{
		{domain.KeyItemName: "Deal Name"},
		{domain.KeyItemName: "  "},
		{domain.KeyItemName: "Real Deal"},
	}

	records := BuildDealRecords(items, schema)
	require.Len(t, records, 1)
	assert.Equal(t, "Real Deal", records[0].DealName)
}

func TestBuildDealRecordsEmptyInput(t *testing.T) {
	records := BuildDealRecords(nil, dealsSchema())
	require.NotNil(t, records)
	assert.Empty(t, records)
}

// Malformed cells default instead of failing the row.
func TestBuildDealRecordsMalformedRow(t *testing.T) {
	schema := dealsSchema()
	items := []domain.RawItem{
		{
			domain.KeyItemName: "Mystery Deal",
			"numbers_1":        "ask finance",
			"date_1":           "sometime next year",
			"prob_1":           "definitely",
		},
	}

	records := BuildDealRecords(items, schema)
	require.Len(t, records, 1)
	assert.Equal(t, 0.0, records[0].DealValue)
	assert.Equal(t, 0.0, records[0].Probability)
	assert.Equal(t, 0.0, records[0].WeightedValue)
	assert.False(t, records[0].HasCloseDate())
	assert.Equal(t, domain.DealStatusOpen, records[0].Status)
}

func workOrdersSchema() domain.Schema {
	return domain.Schema{
		BoardID:   "202",
		BoardName: "Work Orders",
		Columns: []domain.Column{
			{ID: "deal_1", Title: "Deal Name", Type: "text"},
			{ID: "exec_1", Title: "Execution Status", Type: "status"},
			{ID: "sector_1", Title: "Sector", Type: "dropdown"},
			{ID: "amt_1", Title: "Amount in Rupees (Excl. of GST)", Type: "numbers"},
			{ID: "amt_2", Title: "Amount in Rupees (Incl. of GST)", Type: "numbers"},
			{ID: "billed_1", Title: "Billed Value in Rupees (Excl. of GST)", Type: "numbers"},
			{ID: "wostat_1", Title: "WO Status", Type: "status"},
			{ID: "date_1", Title: "Probable Start Date", Type: "date"},
			{ID: "date_2", Title: "Probable End Date", Type: "date"},
			{ID: "nature_1", Title: "Nature of Work", Type: "text"},
			{ID: "owner_1", Title: "BD/KAM Owner", Type: "people"},
		},
	}
}

func TestBuildWorkOrderRecords(t *testing.T) {
	schema := workOrdersSchema()
	items := []domain.RawItem{
		{
			domain.KeyItemName: "WO-Acme-01",
			"deal_1":           "Mining Survey - Acme",
			"exec_1":           "Ongoing",
			"sector_1":         "Mining",
			"amt_1":            "4L",
			"billed_1":         "1L",
			"wostat_1":         "Invoiced",
			"nature_1":         "Survey",
			"owner_1":          "RK",
		},
		{
			// No excl-GST amount: incl-GST fallback applies. No linked
			// deal name: the WO's own name stands in.
			domain.KeyItemName: "WO-Standalone",
			"exec_1":           "Completed",
			"amt_2":            "90k",
			"billed_1":         "1.2L",
		},
	}

	records := BuildWorkOrderRecords(items, schema)
	require.Len(t, records, 2)

	ongoing := records[0]
	assert.Equal(t, "Mining Survey - Acme", ongoing.DealNameLinked)
	assert.Equal(t, domain.ExecStatusOngoing, ongoing.ExecStatus)
	assert.True(t, ongoing.IsActive)
	assert.Equal(t, 400000.0, ongoing.AmountExclGST)
	assert.Equal(t, 100000.0, ongoing.BilledExclGST)
	assert.Equal(t, 300000.0, ongoing.UnbilledAmount)
	assert.Equal(t, "invoiced", ongoing.WOStatus)

	completed := records[1]
	assert.Equal(t, "WO-Standalone", completed.DealNameLinked)
	assert.Equal(t, domain.ExecStatusCompleted, completed.ExecStatus)
	assert.False(t, completed.IsActive)
	assert.Equal(t, 90000.0, completed.AmountExclGST)
	// Billed above amount clamps unbilled at zero, never negative.
	assert.Equal(t, 0.0, completed.UnbilledAmount)
}

func TestBuildWorkOrderRecordsEmptyInput(t *testing.T) {
	records := BuildWorkOrderRecords([]domain.RawItem{}, workOrdersSchema())
	require.NotNil(t, records)
	assert.Empty(t, records)
}

func TestComputeCaveats(t *testing.T) {
	deals := make([]domain.DealRecord, 0, 20)
	for i := 0; i < 20; i++ {
		d := domain.DealRecord{
			DealName:  "Deal",
			Sector:    "energy",
			DealValue: 100000,
			CloseDate: time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC),
		}
		if i < 3 {
			d.DealValue = 0 // 15% missing
		}
		if i < 5 {
			d.CloseDate = time.Time{} // 25% missing
		}
		if i < 1 {
			d.Sector = "unknown" // 5% missing
		}
		deals = append(deals, d)
	}

	workOrders := []domain.WorkOrderRecord{
		{WOName: "WO1", Sector: "energy", AmountExclGST: 100000},
		{WOName: "WO2", Sector: "unknown", AmountExclGST: 0},
	}

	report := ComputeCaveats(deals, workOrders)
	assert.Equal(t, 15.0, report.DealsMissingRevenuePct)
	assert.Equal(t, 25.0, report.DealsMissingCloseDatePct)
	assert.Equal(t, 5.0, report.DealsMissingSectorPct)
	assert.Equal(t, 20, report.DealsTotal)
	assert.Equal(t, 50.0, report.WOMissingAmountPct)
	assert.Equal(t, 50.0, report.WOMissingSectorPct)
	assert.Equal(t, 2, report.WOTotal)
}

func TestComputeCaveatsEmptySets(t *testing.T) {
	report := ComputeCaveats(nil, nil)
	assert.Equal(t, domain.CaveatsReport{}, report)
}
