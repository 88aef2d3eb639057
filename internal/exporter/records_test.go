package exporter

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/Johan-Arul/skylark-ai-agent/internal/errors"
	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Strip the UTF-8 BOM written for Excel
	content := strings.TrimPrefix(string(data), "\xEF\xBB\xBF")
	rows, err := csv.NewReader(strings.NewReader(content)).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportDeals(t *testing.T) {
	dir := t.TempDir()
	e := NewRecordExporter(dir)

	deals := []domain.DealRecord{
		{
			DealName:      "Acme Pipeline Survey",
			OwnerCode:     "JD",
			Status:        domain.DealStatusWon,
			Stage:         "h. work order received",
			Sector:        "energy",
			DealValue:     1200000,
			Probability:   0.8,
			WeightedValue: 960000,
			CloseDate:     time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			DealName: "Globex Mapping",
			Status:   domain.DealStatusOpen,
			Sector:   "unknown",
		},
	}

	require.NoError(t, e.ExportDeals(deals, "deals.csv"))

	rows := readCSV(t, filepath.Join(dir, "deals.csv"))
	require.Len(t, rows, 3)
	assert.Equal(t, dealHeaders, rows[0])
	assert.Equal(t, "Acme Pipeline Survey", rows[1][0])
	assert.Equal(t, "Won", rows[1][3])
	assert.Equal(t, "1200000.00", rows[1][6])
	assert.Equal(t, "2026-05-10", rows[1][9])
	// Missing dates export as empty cells
	assert.Equal(t, "", rows[2][9])
}

func TestExportWorkOrders(t *testing.T) {
	dir := t.TempDir()
	e := NewRecordExporter(dir)

	workOrders := []domain.WorkOrderRecord{
		{
			WOName:         "WO-Acme",
			DealNameLinked: "Acme Pipeline Survey",
			Sector:         "energy",
			ExecStatus:     domain.ExecStatusOngoing,
			IsActive:       true,
			AmountExclGST:  1200000,
			BilledExclGST:  400000,
			UnbilledAmount: 800000,
		},
	}

	require.NoError(t, e.ExportWorkOrders(workOrders, "work_orders.csv"))

	rows := readCSV(t, filepath.Join(dir, "work_orders.csv"))
	require.Len(t, rows, 2)
	assert.Equal(t, workOrderHeaders, rows[0])
	assert.Equal(t, "WO-Acme", rows[1][0])
	assert.Equal(t, "Ongoing", rows[1][3])
	assert.Equal(t, "true", rows[1][4])
	assert.Equal(t, "800000.00", rows[1][7])
}

func TestExportFailureIsTyped(t *testing.T) {
	// Using a regular file as the output directory makes MkdirAll fail.
	blocked := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

	e := NewRecordExporter(blocked)
	err := e.ExportDeals(nil, "deals.csv")
	require.Error(t, err)

	var appErr *apierrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apierrors.ErrTypeExport, appErr.Type)
}

func TestExportEmptyRecords(t *testing.T) {
	dir := t.TempDir()
	e := NewRecordExporter(dir)

	require.NoError(t, e.ExportDeals(nil, "deals.csv"))

	rows := readCSV(t, filepath.Join(dir, "deals.csv"))
	require.Len(t, rows, 1, "headers only")
}
