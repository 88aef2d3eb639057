package analytics

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

func TestOperationsEmptyInputIsError(t *testing.T) {
	_, err := Operations(nil)
	assert.ErrorIs(t, err, ErrNoWorkOrders)
}

func TestOperationsRollup(t *testing.T) {
	workOrders := []domain.WorkOrderRecord{
		{WOName: "1", Sector: "mining", ExecStatus: domain.ExecStatusOngoing, IsActive: true, AmountExclGST: 400000, BilledExclGST: 100000, UnbilledAmount: 300000},
		{WOName: "2", Sector: "energy", ExecStatus: domain.ExecStatusPending, IsActive: true, AmountExclGST: 200000, UnbilledAmount: 200000},
		{WOName: "3", Sector: "mining", ExecStatus: domain.ExecStatusPaused, IsActive: true, AmountExclGST: 100000, UnbilledAmount: 100000},
		{WOName: "4", Sector: "mining", ExecStatus: domain.ExecStatusCompleted, AmountExclGST: 900000, BilledExclGST: 900000},
		{WOName: "5", Sector: "energy", ExecStatus: domain.ExecStatusUnknown, AmountExclGST: 50000},
	}

	result, err := Operations(workOrders)
	require.NoError(t, err)

	assert.Equal(t, 5, result.TotalWorkOrders)
	assert.Equal(t, 3, result.ActiveCount)
	assert.Equal(t, 1, result.CompletedCount)
	assert.Equal(t, 1, result.PausedCount)
	assert.Equal(t, map[domain.ExecStatus]int{
		domain.ExecStatusOngoing:   1,
		domain.ExecStatusPending:   1,
		domain.ExecStatusPaused:    1,
		domain.ExecStatusCompleted: 1,
		domain.ExecStatusUnknown:   1,
	}, result.ByStatus)

	// Backlog sums unbilled amounts on active orders only.
	assert.Equal(t, 600000.0, result.Backlog)
	assert.Equal(t, 900000.0, result.CompletedRevenue)

	// Active-by-sector sums full amounts on active orders.
	require.Len(t, result.ActiveBySector, 2)
	assert.Equal(t, "mining", result.ActiveBySector[0].Sector)
	assert.Equal(t, 500000.0, result.ActiveBySector[0].Value)

	assert.Equal(t, "Low", result.OperationalRisk)
	assert.Contains(t, result.RiskNote, "3 active work orders")
}

func TestOperationalRiskTiers(t *testing.T) {
	tests := []struct {
		activeCount int
		risk        string
	}{
		{0, "Low"},
		{15, "Low"},
		{16, "Medium"},
		{30, "Medium"},
		{31, "High"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("active_%d", tt.activeCount), func(t *testing.T) {
			workOrders := make([]domain.WorkOrderRecord, 0, tt.activeCount+1)
			for i := 0; i < tt.activeCount; i++ {
				workOrders = append(workOrders, domain.WorkOrderRecord{
					WOName:     fmt.Sprintf("wo-%d", i),
					ExecStatus: domain.ExecStatusOngoing,
					IsActive:   true,
				})
			}
			workOrders = append(workOrders, domain.WorkOrderRecord{
				WOName:     "done",
				ExecStatus: domain.ExecStatusCompleted,
			})

			result, err := Operations(workOrders)
			require.NoError(t, err)
			assert.Equal(t, tt.risk, result.OperationalRisk)
			assert.Contains(t, result.RiskNote, fmt.Sprintf("%d active work orders", tt.activeCount))
		})
	}
}
