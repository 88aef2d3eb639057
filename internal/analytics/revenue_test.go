package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

func TestRevenueEmptyInputIsError(t *testing.T) {
	_, err := Revenue(nil, domain.PeriodAll, time.Now())
	assert.ErrorIs(t, err, ErrNoDeals)
}

// An empty Won subset is a zero-valued result, not an error. Only a
// genuinely empty input set errors.
func TestRevenueNoWonDeals(t *testing.T) {
	deals := []domain.DealRecord{
		{DealName: "A", Status: domain.DealStatusOpen, DealValue: 100000},
		{DealName: "B", Status: domain.DealStatusDead, DealValue: 200000},
	}

	result, err := Revenue(deals, domain.PeriodAll, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.ClosedTotal)
	assert.Equal(t, "₹0", result.ClosedTotalFmt)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, result.BySector)
	assert.Empty(t, result.ByMonth)
}

func TestRevenueRollup(t *testing.T) {
	now := day(2025, time.August, 30)
	deals := []domain.DealRecord{
		{DealName: "A", Status: domain.DealStatusWon, Sector: "mining", DealValue: 600000, CloseDate: day(2025, time.May, 10)},
		{DealName: "B", Status: domain.DealStatusWon, Sector: "energy", DealValue: 300000, CloseDate: day(2025, time.May, 20)},
		{DealName: "C", Status: domain.DealStatusWon, Sector: "energy", DealValue: 100000, CloseDate: day(2025, time.June, 2)},
		{DealName: "D", Status: domain.DealStatusOpen, Sector: "mining", DealValue: 900000},
	}

	result, err := Revenue(deals, domain.PeriodYTD, now)
	require.NoError(t, err)

	assert.Equal(t, 1000000.0, result.ClosedTotal)
	assert.Equal(t, "₹10.00 L", result.ClosedTotalFmt)
	assert.Equal(t, 3, result.Count)
	assert.Equal(t, "ytd", result.Period)

	// Sector breakdown descends by value.
	require.Len(t, result.BySector, 2)
	assert.Equal(t, "mining", result.BySector[0].Sector)
	assert.Equal(t, 600000.0, result.BySector[0].Value)
	assert.Equal(t, "energy", result.BySector[1].Sector)
	assert.Equal(t, 400000.0, result.BySector[1].Value)

	// Month breakdown ascends chronologically.
	require.Len(t, result.ByMonth, 2)
	assert.Equal(t, "2025-05", result.ByMonth[0].Month)
	assert.Equal(t, 900000.0, result.ByMonth[0].Value)
	assert.Equal(t, "2025-06", result.ByMonth[1].Month)

	assert.Equal(t, "mining", result.TopSector)
	assert.Equal(t, 60.0, result.TopSectorPct)
}

func TestRevenuePeriodFilterExcludesPriorFY(t *testing.T) {
	now := day(2025, time.August, 30)
	deals := []domain.DealRecord{
		{DealName: "old", Status: domain.DealStatusWon, Sector: "mining", DealValue: 500000, CloseDate: day(2024, time.December, 1)},
		{DealName: "new", Status: domain.DealStatusWon, Sector: "mining", DealValue: 200000, CloseDate: day(2025, time.June, 1)},
		{DealName: "undated", Status: domain.DealStatusWon, Sector: "mining", DealValue: 9999999},
	}

	result, err := Revenue(deals, domain.PeriodYTD, now)
	require.NoError(t, err)
	assert.Equal(t, 200000.0, result.ClosedTotal)
	assert.Equal(t, 1, result.Count)

	// Unfiltered keeps the undated row.
	all, err := Revenue(deals, domain.PeriodAll, now)
	require.NoError(t, err)
	assert.Equal(t, 3, all.Count)
}
