package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealRecordJSONOmitsUnresolvedDates(t *testing.T) {
	data, err := json.Marshal(DealRecord{DealName: "Globex Mapping", Status: DealStatusOpen})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.NotContains(t, fields, "close_date")
	assert.NotContains(t, fields, "created_date")
	assert.Equal(t, "Globex Mapping", fields["deal_name"])
}

func TestDealRecordJSONKeepsResolvedDates(t *testing.T) {
	closeDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	data, err := json.Marshal(DealRecord{DealName: "Acme", CloseDate: closeDate})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"close_date":"2026-05-10T00:00:00Z"`)

	var decoded DealRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.CloseDate.Equal(closeDate))
}

func TestWorkOrderRecordJSONOmitsUnresolvedDates(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	data, err := json.Marshal(WorkOrderRecord{WOName: "WO-Acme", StartDate: start})
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Contains(t, fields, "start_date")
	assert.NotContains(t, fields, "end_date")
}
