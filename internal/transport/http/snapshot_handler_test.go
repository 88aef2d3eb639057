package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johan-Arul/skylark-ai-agent/internal/services"
)

func newSnapshotServer(store *services.SnapshotStore) *httptest.Server {
	handler := NewSnapshotHandler(
		services.NewAnalyticsService(store, testLogger()),
		testLogger(),
		testErrorHandler(),
	)
	return httptest.NewServer(handler.Routes())
}

func TestSnapshotSummary(t *testing.T) {
	server := newSnapshotServer(seededStore())
	defer server.Close()

	resp, err := http.Get(server.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status string `json:"status"`
		Data   struct {
			SnapshotID string `json:"snapshot_id"`
			Deals      int    `json:"deals"`
			WorkOrders int    `json:"work_orders"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "success", body.Status)
	assert.Equal(t, "snap-test", body.Data.SnapshotID)
	assert.Equal(t, 2, body.Data.Deals)
	assert.Equal(t, 1, body.Data.WorkOrders)
}

func TestSnapshotRecords(t *testing.T) {
	server := newSnapshotServer(seededStore())
	defer server.Close()

	tests := []struct {
		path  string
		count float64
	}{
		{path: "/deals", count: 2},
		{path: "/work-orders", count: 1},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := http.Get(server.URL + tt.path)
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.count, body["count"])
		})
	}
}

func TestSnapshotCaveats(t *testing.T) {
	server := newSnapshotServer(seededStore())
	defer server.Close()

	resp, err := http.Get(server.URL + "/caveats")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSnapshotNotReady(t *testing.T) {
	server := newSnapshotServer(services.NewSnapshotStore())
	defer server.Close()

	for _, path := range []string{"/", "/deals", "/work-orders", "/caveats"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}
