package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

func TestMapDealStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		stage    string
		expected domain.DealStatus
	}{
		{"explicit_won", "Won", "", domain.DealStatusWon},
		{"explicit_dead", "DEAD", "", domain.DealStatusDead},
		{"explicit_on_hold", " On Hold ", "", domain.DealStatusOnHold},
		// Explicit status always overrides a contradictory stage.
		{"status_overrides_dead_stage", "won", "l. project lost", domain.DealStatusWon},
		{"status_overrides_won_stage", "dead", "g. project won", domain.DealStatusDead},
		{"won_stage", "", "G. Project Won", domain.DealStatusWon},
		{"won_stage_invoice", "", "j. invoice sent", domain.DealStatusWon},
		{"dead_stage", "", "o. not relevant at all", domain.DealStatusDead},
		{"dead_stage_on_hold_projects", "", "m. projects on hold", domain.DealStatusDead},
		{"open_stage", "", "f. negotiations", domain.DealStatusOpen},
		{"unmatched_stage_defaults_open", "", "some stage nobody configured", domain.DealStatusOpen},
		{"everything_empty_defaults_open", "", "", domain.DealStatusOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapDealStatus(tt.status, tt.stage))
		})
	}
}

func TestResolveProbability(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
	}{
		{"High", 0.80},
		{"medium", 0.50},
		{" LOW ", 0.25},
		{"", 0},
		{"certain", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ResolveProbability(tt.raw))
	}
}

func TestMapExecStatus(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected domain.ExecStatus
	}{
		{"completed", "Completed", domain.ExecStatusCompleted},
		{"project_completed", "project completed on time", domain.ExecStatusCompleted},
		{"ongoing", "Ongoing", domain.ExecStatusOngoing},
		{"executed_until", "Executed until milestone 3", domain.ExecStatusOngoing},
		{"not_started", "Not Started", domain.ExecStatusNotStarted},
		{"paused", "Paused by client", domain.ExecStatusPaused},
		{"struck", "struck off", domain.ExecStatusPaused},
		{"partial", "partial delivery", domain.ExecStatusPartiallyCompleted},
		{"pending", "pending kickoff", domain.ExecStatusPending},
		{"details_pending", "details pending", domain.ExecStatusPending},
		{"empty", "", domain.ExecStatusUnknown},
		{"unrecognized", "handed over to legal", domain.ExecStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapExecStatus(tt.raw))
		})
	}
}

func TestExecStatusActive(t *testing.T) {
	active := []domain.ExecStatus{
		domain.ExecStatusOngoing,
		domain.ExecStatusNotStarted,
		domain.ExecStatusPaused,
		domain.ExecStatusPartiallyCompleted,
		domain.ExecStatusPending,
	}
	for _, s := range active {
		assert.True(t, s.Active(), "expected %s to be active", s)
	}

	assert.False(t, domain.ExecStatusCompleted.Active())
	assert.False(t, domain.ExecStatusUnknown.Active())
}
