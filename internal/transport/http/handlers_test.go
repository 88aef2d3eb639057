package http

import (
	"io"
	"log/slog"
	"time"

	apierrors "github.com/Johan-Arul/skylark-ai-agent/internal/errors"
	"github.com/Johan-Arul/skylark-ai-agent/internal/services"
	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testErrorHandler() *apierrors.ErrorHandler {
	return apierrors.NewErrorHandler(testLogger(), false)
}

// emptySnapshot is a refreshed snapshot with no records, as produced
// when both source boards are empty.
func emptySnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		ID:          "snap-empty",
		RefreshedAt: time.Now(),
	}
}

// seededStore returns a store holding one snapshot with a small mixed
// record set. Close dates sit at the current instant so every period
// filter includes them.
func seededStore() *services.SnapshotStore {
	now := time.Now()
	store := services.NewSnapshotStore()
	store.Set(&domain.Snapshot{
		ID:          "snap-test",
		RefreshedAt: now,
		Deals: []domain.DealRecord{
			{
				DealName:      "Acme Pipeline Survey",
				Status:        domain.DealStatusWon,
				Stage:         "h. Work Order Received",
				Sector:        "Energy",
				DealValue:     1200000,
				Probability:   0.75,
				WeightedValue: 900000,
				CloseDate:     now,
			},
			{
				DealName:      "Globex Mapping",
				Status:        domain.DealStatusOpen,
				Stage:         "c. Proposal Sent",
				Sector:        "Infrastructure",
				DealValue:     800000,
				Probability:   0.5,
				WeightedValue: 400000,
				CloseDate:     now,
			},
		},
		WorkOrders: []domain.WorkOrderRecord{
			{
				WOName:         "WO-Acme Pipeline Survey",
				DealNameLinked: "Acme Pipeline Survey",
				Sector:         "Energy",
				ExecStatus:     domain.ExecStatusOngoing,
				IsActive:       true,
				AmountExclGST:  1200000,
				BilledExclGST:  400000,
				UnbilledAmount: 800000,
			},
		},
		Caveats: domain.CaveatsReport{
			DealsTotal: 2,
			WOTotal:    1,
		},
	})
	return store
}
