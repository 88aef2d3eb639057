package services

import (
	"context"
	"log/slog"
	"time"
)

// HealthStatus describes service health and snapshot freshness.
type HealthStatus struct {
	Status        string     `json:"status"`
	SnapshotReady bool       `json:"snapshot_ready"`
	SnapshotID    string     `json:"snapshot_id,omitempty"`
	RefreshedAt   *time.Time `json:"refreshed_at,omitempty"`
	Deals         int        `json:"deals"`
	WorkOrders    int        `json:"work_orders"`
	Uptime        string     `json:"uptime"`
}

// HealthService reports liveness and snapshot state.
type HealthService struct {
	store   *SnapshotStore
	logger  *slog.Logger
	started time.Time
}

// NewHealthService creates a health service backed by store.
func NewHealthService(store *SnapshotStore, logger *slog.Logger) *HealthService {
	return &HealthService{
		store:   store,
		logger:  logger.With(slog.String("component", "health_service")),
		started: time.Now(),
	}
}

// Status returns the current health report. The service is "ok" as soon
// as it can serve requests; "degraded" means no snapshot exists yet.
func (s *HealthService) Status(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status: "ok",
		Uptime: time.Since(s.started).Round(time.Second).String(),
	}

	snapshot, err := s.store.Current()
	if err != nil {
		status.Status = "degraded"
		return status
	}

	deals, workOrders := snapshot.Counts()
	refreshedAt := snapshot.RefreshedAt
	status.SnapshotReady = true
	status.SnapshotID = snapshot.ID
	status.RefreshedAt = &refreshedAt
	status.Deals = deals
	status.WorkOrders = workOrders
	return status
}
