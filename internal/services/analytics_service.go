package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/Johan-Arul/skylark-ai-agent/internal/analytics"
	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// AnalyticsService serves rollups computed from the current snapshot.
// Period-filtered views are computed per request; the precomputed
// snapshot rollups cover only the default periods.
type AnalyticsService struct {
	store  *SnapshotStore
	logger *slog.Logger

	// now is swapped in tests for deterministic periods
	now func() time.Time
}

// NewAnalyticsService creates an analytics service backed by store.
func NewAnalyticsService(store *SnapshotStore, logger *slog.Logger) *AnalyticsService {
	return &AnalyticsService{
		store:  store,
		logger: logger.With(slog.String("component", "analytics_service")),
		now:    time.Now,
	}
}

// Snapshot returns the current snapshot.
func (s *AnalyticsService) Snapshot(ctx context.Context) (*domain.Snapshot, error) {
	return s.store.Current()
}

// Revenue computes revenue analytics for the requested period.
func (s *AnalyticsService) Revenue(ctx context.Context, period domain.Period) (domain.RevenueAnalytics, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return domain.RevenueAnalytics{}, err
	}
	return analytics.Revenue(snapshot.Deals, period, s.now())
}

// Pipeline computes pipeline health for the requested period.
func (s *AnalyticsService) Pipeline(ctx context.Context, period domain.Period) (domain.PipelineHealth, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return domain.PipelineHealth{}, err
	}
	return analytics.Pipeline(snapshot.Deals, period, s.now())
}

// Operations computes operational metrics over all work orders.
func (s *AnalyticsService) Operations(ctx context.Context) (domain.OperationalMetrics, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return domain.OperationalMetrics{}, err
	}
	return analytics.Operations(snapshot.WorkOrders)
}

// CrossBoard links deals to work orders and computes conversion metrics.
func (s *AnalyticsService) CrossBoard(ctx context.Context) (domain.CrossBoardAnalysis, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return domain.CrossBoardAnalysis{}, err
	}
	return analytics.CrossBoard(snapshot.Deals, snapshot.WorkOrders)
}

// Leadership returns the leadership update computed at refresh time.
func (s *AnalyticsService) Leadership(ctx context.Context) (domain.LeadershipUpdate, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return domain.LeadershipUpdate{}, err
	}
	return snapshot.Leadership, nil
}

// Caveats returns the data quality report computed at refresh time.
func (s *AnalyticsService) Caveats(ctx context.Context) (domain.CaveatsReport, error) {
	snapshot, err := s.store.Current()
	if err != nil {
		return domain.CaveatsReport{}, err
	}
	return snapshot.Caveats, nil
}
