package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Johan-Arul/skylark-ai-agent/internal/analytics"
	"github.com/Johan-Arul/skylark-ai-agent/internal/dataprocessing"
	"github.com/Johan-Arul/skylark-ai-agent/internal/infrastructure"
	"github.com/Johan-Arul/skylark-ai-agent/pkg/contracts/domain"
)

// BoardClient fetches board schemas and items from the board source.
// *monday.Client satisfies this.
type BoardClient interface {
	BoardSchema(ctx context.Context, boardID string) (domain.Schema, error)
	BoardItems(ctx context.Context, boardID string) ([]domain.RawItem, error)
}

// RefreshNotifier receives refresh lifecycle events. The websocket hub
// satisfies this; a no-op implementation is used in tests.
type RefreshNotifier interface {
	RefreshStarted(snapshotID string)
	RefreshCompleted(snapshot *domain.Snapshot)
	RefreshFailed(snapshotID string, err error)
}

// NoopNotifier discards all refresh events.
type NoopNotifier struct{}

func (NoopNotifier) RefreshStarted(string)             {}
func (NoopNotifier) RefreshCompleted(*domain.Snapshot) {}
func (NoopNotifier) RefreshFailed(string, error)       {}

// RefreshService rebuilds the analytics snapshot from the two source
// boards. Only one refresh runs at a time; a second caller gets
// ErrRefreshInProgress instead of queueing.
type RefreshService struct {
	client   BoardClient
	store    *SnapshotStore
	notifier RefreshNotifier
	logger   *slog.Logger
	metrics  *infrastructure.Metrics

	dealsBoardID      string
	workOrdersBoardID string
	timeout           time.Duration

	refreshMu sync.Mutex

	// now is swapped in tests for deterministic periods
	now func() time.Time
}

// NewRefreshService creates a refresh service. notifier and metrics may
// be nil.
func NewRefreshService(
	client BoardClient,
	store *SnapshotStore,
	dealsBoardID, workOrdersBoardID string,
	timeout time.Duration,
	notifier RefreshNotifier,
	metrics *infrastructure.Metrics,
	logger *slog.Logger,
) *RefreshService {
	if notifier == nil {
		notifier = NoopNotifier{}
	}
	return &RefreshService{
		client:            client,
		store:             store,
		notifier:          notifier,
		logger:            logger.With(slog.String("component", "refresh_service")),
		metrics:           metrics,
		dealsBoardID:      dealsBoardID,
		workOrdersBoardID: workOrdersBoardID,
		timeout:           timeout,
		now:               time.Now,
	}
}

// Refresh fetches both boards, rebuilds the canonical records and all
// rollups, and swaps the result into the store as one snapshot.
func (s *RefreshService) Refresh(ctx context.Context) (*domain.Snapshot, error) {
	if !s.refreshMu.TryLock() {
		return nil, ErrRefreshInProgress
	}
	defer s.refreshMu.Unlock()

	snapshotID := uuid.NewString()
	start := s.now()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	s.logger.InfoContext(ctx, "snapshot refresh started",
		slog.String("snapshot_id", snapshotID))
	s.notifier.RefreshStarted(snapshotID)

	snapshot, err := s.buildSnapshot(ctx, snapshotID)
	if err != nil {
		s.logger.ErrorContext(ctx, "snapshot refresh failed",
			slog.String("snapshot_id", snapshotID),
			slog.String("error", err.Error()))
		s.notifier.RefreshFailed(snapshotID, err)
		s.recordOutcome("failure", time.Since(start))
		return nil, err
	}

	s.store.Set(snapshot)
	s.recordOutcome("success", time.Since(start))
	if s.metrics != nil {
		s.metrics.SnapshotDeals.Set(float64(len(snapshot.Deals)))
		s.metrics.SnapshotWOs.Set(float64(len(snapshot.WorkOrders)))
	}

	deals, workOrders := snapshot.Counts()
	s.logger.InfoContext(ctx, "snapshot refresh completed",
		slog.String("snapshot_id", snapshotID),
		slog.Int("deals", deals),
		slog.Int("work_orders", workOrders),
		slog.Duration("duration", time.Since(start)))
	s.notifier.RefreshCompleted(snapshot)

	return snapshot, nil
}

func (s *RefreshService) buildSnapshot(ctx context.Context, snapshotID string) (*domain.Snapshot, error) {
	var (
		dealItems, woItems   []domain.RawItem
		dealSchema, woSchema domain.Schema
	)

	// Both boards are independent; fetch them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if dealSchema, err = s.client.BoardSchema(gctx, s.dealsBoardID); err != nil {
			s.countFetch("deals", "failure")
			return fmt.Errorf("deals board schema: %w", err)
		}
		if dealItems, err = s.client.BoardItems(gctx, s.dealsBoardID); err != nil {
			s.countFetch("deals", "failure")
			return fmt.Errorf("deals board items: %w", err)
		}
		s.countFetch("deals", "success")
		return nil
	})
	g.Go(func() error {
		var err error
		if woSchema, err = s.client.BoardSchema(gctx, s.workOrdersBoardID); err != nil {
			s.countFetch("work_orders", "failure")
			return fmt.Errorf("work orders board schema: %w", err)
		}
		if woItems, err = s.client.BoardItems(gctx, s.workOrdersBoardID); err != nil {
			s.countFetch("work_orders", "failure")
			return fmt.Errorf("work orders board items: %w", err)
		}
		s.countFetch("work_orders", "success")
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	deals := dataprocessing.BuildDealRecords(dealItems, dealSchema)
	workOrders := dataprocessing.BuildWorkOrderRecords(woItems, woSchema)
	caveats := dataprocessing.ComputeCaveats(deals, workOrders)

	now := s.now()
	snapshot := &domain.Snapshot{
		ID:          snapshotID,
		RefreshedAt: now,
		Deals:       deals,
		WorkOrders:  workOrders,
		Caveats:     caveats,
	}

	// Empty record sets produce zero-valued rollups, not a failed
	// refresh; the API reports the emptiness per request.
	if revenue, err := analytics.Revenue(deals, domain.PeriodYTD, now); err == nil {
		snapshot.RevenueYTD = revenue
	} else if !errors.Is(err, analytics.ErrNoDeals) {
		return nil, err
	}
	if pipeline, err := analytics.Pipeline(deals, domain.PeriodThisQuarter, now); err == nil {
		snapshot.PipelineQuarter = pipeline
	} else if !errors.Is(err, analytics.ErrNoDeals) {
		return nil, err
	}
	if ops, err := analytics.Operations(workOrders); err == nil {
		snapshot.Operations = ops
	} else if !errors.Is(err, analytics.ErrNoWorkOrders) {
		return nil, err
	}
	if cross, err := analytics.CrossBoard(deals, workOrders); err == nil {
		snapshot.CrossBoard = cross
	} else if !errors.Is(err, analytics.ErrNoDeals) && !errors.Is(err, analytics.ErrNoWorkOrders) {
		return nil, err
	}
	if leadership, err := analytics.GenerateLeadershipUpdate(deals, workOrders, caveats, now); err == nil {
		snapshot.Leadership = leadership
	} else if !errors.Is(err, analytics.ErrNoDeals) && !errors.Is(err, analytics.ErrNoWorkOrders) {
		return nil, err
	}

	return snapshot, nil
}

func (s *RefreshService) recordOutcome(outcome string, duration time.Duration) {
	if s.metrics == nil {
		return
	}
	s.metrics.RefreshTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		s.metrics.RefreshDuration.Observe(duration.Seconds())
	}
}

func (s *RefreshService) countFetch(board, outcome string) {
	if s.metrics != nil {
		s.metrics.BoardFetchTotal.WithLabelValues(board, outcome).Inc()
	}
}

// RunPeriodic refreshes on the given interval until ctx is cancelled.
// Failures are logged and the loop keeps going.
func (s *RefreshService) RunPeriodic(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshInProgress) {
				s.logger.WarnContext(ctx, "periodic refresh failed",
					slog.String("error", err.Error()))
			}
		}
	}
}
