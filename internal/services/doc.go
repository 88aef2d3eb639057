// Package services implements the business logic layer of the Skylark
// analytics service. It owns the in-memory snapshot of canonical board
// records and the refresh workflow that rebuilds it from monday.com.
//
// # Architecture
//
// Services follow these architectural principles:
//
//	1. Interface-driven design for testability
//	2. Context propagation for cancellation and tracing
//	3. Dependency injection for loose coupling
//	4. Domain-focused methods that encapsulate business rules
//
// # Available Services
//
//	- SnapshotStore: holds the current immutable snapshot behind a RWMutex
//	- RefreshService: fetches both boards, rebuilds records and rollups
//	- AnalyticsService: serves period-filtered rollups from the snapshot
//	- HealthService: reports service and snapshot freshness status
//
// # Error Handling
//
// Services return domain-specific sentinel errors that handlers map to
// HTTP responses:
//
//	- ErrNoSnapshot when no refresh has completed yet
//	- ErrRefreshInProgress when a refresh is already running
package services
